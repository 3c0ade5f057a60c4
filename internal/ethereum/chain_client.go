package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultConfirmationTimeout = 2 * time.Minute
	DefaultPollInterval        = time.Second
)

// ChainClientConfig durations fall back to the defaults when not positive.
type ChainClientConfig struct {
	Contract            common.Address
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
}

// ChainClient is the only component that talks to the node and the payment
// scheduler contract. It is safe for concurrent use.
type ChainClient struct {
	logger         *zap.SugaredLogger
	client         EthClient
	rpc            RPCCaller
	operator       Submitter
	contractABI    abi.ABI
	contract       common.Address
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewChainClient(logger *zap.SugaredLogger, client EthClient, rpcClient RPCCaller, operator Submitter, cfg ChainClientConfig) (*ChainClient, error) {
	contractABI, err := PaymentSchedulerABI()
	if err != nil {
		return nil, err
	}

	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = DefaultConfirmationTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return &ChainClient{
		logger:         logger,
		client:         client,
		rpc:            rpcClient,
		operator:       operator,
		contractABI:    contractABI,
		contract:       cfg.Contract,
		confirmTimeout: cfg.ConfirmationTimeout,
		pollInterval:   cfg.PollInterval,
	}, nil
}

// GetBalance returns the native balance of address in ether.
func (c *ChainClient) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	account, err := ParseAddress(address)
	if err != nil {
		return decimal.Zero, err
	}

	wei, err := c.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: balance of %s: %w", ErrChainCallFailed, account.Hex(), err)
	}

	return FromWei(wei), nil
}

// QuoteFee asks the contract for the dynamic fee charged on amount (ether).
func (c *ChainClient) QuoteFee(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	wei, err := ToWei(amount)
	if err != nil {
		return decimal.Zero, err
	}

	fee, err := c.quoteFeeWei(ctx, common.Address{}, wei)
	if err != nil {
		return decimal.Zero, err
	}

	return FromWei(fee), nil
}

func (c *ChainClient) quoteFeeWei(ctx context.Context, from common.Address, amount *big.Int) (*big.Int, error) {
	data, err := c.contractABI.Pack(methodDynamicFee, amount)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodDynamicFee, err)
	}

	out, err := c.client.CallContract(ctx, geth.CallMsg{
		From: from,
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrChainCallFailed, methodDynamicFee, err)
	}

	values, err := c.contractABI.Unpack(methodDynamicFee, out)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %w", ErrChainCallFailed, methodDynamicFee, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrChainCallFailed, methodDynamicFee, len(values))
	}

	fee, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %T", ErrChainCallFailed, methodDynamicFee, values[0])
	}

	return fee, nil
}

// InstantTransfer pays recipient immediately through the contract, attaching amount+fee.
func (c *ChainClient) InstantTransfer(ctx context.Context, sender, recipient string, amount decimal.Decimal) (CallResult, error) {
	to, err := ParseAddress(recipient)
	if err != nil {
		return CallResult{}, err
	}

	return c.submitPayable(ctx, sender, amount, func(wei *big.Int) ([]byte, error) {
		return c.contractABI.Pack(methodInstant, to, wei)
	})
}

// ScheduleTransfer registers a future payment on chain and decodes the id the
// contract assigned to it from the TransactionScheduled event.
func (c *ChainClient) ScheduleTransfer(ctx context.Context, sender, recipient string, amount decimal.Decimal, scheduledAt time.Time) (CallResult, error) {
	to, err := ParseAddress(recipient)
	if err != nil {
		return CallResult{}, err
	}

	scheduledTime := big.NewInt(scheduledAt.Unix())
	res, err := c.submitPayable(ctx, sender, amount, func(wei *big.Int) ([]byte, error) {
		return c.contractABI.Pack(methodSchedule, to, wei, scheduledTime)
	})
	if err != nil {
		return CallResult{}, err
	}

	event, err := findScheduledEvent(c.contractABI, c.contract, res.Receipt.Logs)
	if err != nil {
		c.logger.Errorw("scheduled call confirmed without event",
			"tx_hash", res.TxHash,
			"error", err,
		)
		return CallResult{}, fmt.Errorf("schedule transaction %s: %w", res.TxHash, err)
	}

	res.EventID = event.ID.String()
	return res, nil
}

// ExecuteTransaction executes a scheduled on-chain entry using the operator account.
func (c *ChainClient) ExecuteTransaction(ctx context.Context, id string) (CallResult, error) {
	onChainID, ok := new(big.Int).SetString(id, 10)
	if !ok || onChainID.Sign() < 0 {
		return CallResult{}, fmt.Errorf("%w: on-chain id %q", ErrChainCallFailed, id)
	}

	data, err := c.contractABI.Pack(methodExecute, onChainID)
	if err != nil {
		return CallResult{}, fmt.Errorf("pack %s: %w", methodExecute, err)
	}

	return c.submit(ctx, c.operator, Call{
		To:    c.contract,
		Value: new(big.Int),
		Data:  data,
	})
}

func (c *ChainClient) submitPayable(ctx context.Context, sender string, amount decimal.Decimal, pack func(wei *big.Int) ([]byte, error)) (CallResult, error) {
	from, err := ParseAddress(sender)
	if err != nil {
		return CallResult{}, err
	}

	wei, err := ToWei(amount)
	if err != nil {
		return CallResult{}, err
	}

	signer, err := NewNodeAccountSubmitter(ctx, c.rpc, from)
	if err != nil {
		return CallResult{}, err
	}

	fee, err := c.quoteFeeWei(ctx, from, wei)
	if err != nil {
		return CallResult{}, err
	}

	data, err := pack(wei)
	if err != nil {
		return CallResult{}, fmt.Errorf("pack call: %w", err)
	}

	return c.submit(ctx, signer, Call{
		To:    c.contract,
		Value: new(big.Int).Add(wei, fee),
		Data:  data,
	})
}

func (c *ChainClient) submit(ctx context.Context, signer Submitter, call Call) (CallResult, error) {
	hash, err := signer.Submit(ctx, call)
	if err != nil {
		return CallResult{}, err
	}

	c.logger.Infow("contract call submitted",
		"tx_hash", hash.Hex(),
		"from", signer.Address().Hex(),
		"value_wei", call.Value.String(),
	)

	receipt, err := c.waitForReceipt(ctx, signer.Address(), hash, call)
	if err != nil {
		return CallResult{}, err
	}

	dump, err := json.Marshal(receipt)
	if err != nil {
		return CallResult{}, fmt.Errorf("marshal receipt: %w", err)
	}

	return CallResult{
		TxHash:      hash.Hex(),
		Receipt:     receipt,
		ReceiptDump: string(dump),
	}, nil
}

// waitForReceipt blocks until the transaction is mined. Once submitted the
// wait is no longer bound to the caller's cancellation, only to the
// confirmation timeout. Receipt lookup errors are retried because the
// transaction is already broadcast and may still be mined.
func (c *ChainClient) waitForReceipt(ctx context.Context, from common.Address, hash common.Hash, call Call) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		receipt, err := c.client.TransactionReceipt(waitCtx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return nil, c.revertError(waitCtx, from, hash, call, receipt)
			}
			return receipt, nil
		}

		if !errors.Is(err, geth.NotFound) && waitCtx.Err() == nil {
			lastErr = err
			c.logger.Warnw("receipt lookup failed, retrying",
				"tx_hash", hash.Hex(),
				"error", err,
			)
		}

		select {
		case <-waitCtx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("%w: %w: %s after %s, last error: %w", ErrChainCallFailed, ErrConfirmationTimeout, hash.Hex(), c.confirmTimeout, lastErr)
			}
			return nil, fmt.Errorf("%w: %w: %s after %s", ErrChainCallFailed, ErrConfirmationTimeout, hash.Hex(), c.confirmTimeout)
		case <-ticker.C:
		}
	}
}

// revertError replays the reverted call at its block to recover the reason.
func (c *ChainClient) revertError(ctx context.Context, from common.Address, hash common.Hash, call Call, receipt *types.Receipt) error {
	_, err := c.client.CallContract(ctx, geth.CallMsg{
		From:  from,
		To:    &call.To,
		Value: call.Value,
		Data:  call.Data,
	}, receipt.BlockNumber)
	if err != nil {
		return fmt.Errorf("%w: transaction %s reverted: %w", ErrChainCallFailed, hash.Hex(), err)
	}

	c.logger.Warnw("reverted call succeeded on replay, reason unknown", "tx_hash", hash.Hex())
	return fmt.Errorf("%w: transaction %s reverted", ErrChainCallFailed, hash.Hex())
}
