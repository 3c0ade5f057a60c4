package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Submitter signs and broadcasts a contract call on behalf of one account.
type Submitter interface {
	Address() common.Address
	Submit(ctx context.Context, call Call) (common.Hash, error)
}

type sendTxArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Value *hexutil.Big    `json:"value"`
	Data  hexutil.Bytes   `json:"data"`
}

// NodeAccountSubmitter relies on the node to hold the key and sign (eth_sendTransaction).
type NodeAccountSubmitter struct {
	rpc  RPCCaller
	from common.Address
}

// NewNodeAccountSubmitter fails with ErrUnknownAccount when from is not one of the node's accounts.
func NewNodeAccountSubmitter(ctx context.Context, rpcClient RPCCaller, from common.Address) (*NodeAccountSubmitter, error) {
	accounts, err := nodeAccounts(ctx, rpcClient)
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc == from {
			return &NodeAccountSubmitter{rpc: rpcClient, from: from}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, from.Hex())
}

// NewDefaultNodeAccountSubmitter uses the node's first account.
func NewDefaultNodeAccountSubmitter(ctx context.Context, rpcClient RPCCaller) (*NodeAccountSubmitter, error) {
	accounts, err := nodeAccounts(ctx, rpcClient)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: node exposes no accounts", ErrUnknownAccount)
	}

	return &NodeAccountSubmitter{rpc: rpcClient, from: accounts[0]}, nil
}

func nodeAccounts(ctx context.Context, rpcClient RPCCaller) ([]common.Address, error) {
	var accounts []common.Address
	if err := rpcClient.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("%w: eth_accounts: %w", ErrChainCallFailed, err)
	}
	return accounts, nil
}

func (s *NodeAccountSubmitter) Address() common.Address {
	return s.from
}

func (s *NodeAccountSubmitter) Submit(ctx context.Context, call Call) (common.Hash, error) {
	to := call.To
	args := sendTxArgs{
		From:  s.from,
		To:    &to,
		Value: (*hexutil.Big)(call.Value),
		Data:  call.Data,
	}

	var hash common.Hash
	if err := s.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("%w: eth_sendTransaction: %w", ErrChainCallFailed, err)
	}

	return hash, nil
}

// KeySubmitter signs locally with an operator key and broadcasts the raw transaction.
type KeySubmitter struct {
	client EthClient
	key    *ecdsa.PrivateKey
	from   common.Address
	// serializes nonce allocation
	mu sync.Mutex
}

func NewKeySubmitter(client EthClient, hexKey string) (*KeySubmitter, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse operator key: %w", err)
	}

	return &KeySubmitter{
		client: client,
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *KeySubmitter) Address() common.Address {
	return s.from
}

func (s *KeySubmitter) Submit(ctx context.Context, call Call) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: get nonce: %w", ErrChainCallFailed, err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: suggest gas price: %w", ErrChainCallFailed, err)
	}

	to := call.To
	gas, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From:  s.from,
		To:    &to,
		Value: call.Value,
		Data:  call.Data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: estimate gas: %w", ErrChainCallFailed, err)
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: chain id: %w", ErrChainCallFailed, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    call.Value,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     call.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("%w: send transaction: %w", ErrChainCallFailed, err)
	}

	return signed.Hash(), nil
}
