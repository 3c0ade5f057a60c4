package ethereum_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"time"

	"paysched/internal/ethereum"
	"paysched/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	contractAddr  = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	senderAddr    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	recipientAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	submittedHash = common.HexToHash("0xfeedbeef")
)

func scheduledLog(contractABI abi.ABI, emitter common.Address, id int64) *types.Log {
	event := contractABI.Events["TransactionScheduled"]
	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(1500000000000000000), big.NewInt(1748736000))
	Expect(err).NotTo(HaveOccurred())

	return &types.Log{
		Address: emitter,
		Topics: []common.Hash{
			event.ID,
			common.BigToHash(big.NewInt(id)),
			common.BytesToHash(senderAddr.Bytes()),
			common.BytesToHash(recipientAddr.Bytes()),
		},
		Data: data,
	}
}

var _ = Describe("ChainClient", func() {
	var (
		client      *ethereum.ChainClient
		fakeClient  *fake.EthClient
		fakeRPC     *fake.RPCCaller
		operator    ethereum.Submitter
		contractABI abi.ABI
		ctx         context.Context
		managed     []common.Address
		sendErr     error
		sentArgs    []any
		fee         *big.Int
		err         error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeClient = new(fake.EthClient)
		fakeRPC = new(fake.RPCCaller)
		managed = []common.Address{senderAddr}
		sendErr = nil
		sentArgs = nil
		fee = big.NewInt(15000000000000000)

		contractABI, err = ethereum.PaymentSchedulerABI()
		Expect(err).NotTo(HaveOccurred())

		fakeRPC.CallContextStub = func(_ context.Context, result any, method string, args ...any) error {
			switch method {
			case "eth_accounts":
				*result.(*[]common.Address) = managed
			case "eth_sendTransaction":
				if sendErr != nil {
					return sendErr
				}
				sentArgs = args
				*result.(*common.Hash) = submittedHash
			}
			return nil
		}

		feeOut, err := contractABI.Methods["calculateDynamicFee"].Outputs.Pack(fee)
		Expect(err).NotTo(HaveOccurred())
		fakeClient.CallContractReturns(feeOut, nil)

		operator, err = ethereum.NewKeySubmitter(fakeClient, "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d")
		Expect(err).NotTo(HaveOccurred())
	})

	JustBeforeEach(func() {
		client, err = ethereum.NewChainClient(zap.NewNop().Sugar(), fakeClient, fakeRPC, operator, ethereum.ChainClientConfig{
			Contract:            contractAddr,
			ConfirmationTimeout: 50 * time.Millisecond,
			PollInterval:        time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	sentValue := func() string {
		Expect(sentArgs).To(HaveLen(1))
		raw, err := json.Marshal(sentArgs[0])
		Expect(err).NotTo(HaveOccurred())
		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		return decoded["value"].(string)
	}

	Describe("GetBalance", func() {
		It("should convert the balance to ether", func() {
			wei, _ := new(big.Int).SetString("1500000000000000000", 10)
			fakeClient.BalanceAtReturns(wei, nil)

			balance, err := client.GetBalance(ctx, senderAddr.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.String()).To(Equal("1.5"))

			_, account, block := fakeClient.BalanceAtArgsForCall(0)
			Expect(account).To(Equal(senderAddr))
			Expect(block).To(BeNil())
		})

		It("should reject malformed addresses without calling the node", func() {
			_, err := client.GetBalance(ctx, "not-an-address")
			Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
			Expect(fakeClient.BalanceAtCallCount()).To(BeZero())
		})

		It("should wrap node failures as ErrChainCallFailed", func() {
			fakeClient.BalanceAtReturns(nil, errors.New("connection refused"))

			_, err := client.GetBalance(ctx, senderAddr.Hex())
			Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})
	})

	Describe("QuoteFee", func() {
		It("should call calculateDynamicFee on the contract", func() {
			quote, err := client.QuoteFee(ctx, decimal.RequireFromString("1.5"))
			Expect(err).NotTo(HaveOccurred())
			Expect(quote.String()).To(Equal("0.015"))

			_, msg, _ := fakeClient.CallContractArgsForCall(0)
			Expect(*msg.To).To(Equal(contractAddr))
			expected, err := contractABI.Pack("calculateDynamicFee", big.NewInt(1500000000000000000))
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.Data).To(Equal(expected))
		})
	})

	Describe("ScheduleTransfer", func() {
		var (
			result    ethereum.CallResult
			scheduled time.Time
		)

		BeforeEach(func() {
			scheduled = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				TxHash: submittedHash,
				Logs:   []*types.Log{scheduledLog(contractABI, contractAddr, 42)},
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = client.ScheduleTransfer(ctx, senderAddr.Hex(), recipientAddr.Hex(), decimal.RequireFromString("1.5"), scheduled)
		})

		It("should decode the on-chain id from the TransactionScheduled event", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.EventID).To(Equal("42"))
			Expect(result.TxHash).To(Equal(submittedHash.Hex()))
			Expect(result.ReceiptDump).To(ContainSubstring(`"status":"0x1"`))
		})

		It("should attach amount plus fee as value", func() {
			Expect(err).NotTo(HaveOccurred())
			total, _ := new(big.Int).SetString("1515000000000000000", 10)
			Expect(sentValue()).To(Equal(hexutil.EncodeBig(total)))
		})

		When("the receipt is not available immediately", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, nil, geth.NotFound)
			})

			It("should poll until it is mined", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
			})
		})

		When("a receipt lookup fails transiently", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, errors.New("502 bad gateway"))
			})

			It("should keep waiting for the receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.EventID).To(Equal("42"))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("receipt lookups keep failing until the timeout", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, errors.New("502 bad gateway"))
			})

			It("should report an unknown outcome", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(err.Error()).To(ContainSubstring("502 bad gateway"))
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeNumerically(">", 1))
			})
		})

		When("the request context is cancelled after submission", func() {
			BeforeEach(func() {
				cancelled, cancel := context.WithCancel(context.Background())
				cancel()
				ctx = cancelled
			})

			It("should still wait for the confirmation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.EventID).To(Equal("42"))
			})
		})

		When("the receipt has no TransactionScheduled event", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("should fail with ErrEventNotFound", func() {
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
			})
		})

		When("the event was emitted by another contract", func() {
			BeforeEach(func() {
				other := common.HexToAddress("0x0000000000000000000000000000000000000bad")
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
					Logs:   []*types.Log{scheduledLog(contractABI, other, 7)},
				}, nil)
			})

			It("should ignore it", func() {
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
			})
		})

		When("the sender is not managed by the node", func() {
			BeforeEach(func() {
				managed = []common.Address{recipientAddr}
			})

			It("should fail before submitting", func() {
				Expect(err).To(MatchError(ethereum.ErrUnknownAccount))
				Expect(sentArgs).To(BeNil())
			})
		})

		When("the contract call reverts on submission", func() {
			BeforeEach(func() {
				sendErr = errors.New("execution reverted: scheduled time must be in the future")
			})

			It("should surface the reason as ErrChainCallFailed", func() {
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(err.Error()).To(ContainSubstring("scheduled time must be in the future"))
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
			})
		})

		When("the mined transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(120),
				}, nil)
				fakeClient.CallContractReturnsOnCall(1, nil, errors.New("execution reverted: insufficient fee"))
			})

			It("should fail with ErrChainCallFailed carrying the reason", func() {
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(err).NotTo(MatchError(ethereum.ErrEventNotFound))
				Expect(err).NotTo(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(err.Error()).To(ContainSubstring("insufficient fee"))
			})

			It("should replay the call at the block it was mined in", func() {
				Expect(fakeClient.CallContractCallCount()).To(Equal(2))
				_, msg, block := fakeClient.CallContractArgsForCall(1)
				Expect(block.Int64()).To(Equal(int64(120)))
				Expect(msg.From).To(Equal(senderAddr))
				Expect(*msg.To).To(Equal(contractAddr))
				Expect(msg.Value.String()).To(Equal("1515000000000000000"))
			})
		})

		When("the transaction is never mined", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("should time out", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
			})
		})
	})

	Describe("InstantTransfer", func() {
		It("should submit instantTransaction with amount plus fee", func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

			result, err := client.InstantTransfer(ctx, senderAddr.Hex(), recipientAddr.Hex(), decimal.RequireFromString("1.5"))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TxHash).To(Equal(submittedHash.Hex()))
			Expect(result.EventID).To(BeEmpty())

			total, _ := new(big.Int).SetString("1515000000000000000", 10)
			Expect(sentValue()).To(Equal(hexutil.EncodeBig(total)))
		})

		It("should reject a malformed recipient", func() {
			_, err := client.InstantTransfer(ctx, senderAddr.Hex(), "0xnope", decimal.NewFromInt(1))
			Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
		})
	})

	Describe("ExecuteTransaction", func() {
		BeforeEach(func() {
			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(1000000000), nil)
			fakeClient.EstimateGasReturns(60000, nil)
			fakeClient.ChainIDReturns(big.NewInt(1337), nil)
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		})

		It("should sign executeTransaction with the operator key", func() {
			result, err := client.ExecuteTransaction(ctx, "42")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(result.TxHash).To(Equal(tx.Hash().Hex()))
			Expect(tx.Nonce()).To(Equal(uint64(7)))
			Expect(tx.Gas()).To(Equal(uint64(60000)))
			Expect(*tx.To()).To(Equal(contractAddr))
			Expect(tx.Value().Sign()).To(BeZero())

			expected, err := contractABI.Pack("executeTransaction", big.NewInt(42))
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Data()).To(Equal(expected))

			from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1337)), tx)
			Expect(err).NotTo(HaveOccurred())
			Expect(from).To(Equal(operator.Address()))
		})

		When("a receipt lookup fails transiently", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, errors.New("502 bad gateway"))
			})

			It("should still return the confirmed receipt", func() {
				result, err := client.ExecuteTransaction(ctx, "42")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Receipt.Status).To(Equal(types.ReceiptStatusSuccessful))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
			})
		})

		It("should reject ids that are not unsigned integers", func() {
			_, err := client.ExecuteTransaction(ctx, "abc")
			Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
			Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
		})

		When("gas estimation reverts", func() {
			BeforeEach(func() {
				fakeClient.EstimateGasReturns(0, errors.New("execution reverted: not due yet"))
			})

			It("should fail with the revert reason", func() {
				_, err := client.ExecuteTransaction(ctx, "42")
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(err.Error()).To(ContainSubstring("not due yet"))
			})
		})
	})

	Describe("NewChainClient", func() {
		It("should fall back to default durations when they are not positive", func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			zeroed, err := ethereum.NewChainClient(zap.NewNop().Sugar(), fakeClient, fakeRPC, operator, ethereum.ChainClientConfig{
				Contract: contractAddr,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(func() {
				_, err = zeroed.InstantTransfer(ctx, senderAddr.Hex(), recipientAddr.Hex(), decimal.NewFromInt(1))
			}).NotTo(Panic())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("operator address", func() {
		It("should be derived from the key", func() {
			key, err := crypto.HexToECDSA("59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d")
			Expect(err).NotTo(HaveOccurred())
			Expect(operator.Address()).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
		})
	})
})
