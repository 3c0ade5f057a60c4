package core_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paysched/internal/core"
	"paysched/internal/core/fake"
	"paysched/internal/ethereum"
	"paysched/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recipient = "0xABC0000000000000000000000000000000000002"

var _ = Describe("Scheduler", func() {
	var (
		fakeTxs   *fake.TransactionRepository
		fakeChain *fake.ChainClient
		scheduler *core.Scheduler
		caller    core.Identity
		ctx       context.Context
		fakeErr   error
	)

	BeforeEach(func() {
		fakeTxs = new(fake.TransactionRepository)
		fakeChain = new(fake.ChainClient)
		scheduler = core.NewScheduler(zap.NewNop().Sugar(), fakeTxs, fakeChain)
		caller = core.Identity{UserID: "u1", WalletAddress: "0xabc0000000000000000000000000000000000001", AccountType: repository.AccountTypeWeb3}
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Schedule", func() {
		var (
			req    core.ScheduleRequest
			result core.ScheduleResult
			err    error
		)

		BeforeEach(func() {
			req = core.ScheduleRequest{
				RecipientAddress: recipient,
				Message:          "rent",
				Amount:           decimal.RequireFromString("1.5"),
				ScheduledDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			fakeChain.ScheduleTransferReturns(ethereum.CallResult{TxHash: "0xhash", EventID: "42"}, nil)
		})

		JustBeforeEach(func() {
			result, err = scheduler.Schedule(ctx, caller, req)
		})

		It("should record exactly one SCHEDULED row carrying the decoded on-chain id", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeTxs.CreateTransactionCallCount()).To(Equal(1))

			_, row := fakeTxs.CreateTransactionArgsForCall(0)
			Expect(row.Status).To(Equal(repository.StatusScheduled))
			Expect(*row.BlockChainTxID).To(Equal("42"))
			Expect(*row.BlockChainTxHash).To(Equal("0xhash"))
			Expect(row.UserID).To(Equal("u1"))
			Expect(row.Amount.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
			Expect(row.ScheduledDate).To(Equal(req.ScheduledDate))

			Expect(result.BlockChainTxID).To(Equal("42"))
			Expect(result.Status).To(Equal(repository.StatusScheduled))
			Expect(result.ID).To(Equal(row.ID))
		})

		It("should schedule from the caller's wallet", func() {
			_, sender, to, amount, at := fakeChain.ScheduleTransferArgsForCall(0)
			Expect(sender).To(Equal(caller.WalletAddress))
			Expect(to).To(Equal(recipient))
			Expect(amount.String()).To(Equal("1.5"))
			Expect(at).To(Equal(req.ScheduledDate))
		})

		When("the chain call fails", func() {
			BeforeEach(func() {
				fakeChain.ScheduleTransferReturns(ethereum.CallResult{}, fmt.Errorf("%w: execution reverted", ethereum.ErrChainCallFailed))
			})

			It("should create no local row", func() {
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(fakeTxs.CreateTransactionCallCount()).To(BeZero())
			})
		})

		When("the receipt carries no scheduling event", func() {
			BeforeEach(func() {
				fakeChain.ScheduleTransferReturns(ethereum.CallResult{}, ethereum.ErrEventNotFound)
			})

			It("should create no local row", func() {
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
				Expect(fakeTxs.CreateTransactionCallCount()).To(BeZero())
			})
		})

		When("the local insert fails after confirmation", func() {
			BeforeEach(func() {
				fakeTxs.CreateTransactionReturns(fakeErr)
			})

			It("should report the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the request context is cancelled once the chain call returned", func() {
			BeforeEach(func() {
				cctx, cancel := context.WithCancel(context.Background())
				ctx = cctx
				fakeChain.ScheduleTransferStub = func(context.Context, string, string, decimal.Decimal, time.Time) (ethereum.CallResult, error) {
					cancel()
					return ethereum.CallResult{TxHash: "0xhash", EventID: "42"}, nil
				}
			})

			It("should still record the row", func() {
				Expect(err).NotTo(HaveOccurred())
				insertCtx, _ := fakeTxs.CreateTransactionArgsForCall(0)
				Expect(insertCtx.Err()).NotTo(HaveOccurred())
			})
		})

		DescribeTable("invalid requests never reach the chain",
			func(mutate func(*core.ScheduleRequest)) {
				mutate(&req)
				_, err := scheduler.Schedule(ctx, caller, req)
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeChain.ScheduleTransferCallCount()).To(Equal(1)) // only the JustBeforeEach call
			},
			Entry("missing recipient", func(r *core.ScheduleRequest) { r.RecipientAddress = "" }),
			Entry("malformed recipient", func(r *core.ScheduleRequest) { r.RecipientAddress = "0x123" }),
			Entry("missing message", func(r *core.ScheduleRequest) { r.Message = "" }),
			Entry("zero amount", func(r *core.ScheduleRequest) { r.Amount = decimal.Zero }),
			Entry("negative amount", func(r *core.ScheduleRequest) { r.Amount = decimal.NewFromInt(-1) }),
			Entry("sub-wei amount", func(r *core.ScheduleRequest) { r.Amount = decimal.RequireFromString("0.0000000000000000001") }),
			Entry("missing date", func(r *core.ScheduleRequest) { r.ScheduledDate = time.Time{} }),
		)

		When("the caller has no wallet", func() {
			BeforeEach(func() {
				caller.WalletAddress = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeChain.ScheduleTransferCallCount()).To(BeZero())
			})
		})
	})

	Describe("Execute", func() {
		var (
			scheduled repository.Transaction
			result    core.ExecutionResult
			err       error
		)

		BeforeEach(func() {
			chainID := "42"
			scheduled = repository.Transaction{ID: "t1", UserID: "u1", Status: repository.StatusScheduled, BlockChainTxID: &chainID}
			fakeTxs.GetUserTransactionReturns(scheduled, nil)
			fakeChain.ExecuteTransactionReturns(ethereum.CallResult{TxHash: "0xexec", ReceiptDump: `{"status":"0x1"}`}, nil)
		})

		JustBeforeEach(func() {
			result, err = scheduler.Execute(ctx, caller, "t1")
		})

		It("should execute by on-chain id and mark the row EXECUTED", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(repository.StatusExecuted))
			Expect(string(result.Receipt)).To(Equal(`{"status":"0x1"}`))

			_, id := fakeChain.ExecuteTransactionArgsForCall(0)
			Expect(id).To(Equal("42"))

			_, rowID, hash, dump := fakeTxs.MarkExecutedArgsForCall(0)
			Expect(rowID).To(Equal("t1"))
			Expect(hash).To(Equal("0xexec"))
			Expect(dump).To(Equal(`{"status":"0x1"}`))
			Expect(fakeTxs.MarkFailedCallCount()).To(BeZero())
		})

		It("should look the row up for the caller only", func() {
			_, userID, id := fakeTxs.GetUserTransactionArgsForCall(0)
			Expect(userID).To(Equal("u1"))
			Expect(id).To(Equal("t1"))
		})

		When("the chain call reverts", func() {
			BeforeEach(func() {
				fakeChain.ExecuteTransactionReturns(ethereum.CallResult{}, fmt.Errorf("%w: execution reverted: not due", ethereum.ErrChainCallFailed))
			})

			It("should mark the row FAILED with the reason", func() {
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(fakeTxs.MarkFailedCallCount()).To(Equal(1))
				_, rowID, reason := fakeTxs.MarkFailedArgsForCall(0)
				Expect(rowID).To(Equal("t1"))
				Expect(reason).To(ContainSubstring("not due"))
				Expect(fakeTxs.MarkExecutedCallCount()).To(BeZero())
			})
		})

		When("the confirmation times out", func() {
			BeforeEach(func() {
				fakeChain.ExecuteTransactionReturns(ethereum.CallResult{}, fmt.Errorf("%w: %w", ethereum.ErrChainCallFailed, ethereum.ErrConfirmationTimeout))
			})

			It("should leave the row SCHEDULED", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(fakeTxs.MarkFailedCallCount()).To(BeZero())
				Expect(fakeTxs.MarkExecutedCallCount()).To(BeZero())
			})
		})

		When("receipt lookups failed until the confirmation timeout", func() {
			BeforeEach(func() {
				fakeChain.ExecuteTransactionReturns(ethereum.CallResult{}, fmt.Errorf("%w: %w: 0xabc after 2m0s, last error: %w",
					ethereum.ErrChainCallFailed, ethereum.ErrConfirmationTimeout, errors.New("502 bad gateway")))
			})

			It("should not record a failure", func() {
				Expect(err).To(MatchError(ethereum.ErrChainCallFailed))
				Expect(err.Error()).To(ContainSubstring("502 bad gateway"))
				Expect(fakeTxs.MarkFailedCallCount()).To(BeZero())
				Expect(fakeTxs.MarkExecutedCallCount()).To(BeZero())
			})
		})

		When("the row is not the caller's", func() {
			BeforeEach(func() {
				fakeTxs.GetUserTransactionReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
				Expect(fakeChain.ExecuteTransactionCallCount()).To(BeZero())
			})
		})

		When("the row already left SCHEDULED", func() {
			BeforeEach(func() {
				scheduled.Status = repository.StatusExecuted
				fakeTxs.GetUserTransactionReturns(scheduled, nil)
			})

			It("should refuse the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransition))
				Expect(fakeChain.ExecuteTransactionCallCount()).To(BeZero())
			})
		})

		When("a concurrent execute updated the row first", func() {
			BeforeEach(func() {
				fakeTxs.MarkExecutedReturns(repository.ErrStaleTransaction)
			})

			It("should report an invalid transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransition))
			})
		})
	})

	Describe("InstantTransfer", func() {
		It("should send from the caller's wallet and return the hash", func() {
			fakeChain.InstantTransferReturns(ethereum.CallResult{TxHash: "0xinstant"}, nil)

			hash, err := scheduler.InstantTransfer(ctx, caller, core.TransferRequest{RecipientAddress: recipient, Amount: decimal.NewFromInt(1)})
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("0xinstant"))
			Expect(fakeTxs.CreateTransactionCallCount()).To(BeZero())

			_, sender, _, _ := fakeChain.InstantTransferArgsForCall(0)
			Expect(sender).To(Equal(caller.WalletAddress))
		})
	})

	Describe("GetBalance", func() {
		It("should map invalid addresses to validation errors", func() {
			fakeChain.GetBalanceReturns(decimal.Zero, ethereum.ErrInvalidAddress)

			_, err := scheduler.GetBalance(ctx, "0x1")
			Expect(err).To(MatchError(core.ErrValidation))
		})

		It("should return the chain balance", func() {
			fakeChain.GetBalanceReturns(decimal.RequireFromString("3.25"), nil)

			balance, err := scheduler.GetBalance(ctx, recipient)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.String()).To(Equal("3.25"))
		})
	})

	Describe("QuoteFee", func() {
		It("should reject non-positive amounts", func() {
			_, err := scheduler.QuoteFee(ctx, decimal.Zero)
			Expect(err).To(MatchError(core.ErrValidation))
			Expect(fakeChain.QuoteFeeCallCount()).To(BeZero())
		})
	})
})
