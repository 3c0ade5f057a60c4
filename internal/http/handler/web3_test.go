package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"paysched/internal/core"
	"paysched/internal/ethereum"
	"paysched/internal/http/handler"
	"paysched/internal/http/handler/fake"
	"paysched/internal/http/handler/middleware"
	"paysched/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recipient = "0xABC0000000000000000000000000000000000002"

var _ = Describe("Web3Handler", func() {
	var (
		wh            *handler.Web3Handler
		fakePayments  *fake.PaymentService
		fakeHistory   *fake.HistoryService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		caller        core.Identity
		authenticated bool
		fakeErr       error
	)

	newRequest := func(method, target, body string) *http.Request {
		var r *http.Request
		if body == "" {
			r = httptest.NewRequest(method, target, nil)
		} else {
			r = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		if authenticated {
			r = r.WithContext(middleware.WithIdentity(r.Context(), caller))
		}
		return r
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		authenticated = true
		caller = core.Identity{
			UserID:        "user-1",
			WalletAddress: "0xabc0000000000000000000000000000000000001",
			AccountType:   repository.AccountTypeWeb3,
		}

		fakePayments = new(fake.PaymentService)
		fakeHistory = new(fake.HistoryService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = jsonDecoding

		w = httptest.NewRecorder()
		wh = handler.NewWeb3Handler(zap.NewNop().Sugar(), fakeValidator, fakePayments, fakeHistory)
	})

	Describe("HandleGetBalance", func() {
		var target string

		BeforeEach(func() {
			target = "/api/v1/web3/getBalance?address=" + recipient
			fakePayments.GetBalanceReturns(decimal.RequireFromString("1.5"), nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodGet, target, "")
			wh.HandleGetBalance(w, req)
		})

		When("the address is valid", func() {
			It("should return the balance", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response).To(Equal(map[string]string{"address": recipient, "balance": "1.5"}))
			})
		})

		When("the address is missing", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/getBalance"
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakePayments.GetBalanceCallCount()).To(Equal(0))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakePayments.GetBalanceReturns(decimal.Zero, fmt.Errorf("%w: dial tcp: refused", ethereum.ErrChainCallFailed))
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(w.Body.String()).To(ContainSubstring(ethereum.ErrChainCallFailed.Error()))
			})
		})
	})

	Describe("HandleGetFee", func() {
		var target string

		BeforeEach(func() {
			target = "/api/v1/web3/fee?amount=2"
			fakePayments.QuoteFeeReturns(decimal.RequireFromString("0.02"), nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodGet, target, "")
			wh.HandleGetFee(w, req)
		})

		It("should quote the fee for the amount", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"fee":"0.02"`))
			_, amount := fakePayments.QuoteFeeArgsForCall(0)
			Expect(amount.String()).To(Equal("2"))
		})

		When("the amount is not a number", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/fee?amount=abc"
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakePayments.QuoteFeeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleCreateTransaction", func() {
		var body string

		BeforeEach(func() {
			body = `{"recipientAddress":"` + recipient + `","message":"rent","amount":"1.5","scheduledDate":"2025-06-01T00:00:00Z"}`
			fakePayments.ScheduleReturns(core.ScheduleResult{
				TransactionSummary: core.TransactionSummary{
					ID:     "tx-1",
					Status: repository.StatusScheduled,
				},
				BlockChainTxID:   "42",
				BlockChainTxHash: "0xhash",
			}, nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodPost, "/api/v1/web3/transaction", body)
			wh.HandleCreateTransaction(w, req)
		})

		When("scheduling succeeds", func() {
			It("should return the scheduled record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring(`"blockChainTxId":"42"`))
				Expect(w.Body.String()).To(ContainSubstring(`"status":"SCHEDULED"`))

				Expect(fakePayments.ScheduleCallCount()).To(Equal(1))
				_, gotCaller, scheduleReq := fakePayments.ScheduleArgsForCall(0)
				Expect(gotCaller).To(Equal(caller))
				Expect(scheduleReq.RecipientAddress).To(Equal(recipient))
				Expect(scheduleReq.Message).To(Equal("rent"))
				Expect(scheduleReq.Amount.String()).To(Equal("1.5"))
				Expect(scheduleReq.ScheduledDate).To(BeTemporally("==", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				authenticated = false
			})

			It("should return 401 without touching the chain", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakePayments.ScheduleCallCount()).To(Equal(0))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(0))
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				body = `{"recipientAddress":"` + recipient + `","amount":"1.5","scheduledDate":"2025-06-01T00:00:00Z"}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("message"))
				Expect(fakePayments.ScheduleCallCount()).To(Equal(0))
			})
		})

		When("the amount is negative", func() {
			BeforeEach(func() {
				body = `{"recipientAddress":"` + recipient + `","message":"rent","amount":"-1","scheduledDate":"2025-06-01T00:00:00Z"}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakePayments.ScheduleCallCount()).To(Equal(0))
			})
		})

		When("the contract call reverts", func() {
			BeforeEach(func() {
				fakePayments.ScheduleReturns(core.ScheduleResult{}, fmt.Errorf("%w: transaction 0xdead reverted", ethereum.ErrChainCallFailed))
			})

			It("should return 502 with the chain message", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(w.Body.String()).To(ContainSubstring("reverted"))
			})
		})

		When("the receipt has no scheduling event", func() {
			BeforeEach(func() {
				fakePayments.ScheduleReturns(core.ScheduleResult{}, ethereum.ErrEventNotFound)
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("the core rejects the request", func() {
			BeforeEach(func() {
				fakePayments.ScheduleReturns(core.ScheduleResult{}, fmt.Errorf("%w: a linked wallet is required", core.ErrValidation))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("linked wallet"))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		var target string

		BeforeEach(func() {
			target = "/api/v1/web3/transaction?start=2024-01-01&end=2024-01-31"
			fakeHistory.ListTransactionsReturns([]core.TransactionSummary{
				{ID: "tx-1", RecipientAddress: recipient, Status: repository.StatusScheduled},
			}, nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodGet, target, "")
			wh.HandleGetTransactions(w, req)
		})

		When("date bounds are given", func() {
			It("should pass an inclusive range covering the whole end day", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"id":"tx-1"`))

				_, gotCaller, rng := fakeHistory.ListTransactionsArgsForCall(0)
				Expect(gotCaller).To(Equal(caller))
				Expect(*rng.From).To(BeTemporally("==", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
				Expect(*rng.To).To(BeTemporally("==", time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)))
			})
		})

		When("no bounds are given", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/transaction"
			})

			It("should pass an open range", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, rng := fakeHistory.ListTransactionsArgsForCall(0)
				Expect(rng.From).To(BeNil())
				Expect(rng.To).To(BeNil())
			})
		})

		When("a bound is not a date", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/transaction?start=yesterday"
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeHistory.ListTransactionsCallCount()).To(Equal(0))
			})
		})

		When("the range is inverted", func() {
			BeforeEach(func() {
				fakeHistory.ListTransactionsReturns(nil, fmt.Errorf("%w: start is after end", core.ErrValidation))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				fakeHistory.ListTransactionsReturns([]core.TransactionSummary{}, nil)
			})

			It("should return an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"transactions":[]`))
			})
		})
	})

	Describe("HandleGetHistory", func() {
		var target string

		BeforeEach(func() {
			target = "/api/v1/web3/transaction/history?limit=5"
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodGet, target, "")
			wh.HandleGetHistory(w, req)
		})

		It("should forward the limit", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, limit := fakeHistory.ListRecentTransactionsArgsForCall(0)
			Expect(limit).To(Equal(5))
		})

		When("no limit is given", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/transaction/history"
			})

			It("should leave the default to the core", func() {
				_, _, limit := fakeHistory.ListRecentTransactionsArgsForCall(0)
				Expect(limit).To(Equal(0))
			})
		})

		When("the limit is not a number", func() {
			BeforeEach(func() {
				target = "/api/v1/web3/transaction/history?limit=ten"
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeHistory.ListRecentTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleExecuteTransaction", func() {
		BeforeEach(func() {
			fakePayments.ExecuteReturns(core.ExecutionResult{
				ID:      "tx-1",
				Status:  repository.StatusExecuted,
				TxHash:  "0xexec",
				Receipt: json.RawMessage(`{"status":"0x1"}`),
			}, nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodPost, "/api/v1/web3/executeTransaction", `{"id":"tx-1"}`)
			wh.HandleExecuteTransaction(w, req)
		})

		When("execution succeeds", func() {
			It("should return the receipt", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"status":"EXECUTED"`))
				Expect(w.Body.String()).To(ContainSubstring(`"receipt":{"status":"0x1"}`))
				_, gotCaller, id := fakePayments.ExecuteArgsForCall(0)
				Expect(gotCaller).To(Equal(caller))
				Expect(id).To(Equal("tx-1"))
			})
		})

		When("the transaction is unknown", func() {
			BeforeEach(func() {
				fakePayments.ExecuteReturns(core.ExecutionResult{}, fmt.Errorf("transaction tx-1: %w", core.ErrNotFound))
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the transaction already left SCHEDULED", func() {
			BeforeEach(func() {
				fakePayments.ExecuteReturns(core.ExecutionResult{}, fmt.Errorf("%w: transaction tx-1 is EXECUTED", core.ErrInvalidTransition))
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakePayments.ExecuteReturns(core.ExecutionResult{}, fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleInstantTransaction", func() {
		BeforeEach(func() {
			fakePayments.InstantTransferReturns("0xinstant", nil)
		})

		JustBeforeEach(func() {
			req = newRequest(http.MethodPost, "/api/v1/web3/instantTransaction",
				`{"recipientAddress":"`+recipient+`","amount":"0.25"}`)
			wh.HandleInstantTransaction(w, req)
		})

		It("should return the transaction hash", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"transactionHash":"0xinstant"`))
			_, _, transfer := fakePayments.InstantTransferArgsForCall(0)
			Expect(transfer.RecipientAddress).To(Equal(recipient))
			Expect(transfer.Amount.String()).To(Equal("0.25"))
		})
	})

	Describe("RegisterRoutes", func() {
		var mux *http.ServeMux

		BeforeEach(func() {
			mux = http.NewServeMux()
			ah := handler.NewAuthHandler(zap.NewNop().Sugar(), fakeValidator, new(fake.AuthService), time.Hour)
			handler.RegisterRoutes(mux, ah, wh)
		})

		It("should route the history path separately from the list path", func() {
			mux.ServeHTTP(w, newRequest(http.MethodGet, "/api/v1/web3/transaction/history", ""))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeHistory.ListRecentTransactionsCallCount()).To(Equal(1))
			Expect(fakeHistory.ListTransactionsCallCount()).To(Equal(0))
		})

		It("should reject methods that are not registered", func() {
			mux.ServeHTTP(w, newRequest(http.MethodDelete, "/api/v1/web3/transaction", ""))
			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})
})
