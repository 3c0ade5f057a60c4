package handler

import (
	"context"
	"net/http"

	"paysched/internal/core"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, creds core.Credentials) (core.Identity, error)
	Login(ctx context.Context, email, password string) (core.Identity, error)
	LoginWallet(ctx context.Context, msg core.WalletLogin) (core.Identity, error)
	IssueToken(id core.Identity) (string, error)
	StartSession(ctx context.Context, id core.Identity) (string, error)
	EndSession(ctx context.Context, sessionID string) error
}

//counterfeiter:generate -o fake -fake-name PaymentService . PaymentService
type PaymentService interface {
	Schedule(ctx context.Context, caller core.Identity, req core.ScheduleRequest) (core.ScheduleResult, error)
	Execute(ctx context.Context, caller core.Identity, transactionID string) (core.ExecutionResult, error)
	InstantTransfer(ctx context.Context, caller core.Identity, req core.TransferRequest) (string, error)
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	QuoteFee(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name HistoryService . HistoryService
type HistoryService interface {
	ListTransactions(ctx context.Context, caller core.Identity, rng core.DateRange) ([]core.TransactionSummary, error)
	ListRecentTransactions(ctx context.Context, caller core.Identity, limit int) ([]core.TransactionSummary, error)
}
