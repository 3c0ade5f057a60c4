package core

import (
	"context"
	"time"

	"paysched/internal/ethereum"
	"paysched/internal/repository"
	"paysched/internal/session"
	tokenIssuer "paysched/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByWallet(ctx context.Context, address string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name TransactionRepository . TransactionRepository
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *repository.Transaction) error
	GetUserTransaction(ctx context.Context, userID, id string) (repository.Transaction, error)
	ListTransactions(ctx context.Context, userID string, from, to *time.Time) ([]repository.Transaction, error)
	ListRecentTransactions(ctx context.Context, userID string, limit int) ([]repository.Transaction, error)
	MarkExecuted(ctx context.Context, id, txHash, receiptDump string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, id string) (session.Session, error)
	Delete(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	QuoteFee(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	InstantTransfer(ctx context.Context, sender, recipient string, amount decimal.Decimal) (ethereum.CallResult, error)
	ScheduleTransfer(ctx context.Context, sender, recipient string, amount decimal.Decimal, scheduledAt time.Time) (ethereum.CallResult, error)
	ExecuteTransaction(ctx context.Context, id string) (ethereum.CallResult, error)
}
