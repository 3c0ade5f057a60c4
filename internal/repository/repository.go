package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paysched/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrDuplicateUser error = errors.New("user already exists")
var ErrStaleTransaction error = errors.New("transaction is no longer scheduled")

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// NormalizeAddress is the canonical form of wallet addresses stored and queried.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// CreateUser inserts user. A unique violation on email or wallet address
// returns ErrDuplicateUser.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if user.WalletAddress != nil {
		normalized := NormalizeAddress(*user.WalletAddress)
		user.WalletAddress = &normalized
	}

	err := r.db.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return fmt.Errorf("create user: %w", ErrDuplicateUser)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *Repository) GetUserByWallet(ctx context.Context, address string) (User, error) {
	return r.getUserBy(ctx, "wallet_address", NormalizeAddress(address))
}

func (r *Repository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *Transaction) error {
	err := r.db.Insert(ctx, tx)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

// GetUserTransaction returns the transaction only when it is owned by userID.
func (r *Repository) GetUserTransaction(ctx context.Context, userID, id string) (Transaction, error) {
	var txs []Transaction

	err := r.db.Find(ctx, db.Query{
		Filters: []db.Filter{
			{Column: "id", Op: "=", Value: id},
			{Column: "user_id", Op: "=", Value: userID},
		},
		Limit: 1,
	}, &txs)
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	if len(txs) == 0 {
		return Transaction{}, ErrTransactionNotFound
	}

	return txs[0], nil
}

// ListTransactions returns the user's transactions whose scheduled date lies
// within the inclusive bounds, most recent first. Nil bounds are open.
func (r *Repository) ListTransactions(ctx context.Context, userID string, from, to *time.Time) ([]Transaction, error) {
	filters := []db.Filter{{Column: "user_id", Op: "=", Value: userID}}
	if from != nil {
		filters = append(filters, db.Filter{Column: "scheduled_date", Op: ">=", Value: *from})
	}
	if to != nil {
		filters = append(filters, db.Filter{Column: "scheduled_date", Op: "<=", Value: *to})
	}

	txs := []Transaction{}
	err := r.db.Find(ctx, db.Query{
		Filters: filters,
		OrderBy: "scheduled_date desc",
	}, &txs)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return txs, nil
}

func (r *Repository) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]Transaction, error) {
	txs := []Transaction{}
	err := r.db.Find(ctx, db.Query{
		Filters: []db.Filter{{Column: "user_id", Op: "=", Value: userID}},
		OrderBy: "scheduled_date desc",
		Limit:   limit,
	}, &txs)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}

	return txs, nil
}

// MarkExecuted moves a SCHEDULED transaction to EXECUTED. The schedule
// call hash is kept; txHash is the execute call.
func (r *Repository) MarkExecuted(ctx context.Context, id, txHash, receiptDump string) error {
	return r.transition(ctx, id, map[string]any{
		"status":              StatusExecuted,
		"execution_tx_hash":   txHash,
		"block_chain_tx_dump": receiptDump,
	})
}

// MarkFailed moves a SCHEDULED transaction to FAILED, keeping the on-chain id.
func (r *Repository) MarkFailed(ctx context.Context, id, reason string) error {
	return r.transition(ctx, id, map[string]any{
		"status":         StatusFailed,
		"failure_reason": reason,
	})
}

func (r *Repository) transition(ctx context.Context, id string, updates map[string]any) error {
	n, err := r.db.Update(ctx, &Transaction{}, []db.Filter{
		{Column: "id", Op: "=", Value: id},
		{Column: "status", Op: "=", Value: StatusScheduled},
	}, updates)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}

	if n == 0 {
		return ErrStaleTransaction
	}

	return nil
}
