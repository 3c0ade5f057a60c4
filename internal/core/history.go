package core

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// History serves transaction queries from the local store only.
type History struct {
	logs *zap.SugaredLogger
	txs  TransactionRepository
}

func NewHistory(logger *zap.SugaredLogger, txs TransactionRepository) *History {
	return &History{
		logs: logger,
		txs:  txs,
	}
}

// ListTransactions returns the caller's transactions scheduled within the
// inclusive range, most recent first.
func (h *History) ListTransactions(ctx context.Context, caller Identity, rng DateRange) ([]TransactionSummary, error) {
	if rng.From != nil && rng.To != nil && rng.From.After(*rng.To) {
		return nil, validationErr("start must not be after end")
	}

	txs, err := h.txs.ListTransactions(ctx, caller.UserID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	summaries := make([]TransactionSummary, 0, len(txs))
	for _, tx := range txs {
		if rng.From != nil && tx.ScheduledDate.Before(*rng.From) {
			continue
		}
		if rng.To != nil && tx.ScheduledDate.After(*rng.To) {
			continue
		}
		summaries = append(summaries, summaryOf(tx))
	}
	sortRecentFirst(summaries)

	return summaries, nil
}

// ListRecentTransactions returns at most limit transactions, most recent first.
// A non-positive limit means DefaultHistoryLimit; limits above MaxHistoryLimit are capped.
func (h *History) ListRecentTransactions(ctx context.Context, caller Identity, limit int) ([]TransactionSummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	txs, err := h.txs.ListRecentTransactions(ctx, caller.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}

	summaries := make([]TransactionSummary, 0, len(txs))
	for _, tx := range txs {
		summaries = append(summaries, summaryOf(tx))
	}
	sortRecentFirst(summaries)

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}

	h.logs.Debugw("recent transactions listed", "user_id", caller.UserID, "count", len(summaries))
	return summaries, nil
}

func sortRecentFirst(summaries []TransactionSummary) {
	slices.SortStableFunc(summaries, func(a, b TransactionSummary) int {
		return b.ScheduledDate.Compare(a.ScheduledDate)
	})
}

