package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"paysched/internal/ethereum"
	"paysched/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Scheduler owns the transaction lifecycle: (none) -> SCHEDULED -> EXECUTED | FAILED.
// A local row exists only for on-chain schedules that confirmed and emitted an id.
type Scheduler struct {
	logs  *zap.SugaredLogger
	txs   TransactionRepository
	chain ChainClient
}

func NewScheduler(logger *zap.SugaredLogger, txs TransactionRepository, chain ChainClient) *Scheduler {
	return &Scheduler{
		logs:  logger,
		txs:   txs,
		chain: chain,
	}
}

// Schedule submits the payment to the contract, waits for confirmation and
// only then records it locally as SCHEDULED.
func (s *Scheduler) Schedule(ctx context.Context, caller Identity, req ScheduleRequest) (ScheduleResult, error) {
	if err := validateSchedule(req); err != nil {
		return ScheduleResult{}, err
	}

	sender, err := senderOf(caller)
	if err != nil {
		return ScheduleResult{}, err
	}

	res, err := s.chain.ScheduleTransfer(ctx, sender, req.RecipientAddress, req.Amount, req.ScheduledDate)
	if err != nil {
		s.logs.Errorw("schedule transfer failed", "user_id", caller.UserID, "error", err)
		return ScheduleResult{}, asValidation(err)
	}

	tx := repository.Transaction{
		ID:               uuid.NewString(),
		UserID:           caller.UserID,
		RecipientAddress: req.RecipientAddress,
		Message:          req.Message,
		Amount:           req.Amount,
		ScheduledDate:    req.ScheduledDate.UTC(),
		Status:           repository.StatusScheduled,
		BlockChainTxID:   &res.EventID,
		BlockChainTxHash: &res.TxHash,
	}

	// the chain call is committed, so the record must not depend on the caller staying connected
	if err := s.txs.CreateTransaction(context.WithoutCancel(ctx), &tx); err != nil {
		s.logs.Errorw("scheduled on chain but not recorded locally",
			"user_id", caller.UserID,
			"chain_tx_id", res.EventID,
			"tx_hash", res.TxHash,
			"error", err,
		)
		return ScheduleResult{}, fmt.Errorf("record scheduled transaction: %w", err)
	}

	s.logs.Infow("transaction scheduled",
		"user_id", caller.UserID,
		"transaction_id", tx.ID,
		"chain_tx_id", res.EventID,
		"tx_hash", res.TxHash,
	)

	return ScheduleResult{
		TransactionSummary: summaryOf(tx),
		BlockChainTxID:     res.EventID,
		BlockChainTxHash:   res.TxHash,
	}, nil
}

// Execute runs a SCHEDULED transaction owned by caller on chain. A chain
// failure is recorded as FAILED; a confirmation timeout leaves the row
// SCHEDULED because the outcome is unknown.
func (s *Scheduler) Execute(ctx context.Context, caller Identity, transactionID string) (ExecutionResult, error) {
	if strings.TrimSpace(transactionID) == "" {
		return ExecutionResult{}, validationErr("id is required")
	}

	tx, err := s.txs.GetUserTransaction(ctx, caller.UserID, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return ExecutionResult{}, fmt.Errorf("transaction %s: %w", transactionID, ErrNotFound)
		}
		return ExecutionResult{}, fmt.Errorf("get transaction: %w", err)
	}

	if tx.Status != repository.StatusScheduled || tx.BlockChainTxID == nil {
		return ExecutionResult{}, fmt.Errorf("%w: transaction %s is %s", ErrInvalidTransition, tx.ID, tx.Status)
	}

	res, err := s.chain.ExecuteTransaction(ctx, *tx.BlockChainTxID)
	if err != nil {
		return ExecutionResult{}, s.recordExecutionFailure(ctx, tx, err)
	}

	if err := s.txs.MarkExecuted(context.WithoutCancel(ctx), tx.ID, res.TxHash, res.ReceiptDump); err != nil {
		s.logs.Errorw("executed on chain but status not updated",
			"transaction_id", tx.ID,
			"chain_tx_id", *tx.BlockChainTxID,
			"tx_hash", res.TxHash,
			"error", err,
		)
		if errors.Is(err, repository.ErrStaleTransaction) {
			return ExecutionResult{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
		return ExecutionResult{}, fmt.Errorf("mark executed: %w", err)
	}

	s.logs.Infow("transaction executed",
		"user_id", caller.UserID,
		"transaction_id", tx.ID,
		"chain_tx_id", *tx.BlockChainTxID,
		"tx_hash", res.TxHash,
	)

	return ExecutionResult{
		ID:      tx.ID,
		Status:  repository.StatusExecuted,
		TxHash:  res.TxHash,
		Receipt: rawReceipt(res.ReceiptDump),
	}, nil
}

func rawReceipt(dump string) json.RawMessage {
	if dump == "" || !json.Valid([]byte(dump)) {
		return nil
	}
	return json.RawMessage(dump)
}

func (s *Scheduler) recordExecutionFailure(ctx context.Context, tx repository.Transaction, chainErr error) error {
	if errors.Is(chainErr, ethereum.ErrConfirmationTimeout) {
		s.logs.Errorw("execution outcome unknown, leaving transaction scheduled",
			"transaction_id", tx.ID,
			"chain_tx_id", *tx.BlockChainTxID,
			"error", chainErr,
		)
		return chainErr
	}

	if !errors.Is(chainErr, ethereum.ErrChainCallFailed) && !errors.Is(chainErr, ethereum.ErrEventNotFound) {
		return fmt.Errorf("execute transaction: %w", chainErr)
	}

	s.logs.Errorw("execution failed on chain",
		"transaction_id", tx.ID,
		"chain_tx_id", *tx.BlockChainTxID,
		"error", chainErr,
	)

	if err := s.txs.MarkFailed(context.WithoutCancel(ctx), tx.ID, chainErr.Error()); err != nil {
		s.logs.Errorw("failed to record execution failure", "transaction_id", tx.ID, "error", err)
	}

	return chainErr
}

// InstantTransfer pays recipient right away from the caller's wallet. No local row is kept.
func (s *Scheduler) InstantTransfer(ctx context.Context, caller Identity, req TransferRequest) (string, error) {
	if err := validateTransfer(req.RecipientAddress, req.Amount); err != nil {
		return "", err
	}

	sender, err := senderOf(caller)
	if err != nil {
		return "", err
	}

	res, err := s.chain.InstantTransfer(ctx, sender, req.RecipientAddress, req.Amount)
	if err != nil {
		s.logs.Errorw("instant transfer failed", "user_id", caller.UserID, "error", err)
		return "", asValidation(err)
	}

	s.logs.Infow("instant transfer confirmed", "user_id", caller.UserID, "tx_hash", res.TxHash)
	return res.TxHash, nil
}

func (s *Scheduler) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if strings.TrimSpace(address) == "" {
		return decimal.Zero, validationErr("address is required")
	}

	balance, err := s.chain.GetBalance(ctx, address)
	if err != nil {
		return decimal.Zero, asValidation(err)
	}
	return balance, nil
}

func (s *Scheduler) QuoteFee(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, validationErr("amount must be greater than zero")
	}

	fee, err := s.chain.QuoteFee(ctx, amount)
	if err != nil {
		return decimal.Zero, asValidation(err)
	}
	return fee, nil
}

func validateSchedule(req ScheduleRequest) error {
	if err := validateTransfer(req.RecipientAddress, req.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(req.Message) == "" {
		return validationErr("message is required")
	}
	if req.ScheduledDate.IsZero() {
		return validationErr("scheduledDate is required")
	}
	return nil
}

func validateTransfer(recipient string, amount decimal.Decimal) error {
	if strings.TrimSpace(recipient) == "" {
		return validationErr("recipientAddress is required")
	}
	if _, err := ethereum.ParseAddress(recipient); err != nil {
		return asValidation(err)
	}
	if !amount.IsPositive() {
		return validationErr("amount must be greater than zero")
	}
	if _, err := ethereum.ToWei(amount); err != nil {
		return asValidation(err)
	}
	return nil
}

func senderOf(caller Identity) (string, error) {
	if caller.WalletAddress == "" {
		return "", validationErr("a linked wallet is required to send payments")
	}
	return caller.WalletAddress, nil
}

