package core

import (
	"encoding/json"
	"time"

	"paysched/internal/repository"

	"github.com/shopspring/decimal"
)

// Identity is the authenticated caller. Every core operation that acts on
// behalf of a user receives it explicitly.
type Identity struct {
	UserID        string                 `json:"id"`
	Name          string                 `json:"name,omitempty"`
	Email         string                 `json:"email,omitempty"`
	WalletAddress string                 `json:"walletAddress,omitempty"`
	AccountType   repository.AccountType `json:"accountType"`
}

type Credentials struct {
	Name     string
	Email    string
	Password string
}

type WalletLogin struct {
	Message   string
	Signature string
	Address   string
}

type ScheduleRequest struct {
	RecipientAddress string
	Message          string
	Amount           decimal.Decimal
	ScheduledDate    time.Time
}

type TransferRequest struct {
	RecipientAddress string
	Amount           decimal.Decimal
}

// DateRange bounds are inclusive. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type TransactionSummary struct {
	ID               string                       `json:"id"`
	RecipientAddress string                       `json:"recipientAddress"`
	Message          string                       `json:"message"`
	Amount           decimal.Decimal              `json:"amount"`
	ScheduledDate    time.Time                    `json:"scheduledDate"`
	Status           repository.TransactionStatus `json:"status"`
}

type ScheduleResult struct {
	TransactionSummary
	BlockChainTxID   string `json:"blockChainTxId"`
	BlockChainTxHash string `json:"blockChainTxHash"`
}

type ExecutionResult struct {
	ID      string                       `json:"id"`
	Status  repository.TransactionStatus `json:"status"`
	TxHash  string                       `json:"transactionHash"`
	Receipt json.RawMessage              `json:"receipt"`
}

func identityOf(user repository.User) Identity {
	id := Identity{
		UserID:      user.ID,
		Name:        user.Name,
		AccountType: user.AccountType,
	}
	if user.Email != nil {
		id.Email = *user.Email
	}
	if user.WalletAddress != nil {
		id.WalletAddress = *user.WalletAddress
	}
	return id
}

func summaryOf(tx repository.Transaction) TransactionSummary {
	return TransactionSummary{
		ID:               tx.ID,
		RecipientAddress: tx.RecipientAddress,
		Message:          tx.Message,
		Amount:           tx.Amount,
		ScheduledDate:    tx.ScheduledDate,
		Status:           tx.Status,
	}
}
