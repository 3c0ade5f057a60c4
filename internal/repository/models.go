package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeLocal    AccountType = "LOCAL"
	AccountTypeGoogle   AccountType = "GOOGLE"
	AccountTypeLinkedIn AccountType = "LINKEDIN"
	AccountTypeWeb3     AccountType = "WEB3"
)

type TransactionStatus string

const (
	StatusScheduled TransactionStatus = "SCHEDULED"
	StatusExecuted  TransactionStatus = "EXECUTED"
	StatusFailed    TransactionStatus = "FAILED"
)

type User struct {
	ID            string      `gorm:"primaryKey;size:36"`
	Name          string      `gorm:"size:255"`
	Email         *string     `gorm:"size:255;uniqueIndex"`
	PasswordHash  *string     `gorm:"size:255"`
	WalletAddress *string     `gorm:"size:42;uniqueIndex"` // lowercased 0x + 40 hex
	AccountType   AccountType `gorm:"size:16;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Transaction struct {
	ID               string            `gorm:"primaryKey;size:36"`
	UserID           string            `gorm:"size:36;not null;index"`
	RecipientAddress string            `gorm:"size:42;not null"`
	Message          string            `gorm:"type:text;not null"`
	Amount           decimal.Decimal   `gorm:"type:numeric(38,18);not null"` // ether
	ScheduledDate    time.Time         `gorm:"not null;index"`
	Status           TransactionStatus `gorm:"size:16;not null;index"`
	BlockChainTxID   *string           `gorm:"size:78"` // uint256 in decimal
	BlockChainTxHash *string           `gorm:"size:66"` // schedule call
	ExecutionTxHash  *string           `gorm:"size:66"`
	BlockChainTxDump *string           `gorm:"type:text"`
	FailureReason    *string           `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
