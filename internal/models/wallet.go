package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletStatus is the operational state of a custodial wallet.
type WalletStatus string

const (
	WalletActive  WalletStatus = "active"
	WalletFrozen  WalletStatus = "frozen"
	WalletRetired WalletStatus = "retired"
)

// CustodialWallet represents a pooled hot wallet row.
type CustodialWallet struct {
	ID                  string          `json:"id" db:"id"`
	Currency            Currency        `json:"currency" db:"currency"`
	WalletAddress       string          `json:"wallet_address" db:"wallet_address"`
	EncryptedPrivateKey []byte          `json:"-" db:"encrypted_private_key"` // Only the transfer adapter may use it
	Balance             decimal.Decimal `json:"balance" db:"balance"`
	ReservedBalance     decimal.Decimal `json:"reserved_balance" db:"reserved_balance"`
	Status              WalletStatus    `json:"status" db:"status"`
	IsHotWallet         bool            `json:"is_hot_wallet" db:"is_hot_wallet"`
	LastHealthCheck     *time.Time      `json:"last_health_check,omitempty" db:"last_health_check"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
}

// WalletHealth is the result of comparing a wallet's recorded and on-chain balance.
type WalletHealth struct {
	WalletID        string          `json:"wallet_id"`
	Currency        Currency        `json:"currency"`
	Address         string          `json:"address"`
	Status          WalletStatus    `json:"status"`
	IsHealthy       bool            `json:"is_healthy"`
	RecordedBalance decimal.Decimal `json:"recorded_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	Issues          []string        `json:"issues"`
	CheckedAt       time.Time       `json:"checked_at"`
}
