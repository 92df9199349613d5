package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger entry.
type TransactionType string

const (
	TxDeposit      TransactionType = "deposit"
	TxValueAttach  TransactionType = "value_attach"
	TxValueRelease TransactionType = "value_release" // reserved funds returned to available (cancel / expiry)
	TxRedemption   TransactionType = "redemption"
	TxWithdrawal   TransactionType = "withdrawal"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxConfirmed TransactionStatus = "confirmed"
	TxFailed    TransactionStatus = "failed"
)

// Transfer states recorded in metadata for outgoing transfers.
const (
	TransferIssued    = "issued"
	TransferAmbiguous = "ambiguous"
	TransferSucceeded = "succeeded"
	TransferFailed    = "failed"
)

// MetadataVersion is the current TransactionMetadata layout.
const MetadataVersion = 1

// TransactionMetadata is the versioned correlation payload stored with every ledger entry.
//
// Keys per transaction type (v1):
//   - deposit:       DepositInitiated
//   - value_attach:  AttachmentID, RedemptionCode, ProductID, ProductType
//   - value_release: AttachmentID, Reason
//   - redemption:    AttachmentID, RedemptionCode, ProductID, OriginalUserID, RecipientUserID, TransferKey, TransferState
//   - withdrawal:    TransferKey, TransferState
type TransactionMetadata struct {
	Version          int         `json:"v"`
	AttachmentID     string      `json:"attachment_id,omitempty"`
	RedemptionCode   string      `json:"redemption_code,omitempty"`
	ProductID        string      `json:"product_id,omitempty"`
	ProductType      ProductType `json:"product_type,omitempty"`
	OriginalUserID   string      `json:"original_user_id,omitempty"`
	RecipientUserID  string      `json:"recipient_user_id,omitempty"`
	TransferKey      string      `json:"transfer_key,omitempty"`
	TransferState    string      `json:"transfer_state,omitempty"`
	Reason           string      `json:"reason,omitempty"`
	DepositInitiated *time.Time  `json:"deposit_initiated,omitempty"`
}

// Value implements driver.Valuer so metadata is stored as JSONB.
func (m TransactionMetadata) Value() (driver.Value, error) {
	if m.Version == 0 {
		m.Version = MetadataVersion
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *TransactionMetadata) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = TransactionMetadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported metadata type")
}

// CustodialWalletTransaction is an append-only ledger entry.
type CustodialWalletTransaction struct {
	ID              string              `json:"id" db:"id"`
	UserID          string              `json:"user_id" db:"user_id"`
	TransactionType TransactionType     `json:"transaction_type" db:"transaction_type"`
	Amount          decimal.Decimal     `json:"amount" db:"amount"`
	Currency        Currency            `json:"currency" db:"currency"`
	FromAddress     *string             `json:"from_address,omitempty" db:"from_address"`
	ToAddress       *string             `json:"to_address,omitempty" db:"to_address"`
	TransactionHash *string             `json:"transaction_hash,omitempty" db:"transaction_hash"`
	Status          TransactionStatus   `json:"status" db:"status"`
	Confirmations   int                 `json:"confirmations" db:"confirmations"`
	FeeAmount       decimal.Decimal     `json:"fee_amount" db:"fee_amount"`
	FeeCurrency     Currency            `json:"fee_currency" db:"fee_currency"`
	Metadata        TransactionMetadata `json:"metadata" db:"metadata"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	ProcessedAt     *time.Time          `json:"processed_at,omitempty" db:"processed_at"`
}
