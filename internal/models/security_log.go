package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Severity of a security event.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Security event types
const (
	EventDepositRequest      = "deposit_request"
	EventComplianceViolation = "compliance_violation"
	EventLargeTransaction    = "large_transaction"
	EventWalletFrozen        = "wallet_frozen"
	EventTransferAmbiguous   = "transfer_ambiguous"
)

// SecurityDetails is the free-form detail map of a security event.
type SecurityDetails map[string]any

// Value implements driver.Valuer.
func (d SecurityDetails) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (d *SecurityDetails) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return errors.New("unsupported details type")
}

// SecurityLog is an append-only audit record.
type SecurityLog struct {
	ID        string          `json:"id" db:"id"`
	UserID    *string         `json:"user_id,omitempty" db:"user_id"`
	EventType string          `json:"event_type" db:"event_type"`
	Severity  Severity        `json:"severity" db:"severity"`
	IPAddress *string         `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent *string         `json:"user_agent,omitempty" db:"user_agent"`
	Details   SecurityDetails `json:"details" db:"details"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
