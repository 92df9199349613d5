package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttachmentStatus is the lifecycle state of a ValueAttachment.
type AttachmentStatus string

const (
	AttachmentActive    AttachmentStatus = "active"
	AttachmentRedeemed  AttachmentStatus = "redeemed"
	AttachmentExpired   AttachmentStatus = "expired"
	AttachmentCancelled AttachmentStatus = "cancelled"
)

// ValueAttachment represents value bound to a product and claimable with a redemption code.
type ValueAttachment struct {
	ID               string           `json:"id" db:"id"`
	UserID           string           `json:"user_id" db:"user_id"` // Owner / creator
	ProductID        string           `json:"product_id" db:"product_id"`
	ProductType      ProductType      `json:"product_type" db:"product_type"`
	Amount           decimal.Decimal  `json:"amount" db:"amount"`
	Currency         Currency         `json:"currency" db:"currency"`
	RecipientAddress *string          `json:"recipient_address,omitempty" db:"recipient_address"`
	RecipientUserID  *string          `json:"recipient_user_id,omitempty" db:"recipient_user_id"` // Restricts who may redeem
	ExpiresAt        *time.Time       `json:"expires_at,omitempty" db:"expires_at"`
	Message          *string          `json:"message,omitempty" db:"message"`
	RedemptionCode   string           `json:"-" db:"redemption_code"` // Bearer secret
	Status           AttachmentStatus `json:"status" db:"status"`
	RedeemedAt       *time.Time       `json:"redeemed_at,omitempty" db:"redeemed_at"`
	RedeemedBy       *string          `json:"redeemed_by,omitempty" db:"redeemed_by"`
	TransactionHash  *string          `json:"transaction_hash,omitempty" db:"transaction_hash"`
	FeeAmount        decimal.Decimal  `json:"fee_amount" db:"fee_amount"`
	FeeCurrency      Currency         `json:"fee_currency" db:"fee_currency"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
}

// ExpiredAt reports whether the attachment has an expiry that lies before now.
func (a *ValueAttachment) ExpiredAt(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// NetAmount is the amount sent on-chain on redemption: the attached amount minus the fee.
func (a *ValueAttachment) NetAmount() decimal.Decimal {
	net := a.Amount.Sub(a.FeeAmount)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ClaimState is the state of a redemption claim ticket.
type ClaimState string

const (
	ClaimHeld      ClaimState = "held"
	ClaimAmbiguous ClaimState = "ambiguous"
	ClaimConsumed  ClaimState = "consumed"
)

// RedemptionClaim is the durable lock that lets exactly one redeemer proceed per code.
type RedemptionClaim struct {
	RedemptionCode string     `db:"redemption_code"`
	Ticket         string     `db:"ticket"`
	Claimant       string     `db:"claimant"`
	State          ClaimState `db:"state"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
