package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrBalanceInvariant is returned when a balance row would break the ledger equation
// or go negative.
var ErrBalanceInvariant = errors.New("balance invariant violated")

// UserWalletBalance represents a user_wallet_balances row, keyed by (user, currency).
type UserWalletBalance struct {
	UserID           string          `json:"user_id" db:"user_id"`                     // Owner of the balance
	Currency         Currency        `json:"currency" db:"currency"`                   // Currency code
	AvailableBalance decimal.Decimal `json:"available_balance" db:"available_balance"` // Spendable funds
	PendingBalance   decimal.Decimal `json:"pending_balance" db:"pending_balance"`     // Deposits awaiting confirmation
	ReservedBalance  decimal.Decimal `json:"reserved_balance" db:"reserved_balance"`   // Funds held by attachments and in-flight withdrawals
	TotalDeposited   decimal.Decimal `json:"total_deposited" db:"total_deposited"`     // Lifetime deposits
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn" db:"total_withdrawn"`     // Lifetime outflows (redemptions and withdrawals)
	TotalFeesEarned  decimal.Decimal `json:"total_fees_earned" db:"total_fees_earned"` // Platform fees charged against this balance
	LastActivity     time.Time       `json:"last_activity" db:"last_activity"`         // Last mutation time
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`               // Row creation time
}

// NewUserWalletBalance returns an empty balance for the key.
func NewUserWalletBalance(userID string, currency Currency, now time.Time) *UserWalletBalance {
	return &UserWalletBalance{
		UserID:           userID,
		Currency:         currency,
		AvailableBalance: decimal.Zero,
		PendingBalance:   decimal.Zero,
		ReservedBalance:  decimal.Zero,
		TotalDeposited:   decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
		TotalFeesEarned:  decimal.Zero,
		LastActivity:     now,
		CreatedAt:        now,
	}
}

// Check verifies that no field is negative and that
// available + pending + reserved == totalDeposited - totalWithdrawn.
func (b *UserWalletBalance) Check() error {
	for _, v := range []decimal.Decimal{
		b.AvailableBalance, b.PendingBalance, b.ReservedBalance,
		b.TotalDeposited, b.TotalWithdrawn, b.TotalFeesEarned,
	} {
		if v.IsNegative() {
			return ErrBalanceInvariant
		}
	}
	held := b.AvailableBalance.Add(b.PendingBalance).Add(b.ReservedBalance)
	if !held.Equal(b.TotalDeposited.Sub(b.TotalWithdrawn)) {
		return ErrBalanceInvariant
	}
	return nil
}

// Clone returns a copy that can be mutated without touching b.
func (b *UserWalletBalance) Clone() *UserWalletBalance {
	c := *b
	return &c
}
