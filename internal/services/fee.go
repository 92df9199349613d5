package services

import (
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// amountScale is the number of fractional digits the ledger stores.
const amountScale = 9

var (
	defaultFeeRates = map[models.Currency]decimal.Decimal{
		models.SOL:  decimal.RequireFromString("0.005"),
		models.USDC: decimal.RequireFromString("0.003"),
		models.FLBY: decimal.RequireFromString("0.001"),
	}
	defaultFeeRate = decimal.RequireFromString("0.005")
	minimumFee     = decimal.RequireFromString("0.001")
)

// FeePolicy computes the platform fee for moving value out of the ledger.
type FeePolicy struct {
	rates       map[models.Currency]decimal.Decimal
	defaultRate decimal.Decimal
	minimum     decimal.Decimal
}

// NewFeePolicy returns the policy with the platform rates: 0.5% SOL, 0.3% USDC,
// 0.1% FLBY, 0.5% for anything else and a 0.001 floor.
func NewFeePolicy() *FeePolicy {
	return &FeePolicy{
		rates:       defaultFeeRates,
		defaultRate: defaultFeeRate,
		minimum:     minimumFee,
	}
}

// CalculateFee returns the fee for amount in currency. The fee is charged in the same currency.
func (p *FeePolicy) CalculateFee(amount decimal.Decimal, currency models.Currency) (decimal.Decimal, models.Currency) {
	rate, ok := p.rates[currency]
	if !ok {
		rate = p.defaultRate
	}
	fee := amount.Mul(rate).Round(amountScale)
	if fee.LessThan(p.minimum) {
		fee = p.minimum
	}
	return fee, currency
}

// validateAmount rejects non-positive amounts and amounts finer than the ledger scale.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fail(ErrInvalidAmount, "amount must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return fail(ErrInvalidAmount, "amount has more than %d decimal places", amountScale)
	}
	return nil
}
