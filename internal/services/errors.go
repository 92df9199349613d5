package services

import (
	"errors"
	"fmt"
)

// Error kinds. Operations wrap one of these with a human-readable reason;
// callers match them with errors.Is.
var (
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInvalidInput        = errors.New("invalid_input")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrNotFound            = errors.New("not_found")
	ErrAlreadyRedeemed     = errors.New("already_redeemed")
	ErrExpired             = errors.New("expired")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrComplianceBlocked   = errors.New("compliance_blocked")
	ErrLimitExceeded       = errors.New("limit_exceeded")
	ErrTransferFailed      = errors.New("transfer_failed")
	ErrWalletUnavailable   = errors.New("wallet_unavailable")
	ErrAmbiguous           = errors.New("ambiguous")
	ErrRateLimited         = errors.New("rate_limited")
	ErrInvalidState        = errors.New("invalid_state")
)

var kinds = []error{
	ErrInvalidAmount, ErrInvalidInput, ErrInsufficientBalance, ErrNotFound,
	ErrAlreadyRedeemed, ErrExpired, ErrUnauthorized, ErrComplianceBlocked,
	ErrLimitExceeded, ErrTransferFailed, ErrWalletUnavailable, ErrAmbiguous,
	ErrRateLimited, ErrInvalidState,
}

// fail wraps kind with a formatted reason.
func fail(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// KindOf returns the stable error kind of err, or "internal" for errors outside the taxonomy.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return "internal"
}
