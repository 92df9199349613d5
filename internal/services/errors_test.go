package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fail(ErrInsufficientBalance, "available %s", "1"), "insufficient_balance"},
		{fmt.Errorf("redeem: %w", fail(ErrAlreadyRedeemed, "claimed")), "already_redeemed"},
		{ErrAmbiguous, "ambiguous"},
		{errors.New("connection reset"), "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), tt.err.Error())
	}
}

func TestFail_KeepsReason(t *testing.T) {
	err := fail(ErrLimitExceeded, "amount %s exceeds %s", "2000", "1000")
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.EqualError(t, err, "limit_exceeded: amount 2000 exceeds 1000")
}
