package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrInvalidAmount, http.StatusBadRequest},
		{services.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrInsufficientBalance, http.StatusBadRequest},
		{services.ErrAlreadyRedeemed, http.StatusBadRequest},
		{services.ErrExpired, http.StatusBadRequest},
		{services.ErrInvalidState, http.StatusBadRequest},
		{services.ErrUnauthorized, http.StatusForbidden},
		{services.ErrComplianceBlocked, http.StatusForbidden},
		{services.ErrLimitExceeded, http.StatusUnprocessableEntity},
		{services.ErrRateLimited, http.StatusTooManyRequests},
		{services.ErrTransferFailed, http.StatusBadGateway},
		{services.ErrWalletUnavailable, http.StatusServiceUnavailable},
		{services.ErrAmbiguous, http.StatusAccepted},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(fmt.Errorf("%w: wrapped", tt.err)))
		})
	}
}

func TestWriteError_HidesInternalReason(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "internal", body["error"])
	assert.Equal(t, "internal server error", body["reason"])
}

func TestWriteError_DomainReason(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, fmt.Errorf("%w: need 4, have 1", services.ErrInsufficientBalance))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "insufficient_balance", body["error"])
	assert.Contains(t, body["reason"], "need 4")
}
