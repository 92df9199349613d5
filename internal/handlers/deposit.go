package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// Depositor records incoming deposits.
type Depositor interface {
	Deposit(ctx context.Context, req services.DepositRequest) (*services.DepositResult, error)
}

// DepositSettler confirms or fails pending deposits.
type DepositSettler interface {
	ConfirmDeposit(ctx context.Context, transactionID, transactionHash string, confirmations int) (*models.CustodialWalletTransaction, error)
	FailDeposit(ctx context.Context, transactionID, reason string) (*models.CustodialWalletTransaction, error)
}

// DepositRequest represents a deposit notification
// swagger:model DepositRequest
type DepositRequest struct {
	// example: SOL
	Currency models.Currency `json:"currency"`
	// example: 10.5
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	// Sending address
	FromAddress string `json:"from_address,omitempty"`
	// On-chain transaction hash, if already known
	TransactionHash string `json:"transaction_hash,omitempty"`
}

// DepositResponse is the pending deposit and the balance after it
// swagger:model DepositResponse
type DepositResponse struct {
	Transaction *models.CustodialWalletTransaction `json:"transaction"`
	Balance     *models.UserWalletBalance          `json:"balance"`
}

// ConfirmDepositRequest carries the on-chain confirmation of a deposit
// swagger:model ConfirmDepositRequest
type ConfirmDepositRequest struct {
	TransactionHash string `json:"transaction_hash,omitempty"`
	Confirmations   int    `json:"confirmations"`
}

// FailDepositRequest carries the reason a deposit never arrived
// swagger:model FailDepositRequest
type FailDepositRequest struct {
	Reason string `json:"reason"`
}

// NewDepositHandler returns an HTTP handler recording a pending deposit.
// @Summary Record deposit
// @Description Adds the amount to the caller's pending balance until it is confirmed
// @Tags custodial-wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit"
// @Success 201 {object} handlers.DepositResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /custodial-wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(depositor Depositor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		var req DepositRequest
		if !decode(w, r, &req) {
			return
		}

		res, err := depositor.Deposit(r.Context(), services.DepositRequest{
			UserID:          userID,
			Currency:        req.Currency,
			Amount:          req.Amount,
			FromAddress:     req.FromAddress,
			TransactionHash: req.TransactionHash,
		})
		if err != nil {
			logger.Log.Errorw("deposit failed", "userID", userID, "currency", req.Currency, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, DepositResponse{Transaction: res.Transaction, Balance: res.Balance})
	}
}

// NewConfirmDepositHandler returns an HTTP handler making a pending deposit spendable.
// @Summary Confirm deposit
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Deposit transaction id"
// @Param request body handlers.ConfirmDepositRequest true "Confirmation"
// @Success 200 {object} models.CustodialWalletTransaction
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /custodial-wallet/deposit/{id}/confirm [post]
// @Security BearerAuth
func NewConfirmDepositHandler(settler DepositSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req ConfirmDepositRequest
		if !decode(w, r, &req) {
			return
		}

		t, err := settler.ConfirmDeposit(r.Context(), id, req.TransactionHash, req.Confirmations)
		if err != nil {
			logger.Log.Errorw("confirm deposit failed", "transactionID", id, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// NewFailDepositHandler returns an HTTP handler reversing a pending deposit.
// @Summary Fail deposit
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Deposit transaction id"
// @Param request body handlers.FailDepositRequest true "Reason"
// @Success 200 {object} models.CustodialWalletTransaction
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /custodial-wallet/deposit/{id}/fail [post]
// @Security BearerAuth
func NewFailDepositHandler(settler DepositSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req FailDepositRequest
		if !decode(w, r, &req) {
			return
		}

		t, err := settler.FailDeposit(r.Context(), id, req.Reason)
		if err != nil {
			logger.Log.Errorw("fail deposit failed", "transactionID", id, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}
