package handlers

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// Withdrawer sends available funds to an external address.
type Withdrawer interface {
	Withdraw(ctx context.Context, req services.WithdrawRequest) (*models.CustodialWalletTransaction, error)
}

// WithdrawRequest withdraws available funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// example: SOL
	Currency models.Currency `json:"currency"`
	// example: 2.5
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	// Destination address
	ToAddress string `json:"to_address"`
}

// NewWithdrawHandler handles withdrawing funds from user wallet
// @Summary Withdraw funds
// @Description Sends available funds, minus the fee, to an external address
// @Tags custodial-wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.CustodialWalletTransaction
// @Success 202 {object} models.CustodialWalletTransaction "Transfer outcome pending reconciliation"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse
// @Router /custodial-wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(withdrawer Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		var req WithdrawRequest
		if !decode(w, r, &req) {
			return
		}

		t, err := withdrawer.Withdraw(r.Context(), services.WithdrawRequest{
			UserID:    userID,
			Currency:  req.Currency,
			Amount:    req.Amount,
			ToAddress: req.ToAddress,
		})
		if errors.Is(err, services.ErrAmbiguous) && t != nil {
			logger.Log.Errorw("withdrawal pending reconciliation", "userID", userID, "transactionID", t.ID, "error", err)
			writeJSON(w, http.StatusAccepted, t)
			return
		}
		if err != nil {
			logger.Log.Errorw("withdraw failed", "userID", userID, "currency", req.Currency, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, t)
	}
}
