package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalances(ctx context.Context, userID string) ([]models.UserWalletBalance, error)
}

// BalanceResponse represents a successful response with user balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// One entry per currency the user has touched
	Balances []models.UserWalletBalance `json:"balances"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// @Summary Get user balances
// @Description Returns the caller's balance row for every currency
// @Tags custodial-wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balances"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /custodial-wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(reader BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		balances, err := reader.GetBalances(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to get balances", "userID", userID, "error", err)
			writeError(w, err)
			return
		}
		if balances == nil {
			balances = []models.UserWalletBalance{}
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balances: balances})
	}
}
