package handlers

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

// TransactionReader lists ledger entries of a user.
type TransactionReader interface {
	GetTransactions(ctx context.Context, userID string, limit int) ([]models.CustodialWalletTransaction, error)
}

// TransactionsResponse lists ledger entries, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.CustodialWalletTransaction `json:"transactions"`
}

// queryLimit parses the optional limit query parameter. Zero means the service default.
func queryLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NewListTransactionsHandler returns an HTTP handler listing the caller's ledger entries.
// @Summary List transactions
// @Tags custodial-wallet
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} handlers.TransactionsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /custodial-wallet/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(reader TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		limit, ok := queryLimit(r)
		if !ok {
			badRequest(w, "limit must be a non-negative integer")
			return
		}

		txs, err := reader.GetTransactions(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("list transactions failed", "userID", userID, "error", err)
			writeError(w, err)
			return
		}
		if txs == nil {
			txs = []models.CustodialWalletTransaction{}
		}
		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: txs})
	}
}
