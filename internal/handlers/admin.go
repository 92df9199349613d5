package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
)

// WalletAdmin manages the custodial wallet pool.
type WalletAdmin interface {
	ListWallets(ctx context.Context) ([]models.CustodialWallet, error)
	CreateWallet(ctx context.Context, currency models.Currency, isHotWallet bool) (*models.CustodialWallet, error)
	CreateWallets(ctx context.Context, currencies []models.Currency) ([]services.WalletCreation, error)
	FreezeWallet(ctx context.Context, id, reason string) error
	HealthCheck(ctx context.Context) ([]models.WalletHealth, error)
}

// SecurityLogLister reads the audit trail.
type SecurityLogLister interface {
	List(ctx context.Context, severity string, limit int) ([]models.SecurityLog, error)
}

// WalletsResponse lists pool wallets
// swagger:model WalletsResponse
type WalletsResponse struct {
	Wallets []models.CustodialWallet `json:"wallets"`
}

// CreateWalletRequest creates one pool wallet
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// example: SOL
	Currency models.Currency `json:"currency"`
	// Defaults to true
	IsHotWallet *bool `json:"is_hot_wallet,omitempty"`
}

// CreateWalletsRequest creates a wallet for each listed currency; empty means all
// swagger:model CreateWalletsRequest
type CreateWalletsRequest struct {
	Currencies []models.Currency `json:"currencies"`
}

// CreateWalletsResponse reports per currency outcomes
// swagger:model CreateWalletsResponse
type CreateWalletsResponse struct {
	Results []services.WalletCreation `json:"results"`
}

// FreezeWalletRequest freezes a pool wallet
// swagger:model FreezeWalletRequest
type FreezeWalletRequest struct {
	Reason string `json:"reason"`
}

// HealthResponse reports wallet health
// swagger:model HealthResponse
type HealthResponse struct {
	Healthy bool                  `json:"healthy"`
	Wallets []models.WalletHealth `json:"wallets"`
}

// SecurityLogsResponse lists audit events, newest first
// swagger:model SecurityLogsResponse
type SecurityLogsResponse struct {
	Logs []models.SecurityLog `json:"logs"`
}

// NewHealthHandler returns an HTTP handler checking every pool wallet against the chain.
// @Summary Wallet pool health
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /custodial-wallet/health [get]
// @Security BearerAuth
func NewHealthHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := admin.HealthCheck(r.Context())
		if err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeError(w, err)
			return
		}

		resp := HealthResponse{Healthy: true, Wallets: report}
		if resp.Wallets == nil {
			resp.Wallets = []models.WalletHealth{}
		}
		for _, h := range report {
			if !h.IsHealthy {
				resp.Healthy = false
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewListWalletsHandler returns an HTTP handler listing pool wallets.
// @Summary List pool wallets
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.WalletsResponse
// @Router /admin/custodial-wallet/wallets [get]
// @Security BearerAuth
func NewListWalletsHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallets, err := admin.ListWallets(r.Context())
		if err != nil {
			logger.Log.Errorw("list wallets failed", "error", err)
			writeError(w, err)
			return
		}
		if wallets == nil {
			wallets = []models.CustodialWallet{}
		}
		writeJSON(w, http.StatusOK, WalletsResponse{Wallets: wallets})
	}
}

// NewCreateWalletHandler returns an HTTP handler creating a pool wallet.
// @Summary Create pool wallet
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Wallet"
// @Success 201 {object} models.CustodialWallet
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/custodial-wallet/create [post]
// @Security BearerAuth
func NewCreateWalletHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWalletRequest
		if !decode(w, r, &req) {
			return
		}
		hot := true
		if req.IsHotWallet != nil {
			hot = *req.IsHotWallet
		}

		wallet, err := admin.CreateWallet(r.Context(), req.Currency, hot)
		if err != nil {
			logger.Log.Errorw("create wallet failed", "currency", req.Currency, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wallet)
	}
}

// NewCreateWalletsHandler returns an HTTP handler creating wallets for several currencies.
// @Summary Create pool wallets
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletsRequest true "Currencies"
// @Success 200 {object} handlers.CreateWalletsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/custodial-wallet/create-multiple [post]
// @Security BearerAuth
func NewCreateWalletsHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWalletsRequest
		if !decode(w, r, &req) {
			return
		}

		results, err := admin.CreateWallets(r.Context(), req.Currencies)
		if err != nil {
			logger.Log.Errorw("create wallets failed", "currencies", req.Currencies, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CreateWalletsResponse{Results: results})
	}
}

// NewFreezeWalletHandler returns an HTTP handler freezing a pool wallet.
// @Summary Freeze pool wallet
// @Tags admin
// @Accept json
// @Param id path string true "Wallet id"
// @Param request body handlers.FreezeWalletRequest true "Reason"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/custodial-wallet/wallets/{id}/freeze [post]
// @Security BearerAuth
func NewFreezeWalletHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req FreezeWalletRequest
		if !decode(w, r, &req) {
			return
		}

		if err := admin.FreezeWallet(r.Context(), id, req.Reason); err != nil {
			logger.Log.Errorw("freeze wallet failed", "walletID", id, "error", err)
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewListSecurityLogsHandler returns an HTTP handler listing audit events.
// @Summary List security logs
// @Tags admin
// @Produce json
// @Param severity query string false "low, medium or high"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} handlers.SecurityLogsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/custodial-wallet/security-logs [get]
// @Security BearerAuth
func NewListSecurityLogsHandler(lister SecurityLogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(r)
		if !ok {
			badRequest(w, "limit must be a non-negative integer")
			return
		}

		logs, err := lister.List(r.Context(), r.URL.Query().Get("severity"), limit)
		if err != nil {
			logger.Log.Errorw("list security logs failed", "error", err)
			writeError(w, err)
			return
		}
		if logs == nil {
			logs = []models.SecurityLog{}
		}
		writeJSON(w, http.StatusOK, SecurityLogsResponse{Logs: logs})
	}
}
