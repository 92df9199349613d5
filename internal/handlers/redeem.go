package handlers

//go:generate mockgen -source=redeem.go -destination=redeem_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
)

// Redeemer claims the value behind a redemption code.
type Redeemer interface {
	Redeem(ctx context.Context, req services.RedeemRequest) (*services.RedemptionResult, error)
}

// RedeemRequest redeems a code for the caller
// swagger:model RedeemRequest
type RedeemRequest struct {
	// example: K7QX2M9A
	RedemptionCode string `json:"redemption_code"`
	// Destination address; defaults to the attachment's recipient address
	RecipientAddress string `json:"recipient_address,omitempty"`
}

// RedeemPendingResponse is returned when the transfer outcome is not yet known
// swagger:model RedeemPendingResponse
type RedeemPendingResponse struct {
	Error      string                     `json:"error"`
	Reason     string                     `json:"reason"`
	Redemption *services.RedemptionResult `json:"redemption,omitempty"`
}

// NewRedeemHandler returns an HTTP handler redeeming a code for the caller.
// @Summary Redeem value
// @Description Sends the attached value, minus the fee, to the recipient. Exactly one redeem per code succeeds.
// @Tags custodial-wallet
// @Accept json
// @Produce json
// @Param request body handlers.RedeemRequest true "Redemption"
// @Success 200 {object} services.RedemptionResult
// @Success 202 {object} handlers.RedeemPendingResponse "Transfer outcome pending reconciliation"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse
// @Router /custodial-wallet/redeem [post]
// @Security BearerAuth
func NewRedeemHandler(redeemer Redeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		var req RedeemRequest
		if !decode(w, r, &req) {
			return
		}

		res, err := redeemer.Redeem(r.Context(), services.RedeemRequest{
			RedemptionCode:   req.RedemptionCode,
			RecipientUserID:  userID,
			RecipientAddress: req.RecipientAddress,
		})
		if errors.Is(err, services.ErrAmbiguous) {
			logger.Log.Errorw("redemption pending reconciliation", "userID", userID, "error", err)
			writeJSON(w, http.StatusAccepted, RedeemPendingResponse{
				Error:      services.KindOf(err),
				Reason:     err.Error(),
				Redemption: res,
			})
			return
		}
		if err != nil {
			logger.Log.Errorw("redeem failed", "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
