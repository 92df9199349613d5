package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error kind
	// example: insufficient_balance
	Error string `json:"error"`
	// Human readable reason
	Reason string `json:"reason,omitempty"`
}

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrAlreadyRedeemed),
		errors.Is(err, services.ErrExpired),
		errors.Is(err, services.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrComplianceBlocked):
		return http.StatusForbidden
	case errors.Is(err, services.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrTransferFailed):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrWalletUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrAmbiguous):
		return http.StatusAccepted
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the error body for err. Internal errors never leak their text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: services.KindOf(err), Reason: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Reason = "internal server error"
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, reason string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Reason: reason})
}

// callerID returns the authenticated user, writing 401 when there is none.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil || claims.UserID == "" {
		logger.Log.Errorw("unauthorized request", "uri", r.RequestURI)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Reason: "missing or invalid token"})
		return "", false
	}
	return claims.UserID, true
}

// decode reads a JSON body into v, writing 400 on malformed input.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Errorw("invalid request body", "uri", r.RequestURI, "error", err)
		badRequest(w, "invalid request body")
		return false
	}
	return true
}
