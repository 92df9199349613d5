package handlers

//go:generate mockgen -source=attachment.go -destination=attachment_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// AttachmentWriter creates and cancels value attachments.
type AttachmentWriter interface {
	AttachValue(ctx context.Context, req services.AttachRequest) (*models.ValueAttachment, error)
	CancelAttachment(ctx context.Context, userID, attachmentID string) (*models.ValueAttachment, error)
}

// AttachmentReader lists a user's attachments.
type AttachmentReader interface {
	ListAttachments(ctx context.Context, userID string) ([]models.ValueAttachment, error)
}

// AttachValueRequest attaches value to a product
// swagger:model AttachValueRequest
type AttachValueRequest struct {
	// example: msg-42
	ProductID string `json:"product_id"`
	// example: message
	ProductType models.ProductType `json:"product_type"`
	// example: 4
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	// example: SOL
	Currency models.Currency `json:"currency"`
	// Default destination of the redeemed value
	RecipientAddress string `json:"recipient_address,omitempty"`
	// Only this user may redeem when set
	RecipientUserID string     `json:"recipient_user_id,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Message         string     `json:"message,omitempty"`
}

// AttachmentView is an attachment as shown to its owner, redemption code included.
// swagger:model AttachmentView
type AttachmentView struct {
	models.ValueAttachment
	RedemptionCode string `json:"redemption_code"`
}

// AttachmentsResponse lists the caller's attachments
// swagger:model AttachmentsResponse
type AttachmentsResponse struct {
	Attachments []AttachmentView `json:"attachments"`
}

func viewOf(a models.ValueAttachment) AttachmentView {
	return AttachmentView{ValueAttachment: a, RedemptionCode: a.RedemptionCode}
}

// NewAttachValueHandler returns an HTTP handler reserving value for a product.
// @Summary Attach value
// @Description Moves the amount from available to reserved and returns a redemption code
// @Tags custodial-wallet
// @Accept json
// @Produce json
// @Param request body handlers.AttachValueRequest true "Attachment"
// @Success 201 {object} handlers.AttachmentView
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /custodial-wallet/attach-value [post]
// @Security BearerAuth
func NewAttachValueHandler(writer AttachmentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		var req AttachValueRequest
		if !decode(w, r, &req) {
			return
		}

		a, err := writer.AttachValue(r.Context(), services.AttachRequest{
			UserID:           userID,
			ProductID:        req.ProductID,
			ProductType:      req.ProductType,
			Amount:           req.Amount,
			Currency:         req.Currency,
			RecipientAddress: req.RecipientAddress,
			RecipientUserID:  req.RecipientUserID,
			ExpiresAt:        req.ExpiresAt,
			Message:          req.Message,
		})
		if err != nil {
			logger.Log.Errorw("attach value failed", "userID", userID, "productID", req.ProductID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, viewOf(*a))
	}
}

// NewCancelAttachmentHandler returns an HTTP handler releasing an unredeemed attachment.
// @Summary Cancel attachment
// @Tags custodial-wallet
// @Produce json
// @Param id path string true "Attachment id"
// @Success 200 {object} models.ValueAttachment
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /custodial-wallet/attachments/{id}/cancel [post]
// @Security BearerAuth
func NewCancelAttachmentHandler(writer AttachmentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		a, err := writer.CancelAttachment(r.Context(), userID, id)
		if err != nil {
			logger.Log.Errorw("cancel attachment failed", "userID", userID, "attachmentID", id, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// NewListAttachmentsHandler returns an HTTP handler listing the caller's attachments.
// @Summary List attachments
// @Tags custodial-wallet
// @Produce json
// @Success 200 {object} handlers.AttachmentsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /custodial-wallet/attachments [get]
// @Security BearerAuth
func NewListAttachmentsHandler(reader AttachmentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		attachments, err := reader.ListAttachments(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("list attachments failed", "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		views := make([]AttachmentView, 0, len(attachments))
		for _, a := range attachments {
			views = append(views, viewOf(a))
		}
		writeJSON(w, http.StatusOK, AttachmentsResponse{Attachments: views})
	}
}
