package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAttachment() *models.ValueAttachment {
	return &models.ValueAttachment{
		ID:             "att-1",
		UserID:         testUser,
		ProductID:      "msg-1",
		ProductType:    models.ProductMessage,
		Amount:         decimal.NewFromInt(4),
		Currency:       models.SOL,
		RedemptionCode: "K7QX2M9A",
		Status:         models.AttachmentActive,
	}
}

func TestAttachValueHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockAttachmentWriter(ctrl)

	t.Run("returns the code to the owner", func(t *testing.T) {
		mockWriter.EXPECT().AttachValue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req services.AttachRequest) (*models.ValueAttachment, error) {
				assert.Equal(t, testUser, req.UserID)
				assert.Equal(t, "msg-1", req.ProductID)
				assert.Equal(t, "U2", req.RecipientUserID)
				return testAttachment(), nil
			})

		rr := httptest.NewRecorder()
		NewAttachValueHandler(mockWriter).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", testUser,
			`{"product_id":"msg-1","product_type":"message","amount":"4","currency":"SOL","recipient_user_id":"U2"}`, nil))

		require.Equal(t, http.StatusCreated, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "K7QX2M9A", body["redemption_code"])
		assert.Equal(t, "att-1", body["id"])
	})

	t.Run("insufficient balance", func(t *testing.T) {
		mockWriter.EXPECT().AttachValue(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: available 1", services.ErrInsufficientBalance))

		rr := httptest.NewRecorder()
		NewAttachValueHandler(mockWriter).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", testUser,
			`{"product_id":"msg-1","product_type":"message","amount":"4","currency":"SOL"}`, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "insufficient_balance", decodeBody(t, rr)["error"])
	})
}

func TestCancelAttachmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockAttachmentWriter(ctrl)
	params := map[string]string{"id": "att-1"}

	t.Run("cancelled", func(t *testing.T) {
		a := testAttachment()
		a.Status = models.AttachmentCancelled
		mockWriter.EXPECT().CancelAttachment(gomock.Any(), testUser, "att-1").Return(a, nil)

		rr := httptest.NewRecorder()
		NewCancelAttachmentHandler(mockWriter).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", testUser, nil, params))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "cancelled", body["status"])
		_, leaked := body["redemption_code"]
		assert.False(t, leaked)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockWriter.EXPECT().CancelAttachment(gomock.Any(), "intruder", "att-1").
			Return(nil, fmt.Errorf("%w: not the owner", services.ErrUnauthorized))

		rr := httptest.NewRecorder()
		NewCancelAttachmentHandler(mockWriter).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", "intruder", nil, params))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestListAttachmentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockAttachmentReader(ctrl)
	mockReader.EXPECT().ListAttachments(gomock.Any(), testUser).
		Return([]models.ValueAttachment{*testAttachment()}, nil)

	rr := httptest.NewRecorder()
	NewListAttachmentsHandler(mockReader).ServeHTTP(rr, newRequest(t, http.MethodGet, "/", testUser, nil, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody(t, rr)["attachments"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "K7QX2M9A", list[0].(map[string]any)["redemption_code"])
}
