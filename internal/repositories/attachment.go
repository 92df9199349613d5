package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

const attachmentColumns = `id, user_id, product_id, product_type, amount, currency,
	recipient_address, recipient_user_id, expires_at, message, redemption_code, status,
	redeemed_at, redeemed_by, transaction_hash, fee_amount, fee_currency, created_at`

// unclaimed restricts an attachment update to codes nobody is currently redeeming.
const unclaimed = `NOT EXISTS (
		SELECT 1 FROM redemption_claims c
		WHERE c.redemption_code = value_attachments.redemption_code
	)`

// AttachmentRepository persists value_attachments rows.
type AttachmentRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAttachmentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AttachmentRepository {
	return &AttachmentRepository{db: db, txGetter: txGetter}
}

// Create inserts a new attachment.
func (r *AttachmentRepository) Create(ctx context.Context, a *models.ValueAttachment) error {
	const query = `
		INSERT INTO value_attachments (
			id, user_id, product_id, product_type, amount, currency,
			recipient_address, recipient_user_id, expires_at, message, redemption_code, status,
			fee_amount, fee_currency, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	args := []any{
		a.ID, a.UserID, a.ProductID, a.ProductType, a.Amount, a.Currency,
		a.RecipientAddress, a.RecipientUserID, a.ExpiresAt, a.Message, a.RedemptionCode, a.Status,
		a.FeeAmount, a.FeeCurrency, a.CreatedAt,
	}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{a.ID, a.UserID, a.ProductID, a.Amount, a.Currency}, nil, err)
	return err
}

// ExistsByCode reports whether any attachment, whatever its status, uses code.
func (r *AttachmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM value_attachments WHERE redemption_code = $1)`
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, code)
	logQuery(query, []any{"***"}, exists, err)
	return exists, err
}

// GetByCode returns the attachment for a redemption code, or nil.
func (r *AttachmentRepository) GetByCode(ctx context.Context, code string) (*models.ValueAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM value_attachments WHERE redemption_code = $1`
	return r.getOne(ctx, query, code)
}

// GetByID returns the attachment with id, or nil.
func (r *AttachmentRepository) GetByID(ctx context.Context, id string) (*models.ValueAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM value_attachments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetForUpdate returns the attachment with id and row-locks it until the surrounding
// transaction ends, or nil.
func (r *AttachmentRepository) GetForUpdate(ctx context.Context, id string) (*models.ValueAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM value_attachments WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *AttachmentRepository) getOne(ctx context.Context, query string, arg string) (*models.ValueAttachment, error) {
	var a models.ValueAttachment
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &a, query, arg)
	logQuery(query, nil, a.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByUser returns the attachments created by a user, newest first.
func (r *AttachmentRepository) ListByUser(ctx context.Context, userID string) ([]models.ValueAttachment, error) {
	query := `SELECT ` + attachmentColumns + `
		FROM value_attachments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var attachments []models.ValueAttachment
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &attachments, query, userID)
	logQuery(query, []any{userID}, len(attachments), err)
	return attachments, err
}

// MarkRedeemed moves an attachment from active to redeemed. It reports false when the
// attachment was no longer active.
func (r *AttachmentRepository) MarkRedeemed(ctx context.Context, id, redeemedBy string, txHash *string, at time.Time) (bool, error) {
	const query = `
		UPDATE value_attachments
		SET status = 'redeemed', redeemed_at = $2, redeemed_by = $3, transaction_hash = $4
		WHERE id = $1 AND status = 'active'
	`
	args := []any{id, at, redeemedBy, txHash}
	return r.transition(ctx, query, args)
}

// Close moves an unclaimed active attachment to a terminal non-redeemed status
// (expired or cancelled). It reports false when the attachment was not active or a
// redemption claim exists for its code.
//
// The row lock is taken by a statement of its own so the claim check below runs on a
// snapshot that includes claims committed by a redeem that held the lock first.
func (r *AttachmentRepository) Close(ctx context.Context, id string, status models.AttachmentStatus) (bool, error) {
	const lock = `SELECT id FROM value_attachments WHERE id = $1 FOR UPDATE`
	var locked string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &locked, lock, id)
	logQuery(lock, []any{id}, locked, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	query := `
		UPDATE value_attachments
		SET status = $2
		WHERE id = $1 AND status = 'active' AND ` + unclaimed
	return r.transition(ctx, query, []any{id, status})
}

func (r *AttachmentRepository) transition(ctx context.Context, query string, args []any) (bool, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// ListExpired returns unclaimed active attachments whose expiry lies before now.
func (r *AttachmentRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]models.ValueAttachment, error) {
	query := `SELECT ` + attachmentColumns + `
		FROM value_attachments
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1 AND ` + unclaimed + `
		ORDER BY expires_at
		LIMIT $2
	`
	var attachments []models.ValueAttachment
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &attachments, query, now, limit)
	logQuery(query, []any{now, limit}, len(attachments), err)
	return attachments, err
}
