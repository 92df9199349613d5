package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

const transactionColumns = `id, user_id, transaction_type, amount, currency, from_address, to_address,
	transaction_hash, status, confirmations, fee_amount, fee_currency, metadata, created_at, processed_at`

// TransactionRepository persists the append-only custodial_wallet_transactions log.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Create appends a ledger entry.
func (r *TransactionRepository) Create(ctx context.Context, t *models.CustodialWalletTransaction) error {
	const query = `
		INSERT INTO custodial_wallet_transactions (
			id, user_id, transaction_type, amount, currency, from_address, to_address,
			transaction_hash, status, confirmations, fee_amount, fee_currency, metadata, created_at, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	args := []any{
		t.ID, t.UserID, t.TransactionType, t.Amount, t.Currency, t.FromAddress, t.ToAddress,
		t.TransactionHash, t.Status, t.Confirmations, t.FeeAmount, t.FeeCurrency, t.Metadata, t.CreatedAt, t.ProcessedAt,
	}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{t.ID, t.UserID, t.TransactionType, t.Amount, t.Currency, t.Status}, nil, err)
	return err
}

// Settle records the outcome of a pending entry: status, hash, confirmations,
// metadata and processing time. Only pending rows can be settled.
func (r *TransactionRepository) Settle(ctx context.Context, t *models.CustodialWalletTransaction) error {
	const query = `
		UPDATE custodial_wallet_transactions
		SET status = $2, transaction_hash = $3, confirmations = $4, metadata = $5, processed_at = $6
		WHERE id = $1 AND status = 'pending'
	`
	args := []any{t.ID, t.Status, t.TransactionHash, t.Confirmations, t.Metadata, t.ProcessedAt}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{t.ID, t.Status, t.TransactionHash}, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetForUpdate returns the entry locked until the surrounding transaction ends, or nil.
func (r *TransactionRepository) GetForUpdate(ctx context.Context, id string) (*models.CustodialWalletTransaction, error) {
	if r.txGetter == nil || r.txGetter(ctx) == nil {
		return nil, ErrNoTx
	}
	query := `SELECT ` + transactionColumns + ` FROM custodial_wallet_transactions WHERE id = $1 FOR UPDATE`
	var t models.CustodialWalletTransaction
	err := sqlx.GetContext(ctx, r.txGetter(ctx), &t, query, id)
	logQuery(query, []any{id}, t.Status, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns up to limit entries of a user, newest first. Redemptions are
// listed for both the attachment owner and the recipient.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.CustodialWalletTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM custodial_wallet_transactions
		WHERE user_id = $1
			OR (transaction_type = 'redemption' AND metadata->>'recipient_user_id' = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	var txs []models.CustodialWalletTransaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(txs), err)
	return txs, err
}

// ListUnsettledTransfers returns pending redemption and withdrawal entries created
// before olderThan whose outgoing transfer was issued but never recorded, or whose
// outcome was ambiguous.
func (r *TransactionRepository) ListUnsettledTransfers(ctx context.Context, olderThan time.Time, limit int) ([]models.CustodialWalletTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM custodial_wallet_transactions
		WHERE status = 'pending'
		  AND transaction_type IN ('redemption', 'withdrawal')
		  AND metadata->>'transfer_state' IN ('issued', 'ambiguous')
		  AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`
	var txs []models.CustodialWalletTransaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, olderThan, limit)
	logQuery(query, []any{olderThan, limit}, len(txs), err)
	return txs, err
}
