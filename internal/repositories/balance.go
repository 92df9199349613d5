package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

const balanceColumns = `user_id, currency, available_balance, pending_balance, reserved_balance,
	total_deposited, total_withdrawn, total_fees_earned, last_activity, created_at`

// BalanceRepository persists user_wallet_balances rows.
type BalanceRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBalanceRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BalanceRepository {
	return &BalanceRepository{db: db, txGetter: txGetter}
}

// Lock creates the (user, currency) row if missing and returns it locked with
// SELECT ... FOR UPDATE until the surrounding transaction ends.
func (r *BalanceRepository) Lock(ctx context.Context, userID string, currency models.Currency) (*models.UserWalletBalance, error) {
	if r.txGetter == nil || r.txGetter(ctx) == nil {
		return nil, ErrNoTx
	}
	ex := r.txGetter(ctx)

	const ensure = `
		INSERT INTO user_wallet_balances (user_id, currency)
		VALUES ($1, $2)
		ON CONFLICT (user_id, currency) DO NOTHING
	`
	_, err := ex.ExecContext(ctx, ensure, userID, currency)
	logQuery(ensure, []any{userID, currency}, nil, err)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + balanceColumns + `
		FROM user_wallet_balances
		WHERE user_id = $1 AND currency = $2
		FOR UPDATE
	`
	var b models.UserWalletBalance
	err = sqlx.GetContext(ctx, ex, &b, query, userID, currency)
	logQuery(query, []any{userID, currency}, b, err)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes every mutable field of a previously locked balance row.
// Rows that break the balance equation are rejected before reaching the database.
func (r *BalanceRepository) Save(ctx context.Context, b *models.UserWalletBalance) error {
	if err := b.Check(); err != nil {
		return err
	}

	const query = `
		UPDATE user_wallet_balances
		SET available_balance = $3,
		    pending_balance = $4,
		    reserved_balance = $5,
		    total_deposited = $6,
		    total_withdrawn = $7,
		    total_fees_earned = $8,
		    last_activity = $9
		WHERE user_id = $1 AND currency = $2
	`
	args := []any{
		b.UserID, b.Currency,
		b.AvailableBalance, b.PendingBalance, b.ReservedBalance,
		b.TotalDeposited, b.TotalWithdrawn, b.TotalFeesEarned,
		b.LastActivity,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser returns every balance row of a user ordered by currency.
func (r *BalanceRepository) ListByUser(ctx context.Context, userID string) ([]models.UserWalletBalance, error) {
	query := `SELECT ` + balanceColumns + `
		FROM user_wallet_balances
		WHERE user_id = $1
		ORDER BY currency
	`
	var balances []models.UserWalletBalance
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &balances, query, userID)
	logQuery(query, []any{userID}, len(balances), err)
	return balances, err
}
