package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

// ClaimRepository persists redemption_claims, the per-code ticket locks that
// serialize redemption attempts.
type ClaimRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewClaimRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ClaimRepository {
	return &ClaimRepository{db: db, txGetter: txGetter}
}

// Acquire inserts a held claim for code. It reports false when another ticket already
// owns the code.
func (r *ClaimRepository) Acquire(ctx context.Context, code, ticket, claimant string) (bool, error) {
	const query = `
		INSERT INTO redemption_claims (redemption_code, ticket, claimant, state, created_at, updated_at)
		VALUES ($1, $2, $3, 'held', NOW(), NOW())
		ON CONFLICT (redemption_code) DO NOTHING
	`
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, code, ticket, claimant)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{ticket, claimant}, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Release drops a claim that has not been consumed, making the code redeemable again.
func (r *ClaimRepository) Release(ctx context.Context, code, ticket string) error {
	const query = `
		DELETE FROM redemption_claims
		WHERE redemption_code = $1 AND ticket = $2 AND state <> 'consumed'
	`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, code, ticket)
	logQuery(query, []any{ticket}, nil, err)
	return err
}

// SetState moves the claim identified by (code, ticket) to state. Consumed claims never change.
func (r *ClaimRepository) SetState(ctx context.Context, code, ticket string, state models.ClaimState) error {
	const query = `
		UPDATE redemption_claims
		SET state = $3, updated_at = NOW()
		WHERE redemption_code = $1 AND ticket = $2 AND state <> 'consumed'
	`
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, code, ticket, state)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{ticket, state}, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
