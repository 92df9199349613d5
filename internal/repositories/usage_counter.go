package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// UsageCounterRepository keeps durable per-key, per-UTC-day running totals.
// A new day starts a new row, so counters reset on date rollover.
type UsageCounterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUsageCounterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UsageCounterRepository {
	return &UsageCounterRepository{db: db, txGetter: txGetter}
}

// Add adds delta to the counter for key on the UTC date of at and returns the new total.
func (r *UsageCounterRepository) Add(ctx context.Context, key string, at time.Time, delta decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		INSERT INTO usage_counters (counter_key, day, total, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (counter_key, day)
		DO UPDATE SET total = usage_counters.total + EXCLUDED.total, updated_at = NOW()
		RETURNING total
	`
	day := at.UTC().Format(time.DateOnly)
	var total decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, key, day, delta)
	logQuery(query, []any{key, day, delta}, total, err)
	return total, err
}
