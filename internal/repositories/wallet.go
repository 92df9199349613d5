package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, currency, wallet_address, encrypted_private_key, balance, reserved_balance,
	status, is_hot_wallet, last_health_check, created_at`

// WalletRepository persists custodial_wallets, the pooled hot wallets.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// Create inserts a wallet.
func (r *WalletRepository) Create(ctx context.Context, w *models.CustodialWallet) error {
	const query = `
		INSERT INTO custodial_wallets (
			id, currency, wallet_address, encrypted_private_key, balance, reserved_balance,
			status, is_hot_wallet, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		w.ID, w.Currency, w.WalletAddress, w.EncryptedPrivateKey, w.Balance, w.ReservedBalance,
		w.Status, w.IsHotWallet, w.CreatedAt,
	}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	// key material stays out of the log
	logQuery(query, []any{w.ID, w.Currency, w.WalletAddress, w.Status}, nil, err)
	return err
}

// ListAll returns every wallet ordered by currency and age.
func (r *WalletRepository) ListAll(ctx context.Context) ([]models.CustodialWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM custodial_wallets ORDER BY currency, created_at`
	var wallets []models.CustodialWallet
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query)
	logQuery(query, nil, len(wallets), err)
	return wallets, err
}

// ListByCurrency returns the wallets holding currency, oldest first.
func (r *WalletRepository) ListByCurrency(ctx context.Context, currency models.Currency) ([]models.CustodialWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM custodial_wallets WHERE currency = $1 ORDER BY created_at`
	var wallets []models.CustodialWallet
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query, currency)
	logQuery(query, []any{currency}, len(wallets), err)
	return wallets, err
}

// GetByID returns the wallet with id, or nil.
func (r *WalletRepository) GetByID(ctx context.Context, id string) (*models.CustodialWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM custodial_wallets WHERE id = $1`
	var w models.CustodialWallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, id)
	logQuery(query, []any{id}, w.WalletAddress, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// AddBalance adjusts the recorded balance of the wallet at address by delta.
func (r *WalletRepository) AddBalance(ctx context.Context, address string, delta decimal.Decimal) error {
	const query = `UPDATE custodial_wallets SET balance = balance + $2 WHERE wallet_address = $1`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, address, delta)
	logQuery(query, []any{address, delta}, nil, err)
	return err
}

// SetStatus changes a wallet status. It reports false when no wallet has id.
func (r *WalletRepository) SetStatus(ctx context.Context, id string, status models.WalletStatus) (bool, error) {
	const query = `UPDATE custodial_wallets SET status = $2 WHERE id = $1`
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, status}, rowsAffected, err)
	return rowsAffected == 1, err
}

// TouchHealthCheck records the time of the last health check.
func (r *WalletRepository) TouchHealthCheck(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE custodial_wallets SET last_health_check = $2 WHERE id = $1`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, at)
	logQuery(query, []any{id, at}, nil, err)
	return err
}
