package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Pool defaults
var (
	DefaultSingleTxLimit   = decimal.NewFromInt(1000)
	DefaultDailyTxLimit    = decimal.NewFromInt(10000)
	DefaultHealthTolerance = decimal.RequireFromString("0.001")
)

// DefaultTransferTimeout bounds a single adapter call.
const DefaultTransferTimeout = 30 * time.Second

// PoolConfig holds the limits enforced by the custodial wallet pool.
type PoolConfig struct {
	SingleTxLimit   decimal.Decimal
	DailyTxLimit    decimal.Decimal
	HealthTolerance decimal.Decimal
	TransferTimeout time.Duration
}

func (c PoolConfig) withDefaults() PoolConfig {
	if !c.SingleTxLimit.IsPositive() {
		c.SingleTxLimit = DefaultSingleTxLimit
	}
	if !c.DailyTxLimit.IsPositive() {
		c.DailyTxLimit = DefaultDailyTxLimit
	}
	if !c.HealthTolerance.IsPositive() {
		c.HealthTolerance = DefaultHealthTolerance
	}
	if c.TransferTimeout <= 0 {
		c.TransferTimeout = DefaultTransferTimeout
	}
	return c
}

// WalletCreation is the per-currency result of a bulk wallet creation.
type WalletCreation struct {
	Currency models.Currency         `json:"currency"`
	Wallet   *models.CustodialWallet `json:"wallet,omitempty"`
	Skipped  bool                    `json:"skipped"`
	Error    string                  `json:"error,omitempty"`
}

// CustodialWalletPool owns the hot wallets and is the only caller of the transfer adapter.
type CustodialWalletPool struct {
	wallets WalletStore
	usage   UsageCounter
	adapter TransferAdapter
	keys    KeyGenerator
	logs    SecurityLogWriter
	cfg     PoolConfig
	now     func() time.Time
}

func NewCustodialWalletPool(
	wallets WalletStore,
	usage UsageCounter,
	adapter TransferAdapter,
	keys KeyGenerator,
	logs SecurityLogWriter,
	cfg PoolConfig,
) *CustodialWalletPool {
	return &CustodialWalletPool{
		wallets: wallets,
		usage:   usage,
		adapter: adapter,
		keys:    keys,
		logs:    logs,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

func (p *CustodialWalletPool) checkCeiling(amount decimal.Decimal) error {
	if amount.GreaterThan(p.cfg.SingleTxLimit) {
		return fail(ErrLimitExceeded, "amount %s exceeds single transaction limit %s", amount, p.cfg.SingleTxLimit)
	}
	return nil
}

// SelectWallet returns an active hot wallet for currency able to send amount.
// A wallet whose recorded balance covers amount is preferred.
func (p *CustodialWalletPool) SelectWallet(ctx context.Context, currency models.Currency, amount decimal.Decimal) (*models.CustodialWallet, error) {
	if err := p.checkCeiling(amount); err != nil {
		return nil, err
	}

	wallets, err := p.wallets.ListByCurrency(ctx, currency)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "currency", currency, "error", err)
		return nil, err
	}

	var fallback *models.CustodialWallet
	for i := range wallets {
		w := &wallets[i]
		if w.Status != models.WalletActive || !w.IsHotWallet {
			continue
		}
		if w.Balance.GreaterThanOrEqual(amount) {
			return w, nil
		}
		if fallback == nil {
			fallback = w
		}
	}
	if fallback == nil {
		return nil, fail(ErrWalletUnavailable, "no active custodial wallet for %s", currency)
	}
	return fallback, nil
}

// Send transfers req out of wallet. Limit violations are returned as errors before
// the adapter is called; every outcome after that is reported in the result.
func (p *CustodialWalletPool) Send(ctx context.Context, wallet *models.CustodialWallet, req models.TransferRequest) (models.TransferResult, error) {
	if err := p.checkCeiling(req.Amount); err != nil {
		return models.TransferResult{}, err
	}

	key := dailyVolumeKey(wallet.ID)
	now := p.now()
	total, err := p.usage.Add(ctx, key, now, req.Amount)
	if err != nil {
		logger.Log.Errorw("failed to record wallet volume", "walletID", wallet.ID, "error", err)
		return models.TransferResult{}, err
	}
	if total.GreaterThan(p.cfg.DailyTxLimit) {
		p.refundVolume(ctx, key, now, req.Amount)
		return models.TransferResult{}, fail(ErrLimitExceeded, "daily limit %s reached for wallet", p.cfg.DailyTxLimit)
	}

	// an issued transfer outlives the request that started it; only the timeout bounds it
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.TransferTimeout)
	defer cancel()

	result := p.adapter.Transfer(callCtx, wallet, req)
	switch result.Status {
	case models.TransferStatusSuccess:
		logger.Log.Infow("transfer confirmed", "walletID", wallet.ID, "currency", req.Currency, "amount", req.Amount, "hash", result.TransactionHash)
	case models.TransferStatusFailed:
		p.refundVolume(callCtx, key, now, req.Amount)
		logger.Log.Warnw("transfer failed", "walletID", wallet.ID, "currency", req.Currency, "reason", result.Error)
	default:
		result.Status = models.TransferStatusAmbiguous
		logger.Log.Errorw("transfer outcome unknown", "walletID", wallet.ID, "currency", req.Currency, "key", req.IdempotencyKey, "reason", result.Error)
	}
	return result, nil
}

// Lookup asks the adapter for the outcome of an earlier transfer.
func (p *CustodialWalletPool) Lookup(ctx context.Context, idempotencyKey string) models.TransferResult {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.TransferTimeout)
	defer cancel()
	return p.adapter.Lookup(callCtx, idempotencyKey)
}

// Debit lowers the recorded balance of the wallet at address. It joins the caller's transaction.
func (p *CustodialWalletPool) Debit(ctx context.Context, address string, amount decimal.Decimal) error {
	return p.wallets.AddBalance(ctx, address, amount.Neg())
}

// Credit raises the recorded balance of the wallet at address. It joins the caller's transaction.
func (p *CustodialWalletPool) Credit(ctx context.Context, address string, amount decimal.Decimal) error {
	return p.wallets.AddBalance(ctx, address, amount)
}

// DepositAddress returns the address deposits in currency should be sent to, or "" when
// no active wallet exists.
func (p *CustodialWalletPool) DepositAddress(ctx context.Context, currency models.Currency) (string, error) {
	wallets, err := p.wallets.ListByCurrency(ctx, currency)
	if err != nil {
		return "", err
	}
	for _, w := range wallets {
		if w.Status == models.WalletActive && w.IsHotWallet {
			return w.WalletAddress, nil
		}
	}
	return "", nil
}

func (p *CustodialWalletPool) refundVolume(ctx context.Context, key string, at time.Time, amount decimal.Decimal) {
	if _, err := p.usage.Add(ctx, key, at, amount.Neg()); err != nil {
		logger.Log.Errorw("failed to refund wallet volume", "key", key, "error", err)
	}
}

func dailyVolumeKey(walletID string) string {
	return "wallet_volume:" + walletID
}

// HealthCheck compares every wallet's recorded balance with its live balance.
func (p *CustodialWalletPool) HealthCheck(ctx context.Context) ([]models.WalletHealth, error) {
	wallets, err := p.wallets.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "error", err)
		return nil, err
	}

	report := make([]models.WalletHealth, 0, len(wallets))
	for _, w := range wallets {
		report = append(report, p.checkWallet(ctx, w))
	}
	return report, nil
}

func (p *CustodialWalletPool) checkWallet(ctx context.Context, w models.CustodialWallet) models.WalletHealth {
	now := p.now()
	h := models.WalletHealth{
		WalletID:        w.ID,
		Currency:        w.Currency,
		Address:         w.WalletAddress,
		Status:          w.Status,
		IsHealthy:       true,
		RecordedBalance: w.Balance,
		Issues:          []string{},
		CheckedAt:       now,
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.TransferTimeout)
	current, err := p.adapter.Balance(callCtx, w.WalletAddress, w.Currency)
	cancel()
	if err != nil {
		h.IsHealthy = false
		h.Issues = append(h.Issues, fmt.Sprintf("balance query failed: %v", err))
	} else {
		h.CurrentBalance = current
		if current.Sub(w.Balance).Abs().GreaterThan(p.cfg.HealthTolerance) {
			h.IsHealthy = false
			h.Issues = append(h.Issues, fmt.Sprintf("balance mismatch: recorded %s, on-chain %s", w.Balance, current))
		}
	}
	if w.Status != models.WalletActive {
		h.IsHealthy = false
		h.Issues = append(h.Issues, fmt.Sprintf("wallet status is %s", w.Status))
	}

	if err := p.wallets.TouchHealthCheck(ctx, w.ID, now); err != nil {
		logger.Log.Errorw("failed to record health check", "walletID", w.ID, "error", err)
	}
	return h
}

// CreateWallet generates a key pair and stores a new active wallet for currency.
func (p *CustodialWalletPool) CreateWallet(ctx context.Context, currency models.Currency, isHotWallet bool) (*models.CustodialWallet, error) {
	if !currency.Valid() {
		return nil, fail(ErrInvalidInput, "unsupported currency %q", currency)
	}

	address, sealed, err := p.keys.NewWallet()
	if err != nil {
		logger.Log.Errorw("failed to generate wallet key", "currency", currency, "error", err)
		return nil, err
	}

	w := &models.CustodialWallet{
		ID:                  uuid.NewString(),
		Currency:            currency,
		WalletAddress:       address,
		EncryptedPrivateKey: sealed,
		Balance:             decimal.Zero,
		ReservedBalance:     decimal.Zero,
		Status:              models.WalletActive,
		IsHotWallet:         isHotWallet,
		CreatedAt:           p.now(),
	}
	if err := p.wallets.Create(ctx, w); err != nil {
		logger.Log.Errorw("failed to store wallet", "currency", currency, "error", err)
		return nil, err
	}
	logger.Log.Infow("custodial wallet created", "walletID", w.ID, "currency", currency, "address", address)
	return w, nil
}

// CreateWallets creates one hot wallet per currency that has no wallet yet.
func (p *CustodialWalletPool) CreateWallets(ctx context.Context, currencies []models.Currency) ([]WalletCreation, error) {
	if len(currencies) == 0 {
		currencies = models.Currencies
	}

	results := make([]WalletCreation, 0, len(currencies))
	for _, c := range currencies {
		res := WalletCreation{Currency: c}
		existing, err := p.wallets.ListByCurrency(ctx, c)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			res.Skipped = true
			results = append(results, res)
			continue
		}
		w, err := p.CreateWallet(ctx, c, true)
		if err != nil {
			res.Error = err.Error()
		}
		res.Wallet = w
		results = append(results, res)
	}
	return results, nil
}

// ListWallets returns every wallet in the pool.
func (p *CustodialWalletPool) ListWallets(ctx context.Context) ([]models.CustodialWallet, error) {
	return p.wallets.ListAll(ctx)
}

// FreezeWallet stops a wallet from being selected for transfers. Freezing a frozen
// wallet is a no-op.
func (p *CustodialWalletPool) FreezeWallet(ctx context.Context, id, reason string) error {
	w, err := p.wallets.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load wallet", "walletID", id, "error", err)
		return err
	}
	if w == nil {
		return fail(ErrNotFound, "wallet %s not found", id)
	}
	if w.Status == models.WalletFrozen {
		return nil
	}

	ok, err := p.wallets.SetStatus(ctx, id, models.WalletFrozen)
	if err != nil {
		logger.Log.Errorw("failed to freeze wallet", "walletID", id, "error", err)
		return err
	}
	if !ok {
		return fail(ErrNotFound, "wallet %s not found", id)
	}

	recordSecurityEvent(ctx, p.logs, "", models.EventWalletFrozen, models.SeverityHigh, models.SecurityDetails{
		"wallet_id":      id,
		"wallet_address": w.WalletAddress,
		"currency":       string(w.Currency),
		"reason":         reason,
	}, p.now())
	logger.Log.Warnw("custodial wallet frozen", "walletID", id, "reason", reason)
	return nil
}
