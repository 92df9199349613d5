package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

// Reconciler defaults
const (
	DefaultReconcileInterval = time.Minute
	DefaultStaleAfter        = 5 * time.Minute
	reconcileBatch           = 100
)

// ReconcileReport summarises one reconciliation pass.
type ReconcileReport struct {
	Expired    int `json:"expired"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	Unresolved int `json:"unresolved"`
}

// Reconciler expires overdue attachments and resolves transfers whose outcome was
// never recorded.
type Reconciler struct {
	manager    *WalletBalanceManager
	interval   time.Duration
	staleAfter time.Duration
}

// NewReconciler creates a Reconciler. Transfers younger than staleAfter are left to
// the request that issued them.
func NewReconciler(manager *WalletBalanceManager, interval, staleAfter time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Reconciler{manager: manager, interval: interval, staleAfter: staleAfter}
}

// Run reconciles every interval until ctx is done.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.ReconcileOnce(ctx); err != nil && ctx.Err() == nil {
			logger.Log.Errorw("reconciliation pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ReconcileOnce runs a single pass.
func (r *Reconciler) ReconcileOnce(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport

	expired, err := r.manager.ExpireDue(ctx, reconcileBatch)
	report.Expired = expired
	if err != nil {
		return report, err
	}

	succeeded, failed, unresolved, err := r.manager.ResolveTransfers(ctx, r.manager.now().Add(-r.staleAfter), reconcileBatch)
	report.Succeeded, report.Failed, report.Unresolved = succeeded, failed, unresolved
	if err != nil {
		return report, err
	}

	if report != (ReconcileReport{}) {
		logger.Log.Infow("reconciliation pass", "expired", report.Expired, "succeeded", report.Succeeded, "failed", report.Failed, "unresolved", report.Unresolved)
	}
	return report, nil
}

// ExpireDue closes up to limit active attachments past their expiry and returns their
// value to the owners.
func (m *WalletBalanceManager) ExpireDue(ctx context.Context, limit int) (int, error) {
	due, err := m.attachments.ListExpired(ctx, m.now(), limit)
	if err != nil {
		logger.Log.Errorw("failed to list expired attachments", "error", err)
		return 0, err
	}
	n := 0
	for i := range due {
		if m.expire(ctx, &due[i]) {
			n++
		}
	}
	return n, nil
}

// ResolveTransfers looks up the outcome of redemptions and withdrawals issued before
// olderThan that are still pending, and settles the ones the adapter can answer for.
func (m *WalletBalanceManager) ResolveTransfers(ctx context.Context, olderThan time.Time, limit int) (succeeded, failed, unresolved int, err error) {
	pending, err := m.transactions.ListUnsettledTransfers(ctx, olderThan, limit)
	if err != nil {
		logger.Log.Errorw("failed to list unsettled transfers", "error", err)
		return 0, 0, 0, err
	}

	for i := range pending {
		t := &pending[i]
		if t.Metadata.TransferKey == "" {
			unresolved++
			continue
		}

		outcome := m.pool.Lookup(ctx, t.Metadata.TransferKey)
		switch outcome.Status {
		case models.TransferStatusSuccess:
			if err := m.settleTransfer(ctx, t, outcome); err != nil {
				logger.Log.Errorw("failed to settle reconciled transfer", "transactionID", t.ID, "error", err)
				unresolved++
				continue
			}
			succeeded++
		case models.TransferStatusFailed:
			if err := m.settleTransfer(ctx, t, outcome); err != nil {
				logger.Log.Errorw("failed to fail reconciled transfer", "transactionID", t.ID, "error", err)
				unresolved++
				continue
			}
			failed++
		default:
			if t.Metadata.TransferState == models.TransferIssued {
				m.markAmbiguous(ctx, t, outcome.Error)
			}
			unresolved++
		}
	}
	return succeeded, failed, unresolved, nil
}

func (m *WalletBalanceManager) settleTransfer(ctx context.Context, t *models.CustodialWalletTransaction, outcome models.TransferResult) error {
	switch t.TransactionType {
	case models.TxWithdrawal:
		_, err := m.settleWithdrawal(ctx, t.ID, outcome)
		return err
	case models.TxRedemption:
		if outcome.Status == models.TransferStatusSuccess {
			_, err := m.finalizeRedemption(ctx, t.ID, outcome.TransactionHash)
			return err
		}
		m.abandonRedemption(ctx, t, outcome.Error)
		return nil
	}
	return fail(ErrInvalidState, "transaction type %s has no transfer", t.TransactionType)
}
