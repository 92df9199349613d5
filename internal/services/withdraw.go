package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WithdrawRequest is the input of Withdraw.
type WithdrawRequest struct {
	UserID    string
	Currency  models.Currency
	Amount    decimal.Decimal
	ToAddress string
}

// Withdraw sends amount minus the fee from the user's available balance to an external
// address. The amount is held in reserved while the transfer runs, outside any lock.
func (m *WalletBalanceManager) Withdraw(ctx context.Context, req WithdrawRequest) (*models.CustodialWalletTransaction, error) {
	destination := strings.TrimSpace(req.ToAddress)
	switch {
	case req.UserID == "":
		return nil, fail(ErrInvalidInput, "user id is required")
	case !req.Currency.Valid():
		return nil, fail(ErrInvalidInput, "unsupported currency %q", req.Currency)
	case destination == "":
		return nil, fail(ErrInvalidInput, "destination address is required")
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	fee, feeCurrency := m.fees.CalculateFee(req.Amount, req.Currency)
	if !fee.LessThan(req.Amount) {
		return nil, fail(ErrInvalidAmount, "amount %s does not cover the fee %s", req.Amount, fee)
	}
	net := req.Amount.Sub(fee)

	decision := m.compliance.Check(ctx, req.UserID, req.Amount, destination)
	if !decision.Approved {
		recordSecurityEvent(ctx, m.securityLogs, req.UserID, models.EventComplianceViolation, models.SeverityHigh, models.SecurityDetails{
			"operation":   string(models.TxWithdrawal),
			"amount":      req.Amount.String(),
			"currency":    string(req.Currency),
			"destination": destination,
			"reason":      decision.Reason,
		}, m.now())
		return nil, fail(ErrComplianceBlocked, "%s", decision.Reason)
	}

	wallet, err := m.pool.SelectWallet(ctx, req.Currency, net)
	if err != nil {
		return nil, err
	}

	t := m.newTransaction(req.UserID, models.TxWithdrawal, models.TxPending, req.Amount, req.Currency, models.TransactionMetadata{
		TransferState: models.TransferIssued,
	})
	t.Metadata.TransferKey = t.ID
	t.FeeAmount = fee
	t.FeeCurrency = feeCurrency
	t.FromAddress = &wallet.WalletAddress
	t.ToAddress = &destination

	err = m.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := m.balances.Lock(ctx, req.UserID, req.Currency)
		if err != nil {
			return err
		}
		if b.AvailableBalance.LessThan(req.Amount) {
			return fail(ErrInsufficientBalance, "available %s %s, requested %s", b.AvailableBalance, req.Currency, req.Amount)
		}
		b.AvailableBalance = b.AvailableBalance.Sub(req.Amount)
		b.ReservedBalance = b.ReservedBalance.Add(req.Amount)
		b.LastActivity = m.now()
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}
		return m.transactions.Create(ctx, t)
	})
	if err != nil {
		logger.Log.Errorw("failed to save withdrawal", "userID", req.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
		return nil, err
	}

	outcome, err := m.pool.Send(ctx, wallet, models.TransferRequest{
		Destination:    destination,
		Amount:         net,
		Currency:       req.Currency,
		IdempotencyKey: t.ID,
	})
	if err != nil {
		if _, serr := m.settleWithdrawal(ctx, t.ID, models.TransferResult{Status: models.TransferStatusFailed, Error: err.Error()}); serr != nil {
			logger.Log.Errorw("failed to release withdrawal", "transactionID", t.ID, "error", serr)
		}
		return nil, err
	}

	switch outcome.Status {
	case models.TransferStatusSuccess, models.TransferStatusFailed:
		settled, err := m.settleWithdrawal(ctx, t.ID, outcome)
		if err != nil {
			logger.Log.Errorw("failed to settle withdrawal", "transactionID", t.ID, "status", outcome.Status, "error", err)
			return t, fail(ErrAmbiguous, "transfer finished but settlement is pending")
		}
		if outcome.Status == models.TransferStatusFailed {
			return nil, fail(ErrTransferFailed, "%s", outcome.Error)
		}
		return settled, nil
	default:
		m.markAmbiguous(ctx, t, outcome.Error)
		return t, fail(ErrAmbiguous, "transfer outcome unknown, pending reconciliation")
	}
}

// settleWithdrawal applies a known transfer outcome to a pending withdrawal: success
// moves the reserved amount out of the ledger, failure returns it to available.
func (m *WalletBalanceManager) settleWithdrawal(ctx context.Context, transactionID string, outcome models.TransferResult) (*models.CustodialWalletTransaction, error) {
	var settled *models.CustodialWalletTransaction
	err := m.tx.WithinTx(context.WithoutCancel(ctx), func(ctx context.Context) error {
		t, err := m.transactions.GetForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return fail(ErrNotFound, "withdrawal %s not found", transactionID)
		}
		if t.Status != models.TxPending {
			return fail(ErrInvalidState, "withdrawal is already %s", t.Status)
		}

		b, err := m.balances.Lock(ctx, t.UserID, t.Currency)
		if err != nil {
			return err
		}
		now := m.now()
		b.ReservedBalance = b.ReservedBalance.Sub(t.Amount)
		if outcome.Status == models.TransferStatusSuccess {
			b.TotalWithdrawn = b.TotalWithdrawn.Add(t.Amount)
			b.TotalFeesEarned = b.TotalFeesEarned.Add(t.FeeAmount)
			t.Status = models.TxConfirmed
			t.Metadata.TransferState = models.TransferSucceeded
			if outcome.TransactionHash != "" {
				hash := outcome.TransactionHash
				t.TransactionHash = &hash
			}
		} else {
			b.AvailableBalance = b.AvailableBalance.Add(t.Amount)
			t.Status = models.TxFailed
			t.Metadata.TransferState = models.TransferFailed
			t.Metadata.Reason = outcome.Error
		}
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}

		t.ProcessedAt = &now
		if err := m.transactions.Settle(ctx, t); err != nil {
			return err
		}
		if outcome.Status == models.TransferStatusSuccess && t.FromAddress != nil {
			if err := m.pool.Debit(ctx, *t.FromAddress, t.Amount.Sub(t.FeeAmount)); err != nil {
				return err
			}
		}
		settled = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.publish(ctx, settled)
	return settled, nil
}
