package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// RedeemRequest is the input of Redeem.
type RedeemRequest struct {
	RedemptionCode   string
	RecipientUserID  string
	RecipientAddress string
}

// RedemptionResult describes a settled or still pending redemption.
type RedemptionResult struct {
	TransactionID   string                   `json:"transaction_id"`
	AttachmentID    string                   `json:"attachment_id"`
	Amount          decimal.Decimal          `json:"amount"`
	NetAmount       decimal.Decimal          `json:"net_amount"`
	FeeAmount       decimal.Decimal          `json:"fee_amount"`
	Currency        models.Currency          `json:"currency"`
	TransactionHash string                   `json:"transaction_hash,omitempty"`
	RedeemedAt      *time.Time               `json:"redeemed_at,omitempty"`
	Status          models.TransactionStatus `json:"status"`
}

// Redeem claims the value behind a redemption code and sends it, minus the fee, to the
// recipient address. At most one redeem per code ever reaches the transfer adapter
// while a previous attempt is unresolved, and at most one ever succeeds.
//
// On an ambiguous transfer outcome the returned error wraps ErrAmbiguous and the result
// carries the pending ledger entry the reconciler will settle.
func (m *WalletBalanceManager) Redeem(ctx context.Context, req RedeemRequest) (*RedemptionResult, error) {
	code := strings.ToUpper(strings.TrimSpace(req.RedemptionCode))
	if code == "" {
		return nil, fail(ErrInvalidInput, "redemption code is required")
	}
	if req.RecipientUserID == "" {
		return nil, fail(ErrInvalidInput, "recipient user id is required")
	}
	if err := m.throttleRedeem(ctx, req.RecipientUserID); err != nil {
		return nil, err
	}

	a, err := m.attachments.GetByCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to load attachment", "code", maskCode(code), "error", err)
		return nil, err
	}
	if a == nil {
		return nil, fail(ErrNotFound, "redemption code not found")
	}
	if err := activeOrConflict(a); err != nil {
		return nil, err
	}
	if a.ExpiredAt(m.now()) {
		m.expire(ctx, a)
		return nil, fail(ErrExpired, "attachment expired at %s", a.ExpiresAt.Format(time.RFC3339))
	}
	if a.RecipientUserID != nil && *a.RecipientUserID != req.RecipientUserID {
		return nil, fail(ErrUnauthorized, "attachment is restricted to another recipient")
	}

	destination := strings.TrimSpace(req.RecipientAddress)
	if destination == "" && a.RecipientAddress != nil {
		destination = *a.RecipientAddress
	}
	if destination == "" {
		return nil, fail(ErrInvalidInput, "recipient address is required")
	}

	decision := m.compliance.Check(ctx, req.RecipientUserID, a.Amount, destination)
	if !decision.Approved {
		recordSecurityEvent(ctx, m.securityLogs, req.RecipientUserID, models.EventComplianceViolation, models.SeverityHigh, models.SecurityDetails{
			"attachment_id": a.ID,
			"amount":        a.Amount.String(),
			"currency":      string(a.Currency),
			"destination":   destination,
			"reason":        decision.Reason,
		}, m.now())
		return nil, fail(ErrComplianceBlocked, "%s", decision.Reason)
	}

	net := a.NetAmount()
	wallet, err := m.pool.SelectWallet(ctx, a.Currency, net)
	if err != nil {
		return nil, err
	}

	ticket := uuid.NewString()
	t := m.newTransaction(a.UserID, models.TxRedemption, models.TxPending, a.Amount, a.Currency, models.TransactionMetadata{
		AttachmentID:    a.ID,
		RedemptionCode:  code,
		ProductID:       a.ProductID,
		ProductType:     a.ProductType,
		OriginalUserID:  a.UserID,
		RecipientUserID: req.RecipientUserID,
		TransferKey:     ticket,
		TransferState:   models.TransferIssued,
	})
	t.FeeAmount = a.FeeAmount
	t.FeeCurrency = a.FeeCurrency
	t.FromAddress = &wallet.WalletAddress
	t.ToAddress = &destination

	// the claim and the pending ledger row commit together or not at all
	err = m.tx.WithinTx(ctx, func(ctx context.Context) error {
		// the row lock orders this claim against a concurrent cancel or expiry
		current, err := m.attachments.GetForUpdate(ctx, a.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return fail(ErrNotFound, "redemption code not found")
		}
		if err := activeOrConflict(current); err != nil {
			return err
		}

		won, err := m.claims.Acquire(ctx, code, ticket, req.RecipientUserID)
		if err != nil {
			logger.Log.Errorw("failed to acquire redemption claim", "attachmentID", a.ID, "error", err)
			return err
		}
		if !won {
			return fail(ErrAlreadyRedeemed, "redemption code already claimed")
		}

		if err := m.transactions.Create(ctx, t); err != nil {
			logger.Log.Errorw("failed to record redemption", "attachmentID", a.ID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &RedemptionResult{
		TransactionID: t.ID,
		AttachmentID:  a.ID,
		Amount:        a.Amount,
		NetAmount:     net,
		FeeAmount:     a.FeeAmount,
		Currency:      a.Currency,
		Status:        models.TxPending,
	}

	outcome, err := m.pool.Send(ctx, wallet, models.TransferRequest{
		Destination:    destination,
		Amount:         net,
		Currency:       a.Currency,
		IdempotencyKey: ticket,
	})
	if err != nil {
		m.abandonRedemption(ctx, t, err.Error())
		return nil, err
	}

	switch outcome.Status {
	case models.TransferStatusSuccess:
		settled, err := m.finalizeRedemption(ctx, t.ID, outcome.TransactionHash)
		if err != nil {
			// the reconciler settles the pending row once the store is reachable again
			logger.Log.Errorw("failed to settle confirmed redemption", "transactionID", t.ID, "hash", outcome.TransactionHash, "error", err)
			result.TransactionHash = outcome.TransactionHash
			return result, fail(ErrAmbiguous, "transfer confirmed but settlement is pending")
		}
		result.TransactionHash = outcome.TransactionHash
		result.RedeemedAt = settled.ProcessedAt
		result.Status = settled.Status
		return result, nil

	case models.TransferStatusFailed:
		m.abandonRedemption(ctx, t, outcome.Error)
		return nil, fail(ErrTransferFailed, "%s", outcome.Error)

	default:
		m.markAmbiguous(ctx, t, outcome.Error)
		return result, fail(ErrAmbiguous, "transfer outcome unknown, pending reconciliation")
	}
}

func (m *WalletBalanceManager) throttleRedeem(ctx context.Context, caller string) error {
	if m.throttle == nil || m.maxRedeemAttempts <= 0 {
		return nil
	}
	attempts, err := m.throttle.Hit(ctx, caller)
	if err != nil {
		logger.Log.Errorw("redemption throttle unavailable", "userID", caller, "error", err)
		return fail(ErrRateLimited, "redemption attempts cannot be verified")
	}
	if attempts > m.maxRedeemAttempts {
		return fail(ErrRateLimited, "too many redemption attempts")
	}
	return nil
}

// expire closes an attachment found past its expiry and returns its value to the owner.
func (m *WalletBalanceManager) expire(ctx context.Context, a *models.ValueAttachment) bool {
	t, closed, err := m.closeAttachment(ctx, a, models.AttachmentExpired)
	if err != nil {
		logger.Log.Errorw("failed to expire attachment", "attachmentID", a.ID, "error", err)
		return false
	}
	if closed {
		logger.Log.Infow("attachment expired", "attachmentID", a.ID, "userID", a.UserID)
		m.publish(ctx, t)
	}
	return closed
}

func (m *WalletBalanceManager) releaseClaim(ctx context.Context, code, ticket string) {
	if err := m.claims.Release(context.WithoutCancel(ctx), code, ticket); err != nil {
		logger.Log.Errorw("failed to release redemption claim", "code", maskCode(code), "error", err)
	}
}

// finalizeRedemption settles a pending redemption whose transfer succeeded. It locks the
// ledger row, then the attachment, then the owner's balance.
func (m *WalletBalanceManager) finalizeRedemption(ctx context.Context, transactionID, hash string) (*models.CustodialWalletTransaction, error) {
	var settled *models.CustodialWalletTransaction
	err := m.tx.WithinTx(context.WithoutCancel(ctx), func(ctx context.Context) error {
		t, err := m.transactions.GetForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return fail(ErrNotFound, "redemption %s not found", transactionID)
		}
		if t.Status != models.TxPending {
			return fail(ErrInvalidState, "redemption is already %s", t.Status)
		}

		now := m.now()
		var txHash *string
		if hash != "" {
			txHash = &hash
		}
		ok, err := m.attachments.MarkRedeemed(ctx, t.Metadata.AttachmentID, t.Metadata.RecipientUserID, txHash, now)
		if err != nil {
			return err
		}
		if !ok {
			return fail(ErrInvalidState, "attachment %s is no longer active", t.Metadata.AttachmentID)
		}

		b, err := m.balances.Lock(ctx, t.UserID, t.Currency)
		if err != nil {
			return err
		}
		b.ReservedBalance = b.ReservedBalance.Sub(t.Amount)
		b.TotalWithdrawn = b.TotalWithdrawn.Add(t.Amount)
		b.TotalFeesEarned = b.TotalFeesEarned.Add(t.FeeAmount)
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}

		t.Status = models.TxConfirmed
		t.TransactionHash = txHash
		t.Metadata.TransferState = models.TransferSucceeded
		t.ProcessedAt = &now
		if err := m.transactions.Settle(ctx, t); err != nil {
			return err
		}
		if err := m.claims.SetState(ctx, t.Metadata.RedemptionCode, t.Metadata.TransferKey, models.ClaimConsumed); err != nil {
			return err
		}
		if t.FromAddress != nil {
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

	logger.Log.Infow("redemption settled", "transactionID", settled.ID, "attachmentID", settled.Metadata.AttachmentID, "recipient", settled.Metadata.RecipientUserID)
	m.publish(ctx, settled)
	return settled, nil
}

// abandonRedemption marks a redemption whose transfer definitely did not happen as
// failed and frees the code for another attempt. Balances are untouched.
func (m *WalletBalanceManager) abandonRedemption(ctx context.Context, t *models.CustodialWalletTransaction, reason string) {
	ctx = context.WithoutCancel(ctx)
	now := m.now()
	t.Status = models.TxFailed
	t.Metadata.TransferState = models.TransferFailed
	t.Metadata.Reason = reason
	t.ProcessedAt = &now
	if err := m.transactions.Settle(ctx, t); err != nil {
		logger.Log.Errorw("failed to record failed redemption", "transactionID", t.ID, "error", err)
		return
	}
	m.releaseClaim(ctx, t.Metadata.RedemptionCode, t.Metadata.TransferKey)
	m.publish(ctx, t)
}

// markAmbiguous parks a redemption whose transfer outcome is unknown. The claim stays
// held so no second transfer can be issued until the reconciler resolves it.
func (m *WalletBalanceManager) markAmbiguous(ctx context.Context, t *models.CustodialWalletTransaction, reason string) {
	ctx = context.WithoutCancel(ctx)
	t.Metadata.TransferState = models.TransferAmbiguous
	t.Metadata.Reason = reason
	if err := m.transactions.Settle(ctx, t); err != nil {
		logger.Log.Errorw("failed to record ambiguous transfer", "transactionID", t.ID, "error", err)
	}
	if t.TransactionType == models.TxRedemption {
		if err := m.claims.SetState(ctx, t.Metadata.RedemptionCode, t.Metadata.TransferKey, models.ClaimAmbiguous); err != nil {
			logger.Log.Errorw("failed to mark claim ambiguous", "transactionID", t.ID, "error", err)
		}
	}
	recordSecurityEvent(ctx, m.securityLogs, t.UserID, models.EventTransferAmbiguous, models.SeverityHigh, models.SecurityDetails{
		"transaction_id":   t.ID,
		"transaction_type": string(t.TransactionType),
		"transfer_key":     t.Metadata.TransferKey,
		"reason":           reason,
	}, m.now())
}
