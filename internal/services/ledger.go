package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// WalletBalanceManager is the only writer of user balances. Every mutation runs in a
// single store transaction that locks the (user, currency) balance row and appends
// the matching ledger entry.
type WalletBalanceManager struct {
	tx           TxRunner
	balances     BalanceStore
	attachments  AttachmentStore
	claims       ClaimStore
	transactions TransactionStore
	securityLogs SecurityLogWriter
	fees         *FeePolicy
	codes        *CodeGenerator
	compliance   *ComplianceGate
	pool         *CustodialWalletPool
	throttle     AttemptThrottle
	kafkaWriter  KafkaWriter

	maxRedeemAttempts int64
	now               func() time.Time
}

// NewWalletBalanceManager creates a WalletBalanceManager. A nil throttle disables
// redemption attempt limiting.
func NewWalletBalanceManager(
	tx TxRunner,
	balances BalanceStore,
	attachments AttachmentStore,
	claims ClaimStore,
	transactions TransactionStore,
	securityLogs SecurityLogWriter,
	fees *FeePolicy,
	codes *CodeGenerator,
	compliance *ComplianceGate,
	pool *CustodialWalletPool,
	throttle AttemptThrottle,
	kafkaWriter KafkaWriter,
	maxRedeemAttempts int64,
) *WalletBalanceManager {
	return &WalletBalanceManager{
		tx:                tx,
		balances:          balances,
		attachments:       attachments,
		claims:            claims,
		transactions:      transactions,
		securityLogs:      securityLogs,
		fees:              fees,
		codes:             codes,
		compliance:        compliance,
		pool:              pool,
		throttle:          throttle,
		kafkaWriter:       kafkaWriter,
		maxRedeemAttempts: maxRedeemAttempts,
		now:               time.Now,
	}
}

// publishTransaction publishes a committed ledger entry to Kafka.
func (m *WalletBalanceManager) publishTransaction(ctx context.Context, t *models.CustodialWalletTransaction) {
	if m.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", t.ID)
		return
	}

	event := models.Event{
		TransactionID: t.ID,
		Timestamp:     m.now().Unix(),
		UserID:        t.UserID,
		Operation:     t.TransactionType,
		Status:        t.Status,
		Amount:        t.Amount.String(),
		Currency:      t.Currency,
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", t.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(t.ID),
		Value: data,
	}

	if err := m.kafkaWriter.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", t.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", t.ID, "operation", t.TransactionType, "status", t.Status)
	}
}

func (m *WalletBalanceManager) publish(ctx context.Context, txs ...*models.CustodialWalletTransaction) {
	for _, t := range txs {
		if t != nil {
			m.publishTransaction(ctx, t)
		}
	}
}

func (m *WalletBalanceManager) newTransaction(
	userID string,
	kind models.TransactionType,
	status models.TransactionStatus,
	amount decimal.Decimal,
	currency models.Currency,
	meta models.TransactionMetadata,
) *models.CustodialWalletTransaction {
	now := m.now()
	meta.Version = models.MetadataVersion
	t := &models.CustodialWalletTransaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		TransactionType: kind,
		Amount:          amount,
		Currency:        currency,
		Status:          status,
		FeeAmount:       decimal.Zero,
		FeeCurrency:     currency,
		Metadata:        meta,
		CreatedAt:       now,
	}
	if status != models.TxPending {
		t.ProcessedAt = &now
	}
	return t
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// DepositRequest is the input of Deposit.
type DepositRequest struct {
	UserID          string
	Currency        models.Currency
	Amount          decimal.Decimal
	FromAddress     string
	TransactionHash string
}

// DepositResult is the pending deposit entry and the balance after it.
type DepositResult struct {
	Transaction *models.CustodialWalletTransaction
	Balance     *models.UserWalletBalance
}

// Deposit records an incoming deposit as pending. The funds become spendable after ConfirmDeposit.
func (m *WalletBalanceManager) Deposit(ctx context.Context, req DepositRequest) (*DepositResult, error) {
	if req.UserID == "" {
		return nil, fail(ErrInvalidInput, "user id is required")
	}
	if !req.Currency.Valid() {
		return nil, fail(ErrInvalidInput, "unsupported currency %q", req.Currency)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	to, err := m.pool.DepositAddress(ctx, req.Currency)
	if err != nil {
		logger.Log.Errorw("failed to resolve deposit address", "currency", req.Currency, "error", err)
		return nil, err
	}

	now := m.now()
	t := m.newTransaction(req.UserID, models.TxDeposit, models.TxPending, req.Amount, req.Currency, models.TransactionMetadata{
		DepositInitiated: &now,
	})
	t.FromAddress = optional(req.FromAddress)
	t.ToAddress = optional(to)
	t.TransactionHash = optional(req.TransactionHash)

	var snapshot *models.UserWalletBalance
	err = m.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := m.balances.Lock(ctx, req.UserID, req.Currency)
		if err != nil {
			return err
		}
		b.PendingBalance = b.PendingBalance.Add(req.Amount)
		b.TotalDeposited = b.TotalDeposited.Add(req.Amount)
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}
		snapshot = b
		return m.transactions.Create(ctx, t)
	})
	if err != nil {
		logger.Log.Errorw("failed to save deposit", "userID", req.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
		return nil, err
	}

	recordSecurityEvent(ctx, m.securityLogs, req.UserID, models.EventDepositRequest, models.SeverityLow, models.SecurityDetails{
		"transaction_id": t.ID,
		"amount":         req.Amount.String(),
		"currency":       string(req.Currency),
	}, now)
	m.publish(ctx, t)

	return &DepositResult{Transaction: t, Balance: snapshot}, nil
}

// ConfirmDeposit makes a pending deposit spendable and credits the receiving hot wallet.
func (m *WalletBalanceManager) ConfirmDeposit(ctx context.Context, transactionID, transactionHash string, confirmations int) (*models.CustodialWalletTransaction, error) {
	if confirmations < 0 {
		return nil, fail(ErrInvalidInput, "confirmations must not be negative")
	}

	var settled *models.CustodialWalletTransaction
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := m.pendingDeposit(ctx, transactionID)
		if err != nil {
			return err
		}

		b, err := m.balances.Lock(ctx, t.UserID, t.Currency)
		if err != nil {
			return err
		}
		now := m.now()
		b.PendingBalance = b.PendingBalance.Sub(t.Amount)
		b.AvailableBalance = b.AvailableBalance.Add(t.Amount)
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}

		t.Status = models.TxConfirmed
		t.Confirmations = confirmations
		if hash := optional(transactionHash); hash != nil {
			t.TransactionHash = hash
		}
		t.ProcessedAt = &now
		if err := m.transactions.Settle(ctx, t); err != nil {
			return err
		}
		if t.ToAddress != nil {
			if err := m.pool.Credit(ctx, *t.ToAddress, t.Amount); err != nil {
				return err
			}
		}
		settled = t
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to confirm deposit", "transactionID", transactionID, "error", err)
		return nil, err
	}

	m.publish(ctx, settled)
	return settled, nil
}

// FailDeposit reverses a pending deposit that never arrived on-chain.
func (m *WalletBalanceManager) FailDeposit(ctx context.Context, transactionID, reason string) (*models.CustodialWalletTransaction, error) {
	var settled *models.CustodialWalletTransaction
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := m.pendingDeposit(ctx, transactionID)
		if err != nil {
			return err
		}

		b, err := m.balances.Lock(ctx, t.UserID, t.Currency)
		if err != nil {
			return err
		}
		now := m.now()
		b.PendingBalance = b.PendingBalance.Sub(t.Amount)
		b.TotalDeposited = b.TotalDeposited.Sub(t.Amount)
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}

		t.Status = models.TxFailed
		t.Metadata.Reason = reason
		t.ProcessedAt = &now
		if err := m.transactions.Settle(ctx, t); err != nil {
			return err
		}
		settled = t
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to fail deposit", "transactionID", transactionID, "error", err)
		return nil, err
	}

	m.publish(ctx, settled)
	return settled, nil
}

func (m *WalletBalanceManager) pendingDeposit(ctx context.Context, id string) (*models.CustodialWalletTransaction, error) {
	t, err := m.transactions.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.TransactionType != models.TxDeposit {
		return nil, fail(ErrNotFound, "deposit %s not found", id)
	}
	if t.Status != models.TxPending {
		return nil, fail(ErrInvalidState, "deposit is already %s", t.Status)
	}
	return t, nil
}

// AttachRequest is the input of AttachValue.
type AttachRequest struct {
	UserID           string
	ProductID        string
	ProductType      models.ProductType
	Amount           decimal.Decimal
	Currency         models.Currency
	RecipientAddress string
	RecipientUserID  string
	ExpiresAt        *time.Time
	Message          string
}

func (m *WalletBalanceManager) validateAttach(req AttachRequest) error {
	switch {
	case req.UserID == "":
		return fail(ErrInvalidInput, "user id is required")
	case strings.TrimSpace(req.ProductID) == "":
		return fail(ErrInvalidInput, "product id is required")
	case !req.ProductType.Valid():
		return fail(ErrInvalidInput, "unsupported product type %q", req.ProductType)
	case !req.Currency.Valid():
		return fail(ErrInvalidInput, "unsupported currency %q", req.Currency)
	case req.ExpiresAt != nil && !req.ExpiresAt.After(m.now()):
		return fail(ErrInvalidInput, "expiry must be in the future")
	}
	return validateAmount(req.Amount)
}

// AttachValue reserves amount from the owner's available balance and binds it to a
// product under a fresh redemption code.
func (m *WalletBalanceManager) AttachValue(ctx context.Context, req AttachRequest) (*models.ValueAttachment, error) {
	if err := m.validateAttach(req); err != nil {
		return nil, err
	}

	fee, feeCurrency := m.fees.CalculateFee(req.Amount, req.Currency)
	if !fee.LessThan(req.Amount) {
		return nil, fail(ErrInvalidAmount, "amount %s does not cover the fee %s", req.Amount, fee)
	}

	code, err := m.codes.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate redemption code", "userID", req.UserID, "error", err)
		return nil, err
	}

	now := m.now()
	a := &models.ValueAttachment{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		ProductID:        strings.TrimSpace(req.ProductID),
		ProductType:      req.ProductType,
		Amount:           req.Amount,
		Currency:         req.Currency,
		RecipientAddress: optional(req.RecipientAddress),
		RecipientUserID:  optional(req.RecipientUserID),
		ExpiresAt:        req.ExpiresAt,
		Message:          optional(req.Message),
		RedemptionCode:   code,
		Status:           models.AttachmentActive,
		FeeAmount:        fee,
		FeeCurrency:      feeCurrency,
		CreatedAt:        now,
	}
	t := m.newTransaction(req.UserID, models.TxValueAttach, models.TxConfirmed, req.Amount, req.Currency, models.TransactionMetadata{
		AttachmentID:   a.ID,
		RedemptionCode: code,
		ProductID:      a.ProductID,
		ProductType:    a.ProductType,
	})

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
		b.LastActivity = now
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}
		if err := m.attachments.Create(ctx, a); err != nil {
			return err
		}
		return m.transactions.Create(ctx, t)
	})
	if err != nil {
		logger.Log.Errorw("failed to attach value", "userID", req.UserID, "productID", req.ProductID, "amount", req.Amount, "currency", req.Currency, "error", err)
		return nil, err
	}

	logger.Log.Infow("value attached", "attachmentID", a.ID, "userID", a.UserID, "code", maskCode(code))
	m.publish(ctx, t)
	return a, nil
}

// CancelAttachment returns an unredeemed attachment's reserved value to its owner.
func (m *WalletBalanceManager) CancelAttachment(ctx context.Context, userID, attachmentID string) (*models.ValueAttachment, error) {
	a, err := m.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		logger.Log.Errorw("failed to load attachment", "attachmentID", attachmentID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, fail(ErrNotFound, "attachment %s not found", attachmentID)
	}
	if a.UserID != userID {
		return nil, fail(ErrUnauthorized, "attachment belongs to another user")
	}
	if err := activeOrConflict(a); err != nil {
		return nil, err
	}

	t, closed, err := m.closeAttachment(ctx, a, models.AttachmentCancelled)
	if err != nil {
		logger.Log.Errorw("failed to cancel attachment", "attachmentID", attachmentID, "error", err)
		return nil, err
	}
	if !closed {
		return nil, fail(ErrInvalidState, "attachment is being redeemed")
	}

	m.publish(ctx, t)
	a.Status = models.AttachmentCancelled
	return a, nil
}

// closeAttachment moves an unclaimed active attachment to status and releases its
// reserved value. It reports false when the attachment was claimed or closed first.
func (m *WalletBalanceManager) closeAttachment(ctx context.Context, a *models.ValueAttachment, status models.AttachmentStatus) (*models.CustodialWalletTransaction, bool, error) {
	t := m.newTransaction(a.UserID, models.TxValueRelease, models.TxConfirmed, a.Amount, a.Currency, models.TransactionMetadata{
		AttachmentID: a.ID,
		ProductID:    a.ProductID,
		Reason:       string(status),
	})

	var closed bool
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := m.attachments.Close(ctx, a.ID, status)
		if err != nil || !ok {
			return err
		}

		b, err := m.balances.Lock(ctx, a.UserID, a.Currency)
		if err != nil {
			return err
		}
		b.ReservedBalance = b.ReservedBalance.Sub(a.Amount)
		b.AvailableBalance = b.AvailableBalance.Add(a.Amount)
		b.LastActivity = m.now()
		if err := m.balances.Save(ctx, b); err != nil {
			return err
		}
		if err := m.transactions.Create(ctx, t); err != nil {
			return err
		}
		closed = true
		return nil
	})
	if err != nil || !closed {
		return nil, false, err
	}
	return t, true, nil
}

func activeOrConflict(a *models.ValueAttachment) error {
	switch a.Status {
	case models.AttachmentActive:
		return nil
	case models.AttachmentExpired:
		return fail(ErrExpired, "attachment expired")
	default:
		return fail(ErrAlreadyRedeemed, "attachment is %s", a.Status)
	}
}

// GetBalances returns the caller's balances in every currency they hold.
func (m *WalletBalanceManager) GetBalances(ctx context.Context, userID string) ([]models.UserWalletBalance, error) {
	balances, err := m.balances.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balances", "userID", userID, "error", err)
		return nil, err
	}
	return balances, nil
}

// GetTransactions returns the user's ledger entries, newest first.
func (m *WalletBalanceManager) GetTransactions(ctx context.Context, userID string, limit int) ([]models.CustodialWalletTransaction, error) {
	txs, err := m.transactions.ListByUser(ctx, userID, clampLimit(limit))
	if err != nil {
		logger.Log.Errorw("failed to get transactions", "userID", userID, "error", err)
		return nil, err
	}
	return txs, nil
}

// ListAttachments returns the attachments created by the user.
func (m *WalletBalanceManager) ListAttachments(ctx context.Context, userID string) ([]models.ValueAttachment, error) {
	attachments, err := m.attachments.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list attachments", "userID", userID, "error", err)
		return nil, err
	}
	return attachments, nil
}
