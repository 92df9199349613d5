package services

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TxRunner runs a unit of work atomically.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BalanceStore reads and writes user balances.
type BalanceStore interface {
	Lock(ctx context.Context, userID string, currency models.Currency) (*models.UserWalletBalance, error) // Returns the row locked for the current transaction, creating it if missing
	Save(ctx context.Context, b *models.UserWalletBalance) error                                          // Writes a locked row back
	ListByUser(ctx context.Context, userID string) ([]models.UserWalletBalance, error)                    // Returns all balances of a user
}

// AttachmentStore reads and writes value attachments.
type AttachmentStore interface {
	Create(ctx context.Context, a *models.ValueAttachment) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	GetByCode(ctx context.Context, code string) (*models.ValueAttachment, error)
	GetByID(ctx context.Context, id string) (*models.ValueAttachment, error)
	GetForUpdate(ctx context.Context, id string) (*models.ValueAttachment, error) // row-locked until the tx ends
	ListByUser(ctx context.Context, userID string) ([]models.ValueAttachment, error)
	MarkRedeemed(ctx context.Context, id, redeemedBy string, txHash *string, at time.Time) (bool, error) // active -> redeemed
	Close(ctx context.Context, id string, status models.AttachmentStatus) (bool, error)                  // unclaimed active -> expired | cancelled
	ListExpired(ctx context.Context, now time.Time, limit int) ([]models.ValueAttachment, error)
}

// CodeIndex answers whether a redemption code is already taken.
type CodeIndex interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ClaimStore holds the per-code redemption tickets.
type ClaimStore interface {
	Acquire(ctx context.Context, code, ticket, claimant string) (bool, error)
	Release(ctx context.Context, code, ticket string) error
	SetState(ctx context.Context, code, ticket string, state models.ClaimState) error
}

// TransactionStore is the append-only ledger log.
type TransactionStore interface {
	Create(ctx context.Context, t *models.CustodialWalletTransaction) error
	Settle(ctx context.Context, t *models.CustodialWalletTransaction) error
	GetForUpdate(ctx context.Context, id string) (*models.CustodialWalletTransaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.CustodialWalletTransaction, error)
	ListUnsettledTransfers(ctx context.Context, olderThan time.Time, limit int) ([]models.CustodialWalletTransaction, error)
}

// WalletStore persists the custodial hot wallets.
type WalletStore interface {
	Create(ctx context.Context, w *models.CustodialWallet) error
	ListAll(ctx context.Context) ([]models.CustodialWallet, error)
	ListByCurrency(ctx context.Context, currency models.Currency) ([]models.CustodialWallet, error)
	GetByID(ctx context.Context, id string) (*models.CustodialWallet, error)
	AddBalance(ctx context.Context, address string, delta decimal.Decimal) error
	SetStatus(ctx context.Context, id string, status models.WalletStatus) (bool, error)
	TouchHealthCheck(ctx context.Context, id string, at time.Time) error
}

// SecurityLogWriter appends security audit records.
type SecurityLogWriter interface {
	Create(ctx context.Context, l *models.SecurityLog) error
}

// SecurityLogReader lists security audit records.
type SecurityLogReader interface {
	List(ctx context.Context, severity *models.Severity, limit int) ([]models.SecurityLog, error)
}

// UsageCounter keeps durable daily running totals.
type UsageCounter interface {
	Add(ctx context.Context, key string, at time.Time, delta decimal.Decimal) (decimal.Decimal, error)
}

// SanctionsChecker screens destination addresses.
type SanctionsChecker interface {
	IsSanctioned(ctx context.Context, address string) (bool, error)
}

// AttemptThrottle counts attempts per caller in the current window.
type AttemptThrottle interface {
	Hit(ctx context.Context, caller string) (int64, error)
}

// TransferAdapter moves funds on-chain out of a custodial wallet. It reports every
// outcome, including an unknown one, through the result.
type TransferAdapter interface {
	Transfer(ctx context.Context, wallet *models.CustodialWallet, req models.TransferRequest) models.TransferResult
	Lookup(ctx context.Context, idempotencyKey string) models.TransferResult
	Balance(ctx context.Context, address string, currency models.Currency) (decimal.Decimal, error)
}

// KeyGenerator creates new hot-wallet key pairs with sealed private keys.
type KeyGenerator interface {
	NewWallet() (address string, sealedKey []byte, err error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
