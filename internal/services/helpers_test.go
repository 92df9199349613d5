package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalMatcher compares decimals by value, not by representation.
type decimalMatcher struct {
	want decimal.Decimal
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: d(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is equal to decimal %s", m.want)
}

type fixture struct {
	ctrl         *gomock.Controller
	tx           *MockTxRunner
	balances     *MockBalanceStore
	attachments  *MockAttachmentStore
	claims       *MockClaimStore
	transactions *MockTransactionStore
	wallets      *MockWalletStore
	usage        *MockUsageCounter
	adapter      *MockTransferAdapter
	keys         *MockKeyGenerator
	sanctions    *MockSanctionsChecker
	throttle     *MockAttemptThrottle
	securityLogs *MockSecurityLogWriter
	kafka        *MockKafkaWriter

	pool    *CustodialWalletPool
	gate    *ComplianceGate
	manager *WalletBalanceManager

	logged    []*models.SecurityLog
	published []models.Event
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:         ctrl,
		tx:           NewMockTxRunner(ctrl),
		balances:     NewMockBalanceStore(ctrl),
		attachments:  NewMockAttachmentStore(ctrl),
		claims:       NewMockClaimStore(ctrl),
		transactions: NewMockTransactionStore(ctrl),
		wallets:      NewMockWalletStore(ctrl),
		usage:        NewMockUsageCounter(ctrl),
		adapter:      NewMockTransferAdapter(ctrl),
		keys:         NewMockKeyGenerator(ctrl),
		sanctions:    NewMockSanctionsChecker(ctrl),
		throttle:     NewMockAttemptThrottle(ctrl),
		securityLogs: NewMockSecurityLogWriter(ctrl),
		kafka:        NewMockKafkaWriter(ctrl),
	}

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	f.securityLogs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.SecurityLog) error {
			f.logged = append(f.logged, l)
			return nil
		}).AnyTimes()
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, msg := range msgs {
				var e models.Event
				if err := json.Unmarshal(msg.Value, &e); err != nil {
					return err
				}
				f.published = append(f.published, e)
			}
			return nil
		}).AnyTimes()
	f.throttle.EXPECT().Hit(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()

	clock := func() time.Time { return fixedNow }

	f.gate = NewComplianceGate(decimal.Zero, f.sanctions, f.securityLogs)
	f.gate.now = clock
	f.pool = NewCustodialWalletPool(f.wallets, f.usage, f.adapter, f.keys, f.securityLogs, PoolConfig{})
	f.pool.now = clock
	f.manager = NewWalletBalanceManager(
		f.tx, f.balances, f.attachments, f.claims, f.transactions, f.securityLogs,
		NewFeePolicy(), NewCodeGenerator(f.attachments, 0), f.gate, f.pool, f.throttle, f.kafka, 5,
	)
	f.manager.now = clock
	return f
}

func (f *fixture) events(eventType string) []*models.SecurityLog {
	var out []*models.SecurityLog
	for _, l := range f.logged {
		if l.EventType == eventType {
			out = append(out, l)
		}
	}
	return out
}

func balanceOf(userID string, currency models.Currency, available, pending, reserved, deposited, withdrawn string) *models.UserWalletBalance {
	b := models.NewUserWalletBalance(userID, currency, fixedNow.Add(-time.Hour))
	b.AvailableBalance = d(available)
	b.PendingBalance = d(pending)
	b.ReservedBalance = d(reserved)
	b.TotalDeposited = d(deposited)
	b.TotalWithdrawn = d(withdrawn)
	return b
}

func hotWallet(id string, currency models.Currency, balance string) models.CustodialWallet {
	return models.CustodialWallet{
		ID:            id,
		Currency:      currency,
		WalletAddress: "HOT-" + id,
		Balance:       d(balance),
		Status:        models.WalletActive,
		IsHotWallet:   true,
		CreatedAt:     fixedNow.Add(-24 * time.Hour),
	}
}

func activeAttachment(owner string, amount, fee string) *models.ValueAttachment {
	return &models.ValueAttachment{
		ID:             "att-1",
		UserID:         owner,
		ProductID:      "msg-1",
		ProductType:    models.ProductMessage,
		Amount:         d(amount),
		Currency:       models.SOL,
		RedemptionCode: "ABCD2345",
		Status:         models.AttachmentActive,
		FeeAmount:      d(fee),
		FeeCurrency:    models.SOL,
		CreatedAt:      fixedNow.Add(-time.Hour),
	}
}

// saveInto records every saved balance and enforces the ledger equation like the store does.
func saveInto(dst **models.UserWalletBalance) func(context.Context, *models.UserWalletBalance) error {
	return func(_ context.Context, b *models.UserWalletBalance) error {
		if err := b.Check(); err != nil {
			return err
		}
		*dst = b.Clone()
		return nil
	}
}
