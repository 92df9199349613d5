package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleTransaction(userID string) *models.CustodialWalletTransaction {
	return &models.CustodialWalletTransaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		TransactionType: models.TxDeposit,
		Amount:          dec("1.5"),
		Currency:        models.SOL,
		Status:          models.TxPending,
		FeeAmount:       decimal.Zero,
		FeeCurrency:     models.SOL,
		Metadata:        models.TransactionMetadata{Version: models.MetadataVersion},
		CreatedAt:       time.Now().UTC(),
	}
}

func sampleAttachment(userID, code string) *models.ValueAttachment {
	return &models.ValueAttachment{
		ID:             uuid.NewString(),
		UserID:         userID,
		ProductID:      "msg-" + code,
		ProductType:    models.ProductMessage,
		Amount:         dec("4"),
		Currency:       models.SOL,
		RedemptionCode: code,
		Status:         models.AttachmentActive,
		FeeAmount:      dec("0.02"),
		FeeCurrency:    models.SOL,
		CreatedAt:      time.Now().UTC(),
	}
}

// balanceOf reads a balance row back through ListByUser, or nil.
func balanceOf(t *testing.T, repo *BalanceRepository, userID string, currency models.Currency) *models.UserWalletBalance {
	t.Helper()
	balances, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	for i := range balances {
		if balances[i].Currency == currency {
			return &balances[i]
		}
	}
	return nil
}

// claimOf returns the claim row for code, or nil.
func claimOf(t *testing.T, db *sqlx.DB, code string) *models.RedemptionClaim {
	t.Helper()
	var claims []models.RedemptionClaim
	err := db.Select(&claims, `
		SELECT redemption_code, ticket, claimant, state, created_at, updated_at
		FROM redemption_claims WHERE redemption_code = $1`, code)
	require.NoError(t, err)
	if len(claims) == 0 {
		return nil
	}
	return &claims[0]
}

func TestBalanceRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	txm := NewTxManager(db)
	repo := NewBalanceRepository(db, GetTxFromContext)
	ctx := context.Background()

	t.Run("no row before the first Lock", func(t *testing.T) {
		assert.Nil(t, balanceOf(t, repo, "nobody", models.SOL))
	})

	t.Run("Lock creates a zero row and Save persists", func(t *testing.T) {
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			b, err := repo.Lock(ctx, "u1", models.SOL)
			require.NoError(t, err)
			assert.True(t, b.AvailableBalance.IsZero())

			b.AvailableBalance = dec("10")
			b.TotalDeposited = dec("10")
			return repo.Save(ctx, b)
		})
		require.NoError(t, err)

		b := balanceOf(t, repo, "u1", models.SOL)
		require.NotNil(t, b)
		assert.True(t, b.AvailableBalance.Equal(dec("10")))
	})

	t.Run("Save rejects broken equation", func(t *testing.T) {
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			b, err := repo.Lock(ctx, "u1", models.SOL)
			require.NoError(t, err)
			b.AvailableBalance = dec("11")
			return repo.Save(ctx, b)
		})
		assert.ErrorIs(t, err, models.ErrBalanceInvariant)

		b := balanceOf(t, repo, "u1", models.SOL)
		require.NotNil(t, b)
		assert.True(t, b.AvailableBalance.Equal(dec("10")))
	})

	t.Run("Lock serializes concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := txm.WithinTx(ctx, func(ctx context.Context) error {
					b, err := repo.Lock(ctx, "u2", models.USDC)
					if err != nil {
						return err
					}
					b.AvailableBalance = b.AvailableBalance.Add(dec("1"))
					b.TotalDeposited = b.TotalDeposited.Add(dec("1"))
					return repo.Save(ctx, b)
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		b := balanceOf(t, repo, "u2", models.USDC)
		require.NotNil(t, b)
		assert.True(t, b.AvailableBalance.Equal(dec("10")))
		assert.True(t, b.TotalDeposited.Equal(dec("10")))
	})

	t.Run("ListByUser", func(t *testing.T) {
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			_, err := repo.Lock(ctx, "u1", models.FLBY)
			return err
		})
		require.NoError(t, err)

		balances, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, balances, 2)
		assert.Equal(t, models.FLBY, balances[0].Currency)
		assert.Equal(t, models.SOL, balances[1].Currency)
	})
}

func TestAttachmentAndClaimRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	attachments := NewAttachmentRepository(db, GetTxFromContext)
	claims := NewClaimRepository(db, GetTxFromContext)
	ctx := context.Background()

	a := sampleAttachment("u1", "ABCD2345")
	require.NoError(t, attachments.Create(ctx, a))

	t.Run("lookup by code and id", func(t *testing.T) {
		exists, err := attachments.ExistsByCode(ctx, "ABCD2345")
		require.NoError(t, err)
		assert.True(t, exists)

		got, err := attachments.GetByCode(ctx, "ABCD2345")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, a.ID, got.ID)
		assert.True(t, got.Amount.Equal(dec("4")))

		missing, err := attachments.GetByID(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		err := attachments.Create(ctx, sampleAttachment("u2", "ABCD2345"))
		assert.Error(t, err)
	})

	t.Run("claims are exclusive", func(t *testing.T) {
		ticket := uuid.NewString()
		ok, err := claims.Acquire(ctx, "ABCD2345", ticket, "u2")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = claims.Acquire(ctx, "ABCD2345", uuid.NewString(), "u3")
		require.NoError(t, err)
		assert.False(t, ok)

		closed, err := attachments.Close(ctx, a.ID, models.AttachmentCancelled)
		require.NoError(t, err)
		assert.False(t, closed, "claimed attachment must not close")

		require.NoError(t, claims.Release(ctx, "ABCD2345", ticket))
		assert.Nil(t, claimOf(t, db, "ABCD2345"))
	})

	t.Run("MarkRedeemed is a one shot transition", func(t *testing.T) {
		ticket := uuid.NewString()
		ok, err := claims.Acquire(ctx, "ABCD2345", ticket, "u2")
		require.NoError(t, err)
		require.True(t, ok)

		hash := "sig-1"
		ok, err = attachments.MarkRedeemed(ctx, a.ID, "u2", &hash, time.Now())
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, claims.SetState(ctx, "ABCD2345", ticket, models.ClaimConsumed))

		ok, err = attachments.MarkRedeemed(ctx, a.ID, "u3", nil, time.Now())
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, claims.Release(ctx, "ABCD2345", ticket))
		c := claimOf(t, db, "ABCD2345")
		require.NotNil(t, c, "consumed claims are kept")
		assert.Equal(t, models.ClaimConsumed, c.State)

		assert.Error(t, claims.SetState(ctx, "ABCD2345", ticket, models.ClaimHeld))
	})

	t.Run("ListExpired skips claimed and future attachments", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)

		due := sampleAttachment("u1", "EXPIRED1")
		due.ExpiresAt = &past
		claimed := sampleAttachment("u1", "EXPIRED2")
		claimed.ExpiresAt = &past
		later := sampleAttachment("u1", "LATER001")
		later.ExpiresAt = &future
		for _, x := range []*models.ValueAttachment{due, claimed, later} {
			require.NoError(t, attachments.Create(ctx, x))
		}
		_, err := claims.Acquire(ctx, "EXPIRED2", uuid.NewString(), "u9")
		require.NoError(t, err)

		expired, err := attachments.ListExpired(ctx, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, due.ID, expired[0].ID)

		closed, err := attachments.Close(ctx, due.ID, models.AttachmentExpired)
		require.NoError(t, err)
		assert.True(t, closed)

		list, err := attachments.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, list, 4)
	})
}

func TestAttachmentRepository_CloseWaitsForConcurrentClaim(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	txm := NewTxManager(db)
	attachments := NewAttachmentRepository(db, GetTxFromContext)
	claims := NewClaimRepository(db, GetTxFromContext)
	ctx := context.Background()

	a := sampleAttachment("u1", "RACE2345")
	require.NoError(t, attachments.Create(ctx, a))

	closed := make(chan bool, 1)
	err := txm.WithinTx(ctx, func(ctx context.Context) error {
		got, err := attachments.GetForUpdate(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		ok, err := claims.Acquire(ctx, "RACE2345", uuid.NewString(), "u2")
		require.NoError(t, err)
		require.True(t, ok)

		// a cancel arriving now blocks on the row lock until the claim commits
		go func() {
			var ok bool
			err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
				var err error
				ok, err = attachments.Close(ctx, a.ID, models.AttachmentCancelled)
				return err
			})
			assert.NoError(t, err)
			closed <- ok
		}()
		time.Sleep(200 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	select {
	case ok := <-closed:
		assert.False(t, ok, "close must see the claim committed while it waited")
	case <-time.After(5 * time.Second):
		t.Fatal("close did not return")
	}

	got, err := attachments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttachmentActive, got.Status)
}

func TestTransactionRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	txm := NewTxManager(db)
	repo := NewTransactionRepository(db, GetTxFromContext)
	ctx := context.Background()

	first := sampleTransaction("u1")
	first.CreatedAt = time.Now().Add(-10 * time.Minute).UTC()
	require.NoError(t, repo.Create(ctx, first))

	second := sampleTransaction("u1")
	second.TransactionType = models.TxWithdrawal
	second.CreatedAt = time.Now().Add(-10 * time.Minute).Add(time.Second).UTC()
	second.Metadata.TransferKey = second.ID
	second.Metadata.TransferState = models.TransferIssued
	require.NoError(t, repo.Create(ctx, second))

	t.Run("ListByUser newest first", func(t *testing.T) {
		txs, err := repo.ListByUser(ctx, "u1", 10)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, second.ID, txs[0].ID)
		assert.Equal(t, models.TransferIssued, txs[0].Metadata.TransferState)
	})

	t.Run("ListUnsettledTransfers returns issued outgoing transfers", func(t *testing.T) {
		txs, err := repo.ListUnsettledTransfers(ctx, time.Now().Add(-5*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, second.ID, txs[0].ID)
	})

	t.Run("GetForUpdate requires a transaction", func(t *testing.T) {
		_, err := repo.GetForUpdate(ctx, first.ID)
		assert.ErrorIs(t, err, ErrNoTx)
	})

	t.Run("Settle once", func(t *testing.T) {
		hash := "sig-1"
		now := time.Now().UTC()
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			tx, err := repo.GetForUpdate(ctx, first.ID)
			require.NoError(t, err)
			require.NotNil(t, tx)
			tx.Status = models.TxConfirmed
			tx.TransactionHash = &hash
			tx.Confirmations = 3
			tx.ProcessedAt = &now
			return repo.Settle(ctx, tx)
		})
		require.NoError(t, err)

		first.Status = models.TxFailed
		assert.Error(t, repo.Settle(ctx, first))

		txs, err := repo.ListByUser(ctx, "u1", 10)
		require.NoError(t, err)
		assert.Equal(t, models.TxConfirmed, txs[1].Status)
		assert.Equal(t, 3, txs[1].Confirmations)
	})

	t.Run("ListByUser shows a redemption to its recipient", func(t *testing.T) {
		redemption := sampleTransaction("u7")
		redemption.TransactionType = models.TxRedemption
		redemption.Status = models.TxConfirmed
		redemption.Metadata.OriginalUserID = "u7"
		redemption.Metadata.RecipientUserID = "u8"
		require.NoError(t, repo.Create(ctx, redemption))

		other := sampleTransaction("u9")
		other.Metadata.RecipientUserID = "u8"
		require.NoError(t, repo.Create(ctx, other))

		received, err := repo.ListByUser(ctx, "u8", 10)
		require.NoError(t, err)
		require.Len(t, received, 1, "only redemptions are listed for the recipient")
		assert.Equal(t, redemption.ID, received[0].ID)
		assert.Equal(t, "u7", received[0].UserID)

		sent, err := repo.ListByUser(ctx, "u7", 10)
		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, redemption.ID, sent[0].ID)
	})
}

func TestWalletRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, GetTxFromContext)
	ctx := context.Background()

	w := &models.CustodialWallet{
		ID:                  uuid.NewString(),
		Currency:            models.SOL,
		WalletAddress:       "HOT1",
		EncryptedPrivateKey: []byte{1, 2, 3},
		Balance:             dec("100"),
		ReservedBalance:     decimal.Zero,
		Status:              models.WalletActive,
		IsHotWallet:         true,
		CreatedAt:           time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, repo.AddBalance(ctx, "HOT1", dec("-2.5")))
	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("97.5")))
	assert.Equal(t, []byte{1, 2, 3}, got.EncryptedPrivateKey)

	ok, err := repo.SetStatus(ctx, w.ID, models.WalletFrozen)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.SetStatus(ctx, uuid.NewString(), models.WalletFrozen)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.TouchHealthCheck(ctx, w.ID, at))

	list, err := repo.ListByCurrency(ctx, models.SOL)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.WalletFrozen, list[0].Status)
	require.NotNil(t, list[0].LastHealthCheck)
	assert.True(t, list[0].LastHealthCheck.Equal(at))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	none, err := repo.ListByCurrency(ctx, models.USDC)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSecurityLogAndUsageRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	logs := NewSecurityLogRepository(db)
	user := "u1"
	for i, sev := range []models.Severity{models.SeverityLow, models.SeverityHigh, models.SeverityHigh} {
		require.NoError(t, logs.Create(ctx, &models.SecurityLog{
			ID:        uuid.NewString(),
			UserID:    &user,
			EventType: models.EventDepositRequest,
			Severity:  sev,
			Details:   models.SecurityDetails{"n": i},
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second).UTC(),
		}))
	}

	all, err := logs.List(ctx, nil, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.EqualValues(t, 2, all[0].Details["n"])

	high := models.SeverityHigh
	filtered, err := logs.List(ctx, &high, 1)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.SeverityHigh, filtered[0].Severity)

	usage := NewUsageCounterRepository(db, GetTxFromContext)
	day := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)

	total, err := usage.Add(ctx, "wallet_volume:w1", day, dec("600"))
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("600")))

	total, err = usage.Add(ctx, "wallet_volume:w1", day, dec("500"))
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("1100")))

	total, err = usage.Add(ctx, "wallet_volume:w1", day.Add(2*time.Hour), dec("1"))
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("1")), "counter resets on the next UTC day")
}
