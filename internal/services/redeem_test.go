package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectRedeemUpToTransfer wires the calls every redeem makes before the adapter answers
// and returns a pointer to the pending ledger entry it records.
func expectRedeemUpToTransfer(f *fixture, a *models.ValueAttachment, caller, destination string) **models.CustodialWalletTransaction {
	wallet := hotWallet("w1", models.SOL, "10")
	var pending *models.CustodialWalletTransaction

	f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
	f.sanctions.EXPECT().IsSanctioned(gomock.Any(), destination).Return(false, nil)
	f.wallets.EXPECT().ListByCurrency(gomock.Any(), a.Currency).Return([]models.CustodialWallet{wallet}, nil)
	gomock.InOrder(
		f.attachments.EXPECT().GetForUpdate(gomock.Any(), a.ID).Return(a, nil),
		f.claims.EXPECT().Acquire(gomock.Any(), a.RedemptionCode, gomock.Any(), caller).Return(true, nil),
	)
	f.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.CustodialWalletTransaction) error {
		cp := *tx
		pending = &cp
		return nil
	})
	f.usage.EXPECT().Add(gomock.Any(), "wallet_volume:w1", fixedNow, decEq(a.NetAmount().String())).Return(a.NetAmount(), nil)
	return &pending
}

func TestWalletBalanceManager_Redeem_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// U1 deposited 10 SOL and attached 4 of them
	a := activeAttachment("U1", "4", "0.02")
	pending := expectRedeemUpToTransfer(f, a, "U2", "R1")

	f.adapter.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *models.CustodialWallet, req models.TransferRequest) models.TransferResult {
			assert.Equal(t, "w1", w.ID)
			assert.Equal(t, "R1", req.Destination)
			assert.True(t, req.Amount.Equal(d("3.98")), "net amount %s", req.Amount)
			assert.Equal(t, (*pending).Metadata.TransferKey, req.IdempotencyKey)
			return models.TransferResult{Status: models.TransferStatusSuccess, TransactionHash: "0xhash"}
		})

	f.transactions.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*models.CustodialWalletTransaction, error) {
		cp := **pending
		return &cp, nil
	})
	hash := "0xhash"
	f.attachments.EXPECT().MarkRedeemed(gomock.Any(), "att-1", "U2", &hash, fixedNow).Return(true, nil)
	f.balances.EXPECT().Lock(gomock.Any(), "U1", models.SOL).Return(balanceOf("U1", models.SOL, "6", "0", "4", "10", "0"), nil)
	var saved *models.UserWalletBalance
	f.balances.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveInto(&saved))
	var settled *models.CustodialWalletTransaction
	f.transactions.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.CustodialWalletTransaction) error {
		settled = tx
		return nil
	})
	f.claims.EXPECT().SetState(gomock.Any(), "ABCD2345", gomock.Any(), models.ClaimConsumed).Return(nil)
	f.wallets.EXPECT().AddBalance(gomock.Any(), "HOT-w1", decEq("-3.98")).Return(nil)

	res, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: "abcd2345", RecipientUserID: "U2", RecipientAddress: "R1"})
	require.NoError(t, err)

	assert.Equal(t, "0xhash", res.TransactionHash)
	assert.Equal(t, models.TxConfirmed, res.Status)
	assert.True(t, res.Amount.Equal(d("4")))
	assert.True(t, res.NetAmount.Equal(d("3.98")))
	assert.Equal(t, fixedNow, *res.RedeemedAt)

	assert.True(t, saved.ReservedBalance.IsZero())
	assert.True(t, saved.AvailableBalance.Equal(d("6")))
	assert.True(t, saved.TotalWithdrawn.Equal(d("4")))
	assert.True(t, saved.TotalFeesEarned.Equal(d("0.02")))

	require.NotNil(t, settled)
	assert.Equal(t, models.TxConfirmed, settled.Status)
	assert.Equal(t, models.TransferSucceeded, settled.Metadata.TransferState)
	assert.Equal(t, "U1", settled.Metadata.OriginalUserID)
	assert.Equal(t, "U2", settled.Metadata.RecipientUserID)

	require.Len(t, f.published, 1)
	assert.Equal(t, models.TxRedemption, f.published[0].Operation)
}

func TestWalletBalanceManager_Redeem_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t)
		f.attachments.EXPECT().GetByCode(gomock.Any(), "NOPE0000").Return(nil, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: "NOPE0000", RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("already redeemed", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		a.Status = models.AttachmentRedeemed
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U3", RecipientAddress: "R3"})
		assert.ErrorIs(t, err, ErrAlreadyRedeemed)
	})

	t.Run("restricted recipient", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		u2 := "U2"
		a.RecipientUserID = &u2
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U3", RecipientAddress: "R3"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing address", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("sanctioned destination", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "BAD").Return(true, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "BAD"})
		assert.ErrorIs(t, err, ErrComplianceBlocked)
		logs := f.events(models.EventComplianceViolation)
		require.Len(t, logs, 1)
		assert.Equal(t, models.SeverityHigh, logs[0].Severity)
		assert.Equal(t, "U2", *logs[0].UserID)
	})

	t.Run("sanctions list unavailable", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, errors.New("redis down"))

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrComplianceBlocked)
	})

	t.Run("no wallet", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, nil)
		f.wallets.EXPECT().ListByCurrency(gomock.Any(), models.SOL).Return(nil, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrWalletUnavailable)
	})

	t.Run("over single transaction limit", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "2000", "10")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})

	t.Run("claim lost to a concurrent redeem", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, nil)
		f.wallets.EXPECT().ListByCurrency(gomock.Any(), models.SOL).Return([]models.CustodialWallet{hotWallet("w1", models.SOL, "10")}, nil)
		f.attachments.EXPECT().GetForUpdate(gomock.Any(), a.ID).Return(a, nil)
		f.claims.EXPECT().Acquire(gomock.Any(), a.RedemptionCode, gomock.Any(), "U3").Return(false, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U3", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrAlreadyRedeemed)
	})

	t.Run("cancelled while claiming", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		cancelled := *a
		cancelled.Status = models.AttachmentCancelled
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, nil)
		f.wallets.EXPECT().ListByCurrency(gomock.Any(), models.SOL).Return([]models.CustodialWallet{hotWallet("w1", models.SOL, "10")}, nil)
		f.attachments.EXPECT().GetForUpdate(gomock.Any(), a.ID).Return(&cancelled, nil)

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrAlreadyRedeemed)
	})

	t.Run("ledger write failure leaves no claim behind", func(t *testing.T) {
		f := newFixture(t)
		a := activeAttachment("U1", "4", "0.02")
		f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
		f.sanctions.EXPECT().IsSanctioned(gomock.Any(), "R1").Return(false, nil)
		f.wallets.EXPECT().ListByCurrency(gomock.Any(), models.SOL).Return([]models.CustodialWallet{hotWallet("w1", models.SOL, "10")}, nil)

		var inTx bool
		tx := NewMockTxRunner(f.ctrl)
		f.manager.tx = tx
		tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(ctx)
			})
		f.attachments.EXPECT().GetForUpdate(gomock.Any(), a.ID).DoAndReturn(func(context.Context, string) (*models.ValueAttachment, error) {
			assert.True(t, inTx, "attachment must be locked inside the claim transaction")
			return a, nil
		})
		f.claims.EXPECT().Acquire(gomock.Any(), a.RedemptionCode, gomock.Any(), "U2").DoAndReturn(func(context.Context, string, string, string) (bool, error) {
			assert.True(t, inTx, "claim must be taken inside the transaction")
			return true, nil
		})
		dbErr := errors.New("connection reset")
		f.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *models.CustodialWalletTransaction) error {
			assert.True(t, inTx, "ledger row must be written inside the claim transaction")
			return dbErr
		})
		// no Release and no transfer: rolling back the transaction drops the claim

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestWalletBalanceManager_Redeem_Expired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := activeAttachment("U1", "4", "0.02")
	expired := fixedNow.Add(-time.Minute)
	a.ExpiresAt = &expired

	f.attachments.EXPECT().GetByCode(gomock.Any(), a.RedemptionCode).Return(a, nil)
	f.attachments.EXPECT().Close(gomock.Any(), a.ID, models.AttachmentExpired).Return(true, nil)
	f.balances.EXPECT().Lock(gomock.Any(), "U1", models.SOL).Return(balanceOf("U1", models.SOL, "6", "0", "4", "10", "0"), nil)
	var saved *models.UserWalletBalance
	f.balances.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveInto(&saved))
	f.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
	assert.ErrorIs(t, err, ErrExpired)
	assert.True(t, saved.AvailableBalance.Equal(d("10")))
	assert.True(t, saved.ReservedBalance.IsZero())
	require.Len(t, f.published, 1)
	assert.Equal(t, models.TxValueRelease, f.published[0].Operation)
}

func TestWalletBalanceManager_Redeem_TransferFailed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := activeAttachment("U1", "4", "0.02")
	pending := expectRedeemUpToTransfer(f, a, "U2", "R1")

	f.adapter.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TransferResult{Status: models.TransferStatusFailed, Error: "blockhash not found"})
	f.usage.EXPECT().Add(gomock.Any(), "wallet_volume:w1", fixedNow, decEq("-3.98")).Return(d("0"), nil)
	var settled *models.CustodialWalletTransaction
	f.transactions.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.CustodialWalletTransaction) error {
		settled = tx
		return nil
	})
	f.claims.EXPECT().Release(gomock.Any(), a.RedemptionCode, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ticket string) error {
		assert.Equal(t, (*pending).Metadata.TransferKey, ticket)
		return nil
	})

	_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
	assert.ErrorIs(t, err, ErrTransferFailed)
	assert.Equal(t, models.TxFailed, settled.Status)
	assert.Equal(t, models.TransferFailed, settled.Metadata.TransferState)
	assert.Equal(t, "blockhash not found", settled.Metadata.Reason)
}

func TestWalletBalanceManager_Redeem_Ambiguous(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := activeAttachment("U1", "4", "0.02")
	expectRedeemUpToTransfer(f, a, "U2", "R1")

	f.adapter.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TransferResult{Status: models.TransferStatusAmbiguous, Error: "deadline exceeded"})
	var parked *models.CustodialWalletTransaction
	f.transactions.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.CustodialWalletTransaction) error {
		parked = tx
		return nil
	})
	f.claims.EXPECT().SetState(gomock.Any(), a.RedemptionCode, gomock.Any(), models.ClaimAmbiguous).Return(nil)

	res, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: a.RedemptionCode, RecipientUserID: "U2", RecipientAddress: "R1"})
	assert.ErrorIs(t, err, ErrAmbiguous)
	require.NotNil(t, res)
	assert.Equal(t, models.TxPending, res.Status)
	assert.Equal(t, parked.ID, res.TransactionID)

	assert.Equal(t, models.TxPending, parked.Status)
	assert.Equal(t, models.TransferAmbiguous, parked.Metadata.TransferState)
	require.Len(t, f.events(models.EventTransferAmbiguous), 1)
	assert.Empty(t, f.published)
}

func TestWalletBalanceManager_Redeem_Throttled(t *testing.T) {
	ctx := context.Background()

	t.Run("over the limit", func(t *testing.T) {
		f := newFixture(t)
		throttle := NewMockAttemptThrottle(f.ctrl)
		throttle.EXPECT().Hit(ctx, "U2").Return(int64(6), nil)
		f.manager.throttle = throttle

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: "ABCD2345", RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("counter unavailable", func(t *testing.T) {
		f := newFixture(t)
		throttle := NewMockAttemptThrottle(f.ctrl)
		throttle.EXPECT().Hit(ctx, "U2").Return(int64(0), errors.New("redis down"))
		f.manager.throttle = throttle

		_, err := f.manager.Redeem(ctx, RedeemRequest{RedemptionCode: "ABCD2345", RecipientUserID: "U2", RecipientAddress: "R1"})
		assert.ErrorIs(t, err, ErrRateLimited)
	})
}
