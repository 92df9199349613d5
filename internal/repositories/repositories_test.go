package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxManager_WithinTx(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var seen bool
		err := NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
			seen = GetTxFromContext(ctx) != nil
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, seen)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call joins the outer transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		m := NewTxManager(db)
		err := m.WithinTx(context.Background(), func(outer context.Context) error {
			return m.WithinTx(outer, func(inner context.Context) error {
				assert.Same(t, GetTxFromContext(outer), GetTxFromContext(inner))
				return nil
			})
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		called := false
		err := NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}

func TestBalanceRepository_LockRequiresTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBalanceRepository(db, GetTxFromContext)

	b, err := repo.Lock(context.Background(), "u1", "SOL")

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNoTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_SettleNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE custodial_wallet_transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTransactionRepository(db, GetTxFromContext)
	err := repo.Settle(context.Background(), sampleTransaction("u1"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_CloseLocksBeforeUpdate(t *testing.T) {
	t.Run("locks the row then updates", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id FROM value_attachments WHERE id = \\$1 FOR UPDATE").
			WithArgs("att-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-1"))
		mock.ExpectExec("UPDATE value_attachments").
			WithArgs("att-1", models.AttachmentCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := NewAttachmentRepository(db, GetTxFromContext).Close(context.Background(), "att-1", models.AttachmentCancelled)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not closed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id FROM value_attachments").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ok, err := NewAttachmentRepository(db, GetTxFromContext).Close(context.Background(), "att-9", models.AttachmentExpired)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
