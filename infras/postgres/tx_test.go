package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"pms/infras/postgres"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T, maxRetry int) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return postgres.NewFromDB(sqlx.NewDb(db, "postgres"), maxRetry, sql.LevelDefault), mock
}

func TestWithTransaction_Commit(t *testing.T) {
	conn, mock := newConnection(t, 0)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("UPDATE rooms SET is_dirty = true")

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newConnection(t, 3)
	expected := errors.New("room not available")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		return expected
	})

	assert.ErrorIs(t, err, expected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newConnection(t, 0)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RetriesSerializationFailure(t *testing.T) {
	conn, mock := newConnection(t, 2)
	serialization := &pq.Error{Code: "40001"}

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		calls++
		if calls == 1 {
			return serialization
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RetriesExhausted(t *testing.T) {
	conn, mock := newConnection(t, 1)
	deadlock := &pq.Error{Code: "40P01"}

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		calls++

		return deadlock
	})

	assert.ErrorIs(t, err, deadlock)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, postgres.IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, postgres.IsRetryable(&pq.Error{Code: "40P01"}))
	assert.False(t, postgres.IsRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, postgres.IsRetryable(errors.New("plain")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
}

func TestParseIsolation(t *testing.T) {
	assert.Equal(t, sql.LevelSerializable, postgres.ParseIsolation("serializable"))
	assert.Equal(t, sql.LevelRepeatableRead, postgres.ParseIsolation("repeatable_read"))
	assert.Equal(t, sql.LevelReadCommitted, postgres.ParseIsolation("READ COMMITTED"))
	assert.Equal(t, sql.LevelDefault, postgres.ParseIsolation(""))
}
