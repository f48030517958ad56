package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./tx.go -destination=./mocks/tx_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pms/shared/constant"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// TxFunc is the unit of work executed inside a transaction. It may be called
// more than once when the transaction is retried.
type TxFunc func(tx *sqlx.Tx) error

type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

// WithTransaction borrows a connection from the write pool, runs fn inside a
// transaction and commits. The transaction is rolled back on error or panic.
// Serialization failures and deadlocks restart fn up to the configured limit.
func (c *Connection) WithTransaction(ctx context.Context, fn TxFunc) error {
	attempts := max(c.txMaxRetry, 0) + 1

	var err error

	for attempt := range attempts {
		err = c.runTx(ctx, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Int("max", attempts).Msg("transaction aborted by the database, retrying")

		if ctx.Err() != nil {
			return fmt.Errorf("transaction cancelled: %w", ctx.Err())
		}
	}

	return fmt.Errorf("transaction retries exhausted: %w", err)
}

func (c *Connection) runTx(ctx context.Context, fn TxFunc) (err error) {
	tx, err := c.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: c.txIsolation})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction after panic")
			}

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsRetryable reports whether err is a serialization failure or a deadlock.
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	code := string(pqErr.Code)

	return code == constant.PqErrorCodeSerializationFailure || code == constant.PqErrorCodeDeadlockDetected
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

func ParseIsolation(level string) sql.IsolationLevel {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(level), "_", " ")) {
	case "serializable":
		return sql.LevelSerializable
	case "repeatable read":
		return sql.LevelRepeatableRead
	case "read committed":
		return sql.LevelReadCommitted
	default:
		return sql.LevelDefault
	}
}
