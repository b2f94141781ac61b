package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// IsSerializationFailure reports whether err is a PostgreSQL serialization
// failure or deadlock, the two conditions worth a transparent retry.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

// WithTxRetry executes fn within a transaction, retrying once if the store
// cannot serialize it. All other errors are returned immediately.
func WithTxRetry[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var result T

	op := func() error {
		r, err := WithTx(ctx, db, fn)
		if err != nil {
			if IsSerializationFailure(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = r
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1),
		ctx,
	)

	if err := backoff.Retry(op, policy); err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
