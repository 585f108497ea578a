package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrTxConflict marks a transaction that lost the optimistic race even after
// retries. It is retryable: the caller may resubmit the operation as-is.
var ErrTxConflict = errors.New("conflicto de concurrencia, reintente la operación")

const (
	maxTxRetries   = 3
	txRetryBackoff = 25 * time.Millisecond
)

// RunInTx executes fn inside a database transaction, retrying on Postgres
// serialization/deadlock failures (SQLSTATE 40001/40P01) before surfacing
// ErrTxConflict. When db is nil (unit test mode with in-memory repositories)
// fn runs directly with a nil tx.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * txRetryBackoff):
		}
	}
	return fmt.Errorf("%w: %v", ErrTxConflict, err)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally restricted to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
