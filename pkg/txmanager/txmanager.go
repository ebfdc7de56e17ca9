// Package txmanager runs callbacks inside database transactions. The open
// transaction travels through context (see pkg/dbmetrics), so repository
// methods transparently join it.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Long0701/PitchSpot-BookingService/pkg/dbmetrics"
)

// Postgres error codes relevant to transaction handling
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

var (
	// ErrSerializationFailure is returned when Postgres aborts a serializable
	// transaction due to a conflicting concurrent transaction. Callers should
	// treat it as a retryable conflict, not a hard failure.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)

// TransactionManager begins transactions on the wrapped database and executes
// callbacks inside them
type TransactionManager struct {
	db dbmetrics.TxBeginner
}

// NewTransactionManager creates a manager over an instrumented database
func NewTransactionManager(db dbmetrics.TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// NewFromSQLDB creates a manager over a plain *sql.DB (used when metrics are
// disabled)
func NewFromSQLDB(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: &sqlBeginner{db: db}}
}

// Do executes fn inside a transaction with the default isolation level
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable executes fn inside a SERIALIZABLE transaction. Concurrent
// conflicting transactions cause ErrSerializationFailure.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly executes fn inside a read-only transaction
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after error %v: %w", err, rbErr)
		}
		return mapPGError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapPGError(fmt.Errorf("txmanager: commit transaction: %w", err))
	}

	return nil
}

// mapPGError translates Postgres concurrency aborts into ErrSerializationFailure
// while preserving the original error text
func mapPGError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if code := string(pqErr.Code); code == pgSerializationFailure || code == pgDeadlockDetected {
			return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
		}
	}
	return err
}

// sqlBeginner adapts *sql.DB to the dbmetrics.TxBeginner interface
type sqlBeginner struct {
	db *sql.DB
}

func (b *sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}
