package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txRunner struct {
	db *pgxpool.Pool
}

// NewTxRunner creates the transaction runner backing the upsert workflow
func NewTxRunner(db *pgxpool.Pool) domain.TxRunner {
	return &txRunner{db: db}
}

// InTx acquires one pooled connection, runs fn inside a transaction and
// commits on success or rolls back on error. The deferred Release returns
// the connection to the pool on every exit path, even when rollback fails.
func (r *txRunner) InTx(ctx context.Context, fn func(domain.UpsertStore) error) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return &domain.ConnectionError{Err: err}
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&upsertStore{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Log.Error("rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
