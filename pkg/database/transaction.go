// Package database provides the unit-of-work used by the service layer.
// A service opens one transaction per operation; every repository call made
// with the resulting context runs on that transaction, so an operation
// either commits all of its reads/writes or none of them.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
// Repositories issue all statements through it, which lets the same
// repository run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxFunc is executed inside a transaction. The context it receives carries
// the open transaction; pass it to every repository call.
type TxFunc func(ctx context.Context) error

// TxManager runs a function inside a single database transaction.
// Services depend on this interface so tests can substitute a no-op
// implementation and exercise business logic without a live database.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type txKey struct{}

// PgxTxManager is the pgx-backed TxManager.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithinTx begins a transaction, stores it on the context and invokes fn.
// Rollback happens on error or panic, commit otherwise.
func (m *PgxTxManager) WithinTx(ctx context.Context, fn TxFunc) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// QuerierFrom returns the transaction bound to ctx when one is open,
// falling back to the pool for standalone statements.
func QuerierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
