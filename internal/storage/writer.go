package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Tx is the transaction a Writer finishes.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Writer exposes the tables bound to one open transaction.
type Writer struct {
	tx Tx
	Tables
}

func NewWriter(tx Tx, tables Tables) *Writer {
	return &Writer{
		tx:     tx,
		Tables: tables,
	}
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}

// WithSavepoint runs fn inside a savepoint. When fn fails the transaction is
// rolled back to the savepoint and stays usable. Transactions that cannot
// issue SQL run fn directly.
func (w *Writer) WithSavepoint(ctx context.Context, name string, fn func() error) error {
	exec, ok := w.tx.(execer)
	if !ok {
		return fn()
	}
	if _, err := exec.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}
	if err := fn(); err != nil {
		if _, rbErr := exec.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return fmt.Errorf("rollback to savepoint %s: %w", name, rbErr)
		}
		return err
	}
	if _, err := exec.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint %s: %w", name, err)
	}
	return nil
}
