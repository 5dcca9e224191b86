package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Backend opens units of work against a store.
type Backend interface {
	// Write begins a database transaction. The caller must Commit or Rollback the Writer.
	Write(ctx context.Context) (*Writer, error)
	Read() *Reader
	Close() error
}

// Storage is the Postgres backend.
type Storage struct {
	DB  *sql.DB
	bob bob.DB
}

var _ Backend = (*Storage)(nil)

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened connection pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{
		DB:  db,
		bob: bob.NewDB(db),
	}
}

func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bob.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(&tx, tablesOver(tx)), nil
}

func (s *Storage) Read() *Reader {
	return NewReader(tablesOver(s.bob))
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func tablesOver(exec bob.Executor) Tables {
	return Tables{
		Categories:   category.NewTable(exec),
		Budgets:      budget.NewTable(exec),
		Transactions: transaction.NewTable(exec),
		Goals:        goal.NewTable(exec),
	}
}

// PingContext checks that the database is reachable.
func (s *Storage) PingContext(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
