// Package memory is an in-process storage backend. A single writer at a time
// works on a private copy of the data which replaces the committed copy on
// Commit, so readers never observe a partial unit of work.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

var errTxDone = errors.New("memory: transaction already finished")

// SystemCategories are seeded into every new Backend, mirroring the SQL migrations.
var SystemCategories = []category.CategoryCreate{
	{Name: "Salary", Kind: category.KindIncome},
	{Name: "Investments", Kind: category.KindIncome},
	{Name: "Other Income", Kind: category.KindIncome},
	{Name: "Housing", Kind: category.KindExpense},
	{Name: "Food", Kind: category.KindExpense},
	{Name: "Transportation", Kind: category.KindExpense},
	{Name: "Utilities", Kind: category.KindExpense},
	{Name: "Entertainment", Kind: category.KindExpense},
	{Name: "Healthcare", Kind: category.KindExpense},
}

type state struct {
	nextID       int64
	categories   map[int64]category.Category
	budgets      map[int64]budget.Budget
	transactions map[int64]transaction.Transaction
	goals        map[int64]goal.Goal
}

func newState() *state {
	return &state{
		categories:   map[int64]category.Category{},
		budgets:      map[int64]budget.Budget{},
		transactions: map[int64]transaction.Transaction{},
		goals:        map[int64]goal.Goal{},
	}
}

func (s *state) clone() *state {
	return &state{
		nextID:       s.nextID,
		categories:   maps.Clone(s.categories),
		budgets:      maps.Clone(s.budgets),
		transactions: maps.Clone(s.transactions),
		goals:        maps.Clone(s.goals),
	}
}

func (s *state) newID() int64 {
	s.nextID++
	return s.nextID
}

func (s *state) categoryName(id int64) string {
	return s.categories[id].Name
}

func (s *state) sumExpenses(owner, categoryID int64, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.transactions {
		if t.OwnerID == owner && t.CategoryID == categoryID && t.Kind == category.KindExpense &&
			calendar.Within(t.Date, start, end) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Backend is the in-memory storage.Backend.
type Backend struct {
	writeMu   sync.Mutex
	mu        sync.RWMutex
	committed *state
	now       func() time.Time
}

var _ storage.Backend = (*Backend)(nil)

// New returns a Backend holding only the system categories.
func New() *Backend {
	b := &Backend{committed: newState(), now: time.Now}
	for _, c := range SystemCategories {
		id := b.committed.newID()
		b.committed.categories[id] = category.Category{ID: id, Name: c.Name, Kind: c.Kind, CreatedAt: b.now()}
	}
	return b
}

// Write blocks until no other unit of work is open.
func (b *Backend) Write(ctx context.Context) (*storage.Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.writeMu.Lock()

	b.mu.RLock()
	work := b.committed.clone()
	b.mu.RUnlock()

	tx := &memTx{backend: b, work: work}
	return storage.NewWriter(tx, b.tables(&txView{s: work})), nil
}

func (b *Backend) Read() *storage.Reader {
	return storage.NewReader(b.tables(&committedView{b: b}))
}

func (b *Backend) Close() error {
	return nil
}

func (b *Backend) tables(v view) storage.Tables {
	return storage.Tables{
		Categories:   &categoryTable{v: v, now: b.now},
		Budgets:      &budgetTable{v: v, now: b.now},
		Transactions: &transactionTable{v: v, now: b.now},
		Goals:        &goalTable{v: v, now: b.now},
	}
}

type memTx struct {
	backend *Backend
	work    *state
	done    bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.backend.mu.Lock()
	t.backend.committed = t.work
	t.backend.mu.Unlock()
	t.backend.writeMu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.backend.writeMu.Unlock()
	return nil
}

type view interface {
	read(fn func(s *state))
	write(fn func(s *state))
}

// txView is owned by the goroutine holding the write lock.
type txView struct {
	s *state
}

func (v *txView) read(fn func(s *state))  { fn(v.s) }
func (v *txView) write(fn func(s *state)) { fn(v.s) }

type committedView struct {
	b *Backend
}

func (v *committedView) read(fn func(s *state)) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()
	fn(v.b.committed)
}

func (v *committedView) write(fn func(s *state)) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()
	fn(v.b.committed)
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
