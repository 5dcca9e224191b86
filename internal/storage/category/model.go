package category

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Kind classifies categories and transactions as money in or money out.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// ParseKind normalizes s to a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindIncome, KindExpense:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// Category represents a category record. OwnerID is nil for system categories.
type Category struct {
	ID        int64
	OwnerID   *int64
	Name      string
	Kind      Kind
	CreatedAt time.Time
}

// IsSystem reports whether the category is shared and read-only.
func (c *Category) IsSystem() bool {
	return c.OwnerID == nil
}

// OwnedBy reports whether owner exclusively controls the category.
func (c *Category) OwnedBy(owner int64) bool {
	return c.OwnerID != nil && *c.OwnerID == owner
}

// VisibleTo reports whether owner may reference the category.
func (c *Category) VisibleTo(owner int64) bool {
	return c.IsSystem() || c.OwnedBy(owner)
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	OwnerID *int64
	Name    string
	Kind    Kind
}

// Dependencies counts the rows that reference a category.
type Dependencies struct {
	TransactionCount int64
	BudgetCount      int64
	GoalCount        int64
}

// Any reports whether at least one row references the category.
func (d Dependencies) Any() bool {
	return d.TransactionCount > 0 || d.BudgetCount > 0 || d.GoalCount > 0
}

// ICategoryTable defines the interface for category storage operations.
// Finders return nil, nil when no row matches.
type ICategoryTable interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindVisible(ctx context.Context, id int64, owner int64) (*Category, error)
	List(ctx context.Context, owner int64) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id int64, owner int64, name string, kind Kind) (int64, error)
	Delete(ctx context.Context, id int64, owner int64) (int64, error)
	Dependencies(ctx context.Context, id int64, owner int64) (*Dependencies, error)
}

type categoryRow struct {
	ID        int64         `db:"id"`
	OwnerID   sql.NullInt64 `db:"owner_id"`
	Name      string        `db:"name"`
	Kind      string        `db:"kind"`
	CreatedAt time.Time     `db:"created_at"`
}

func rowToCategory(row categoryRow) *Category {
	c := &Category{
		ID:        row.ID,
		Name:      row.Name,
		Kind:      Kind(row.Kind),
		CreatedAt: row.CreatedAt,
	}
	if row.OwnerID.Valid {
		owner := row.OwnerID.Int64
		c.OwnerID = &owner
	}
	return c
}
