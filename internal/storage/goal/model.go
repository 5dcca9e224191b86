package goal

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"
)

// Goal is a savings target. CategoryID optionally links the goal to a category.
type Goal struct {
	ID            int64
	OwnerID       int64
	CategoryID    *int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	TargetDate    time.Time
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Recompute derives Completed from the amounts and reports whether the goal
// moved from incomplete to complete.
func (g *Goal) Recompute() (newlyCompleted bool) {
	was := g.Completed
	g.Completed = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	return g.Completed && !was
}

// PercentComplete is current over target as a whole percentage. It is not capped at 100.
func (g *Goal) PercentComplete() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0)
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	OwnerID       int64
	CategoryID    *int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	TargetDate    time.Time
	Completed     bool
}

// GoalUpdate holds the fields a caller wants to change. A null CategoryID
// unlinks the goal from its category.
type GoalUpdate struct {
	Name          omit.Val[string]
	TargetAmount  omit.Val[decimal.Decimal]
	CurrentAmount omit.Val[decimal.Decimal]
	StartDate     omit.Val[time.Time]
	TargetDate    omit.Val[time.Time]
	CategoryID    omitnull.Val[int64]
}

// Apply copies every set field onto g. Completed is not touched; call Recompute afterwards.
func (u *GoalUpdate) Apply(g *Goal) {
	g.Name = u.Name.GetOr(g.Name)
	g.TargetAmount = u.TargetAmount.GetOr(g.TargetAmount)
	g.CurrentAmount = u.CurrentAmount.GetOr(g.CurrentAmount)
	g.StartDate = u.StartDate.GetOr(g.StartDate)
	g.TargetDate = u.TargetDate.GetOr(g.TargetDate)
	if !u.CategoryID.IsUnset() {
		g.CategoryID = u.CategoryID.MustPtr()
	}
}

// IGoalTable defines the interface for goal storage operations.
// Finders return nil, nil when no row matches.
type IGoalTable interface {
	// FindByID is not owner scoped so callers can tell a foreign goal from a missing one.
	FindByID(ctx context.Context, id int64, forUpdate bool) (*Goal, error)
	// FindFirstIncomplete locks the incomplete goal with the earliest target date, lowest id first.
	FindFirstIncomplete(ctx context.Context, owner int64) (*Goal, error)
	Insert(ctx context.Context, create *GoalCreate) (*Goal, error)
	Save(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByCategory(ctx context.Context, categoryID int64) (int64, error)
	List(ctx context.Context, owner int64) ([]*Goal, error)
}

type goalRow struct {
	ID            int64           `db:"id"`
	OwnerID       int64           `db:"owner_id"`
	CategoryID    sql.NullInt64   `db:"category_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	StartDate     time.Time       `db:"start_date"`
	TargetDate    time.Time       `db:"target_date"`
	Completed     bool            `db:"completed"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func rowToGoal(row goalRow) *Goal {
	g := &Goal{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		StartDate:     row.StartDate.UTC(),
		TargetDate:    row.TargetDate.UTC(),
		Completed:     row.Completed,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.CategoryID.Valid {
		id := row.CategoryID.Int64
		g.CategoryID = &id
	}
	return g
}

func nullable(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
