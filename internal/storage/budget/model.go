package budget

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category over an inclusive date range.
type Budget struct {
	ID           int64
	OwnerID      int64
	CategoryID   int64
	CategoryName string
	Amount       decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	OwnerID    int64
	CategoryID int64
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetUpdate holds the fields a caller wants to change. Unset fields keep their stored value.
type BudgetUpdate struct {
	Amount    omit.Val[decimal.Decimal]
	StartDate omit.Val[time.Time]
	EndDate   omit.Val[time.Time]
}

// Merge returns the values b would have after applying the update.
func (u *BudgetUpdate) Merge(b *Budget) (amount decimal.Decimal, start, end time.Time) {
	return u.Amount.GetOr(b.Amount), u.StartDate.GetOr(b.StartDate), u.EndDate.GetOr(b.EndDate)
}

// BudgetUsage pairs a budget with the expenses recorded in its period.
type BudgetUsage struct {
	Budget *Budget
	Actual decimal.Decimal
}

// Remaining is the budget amount minus actual spend. Negative when overspent.
func (u *BudgetUsage) Remaining() decimal.Decimal {
	return u.Budget.Amount.Sub(u.Actual)
}

// PercentUsed is actual spend as a percentage of the budget, rounded to two places.
func (u *BudgetUsage) PercentUsed() decimal.Decimal {
	if !u.Budget.Amount.IsPositive() {
		return decimal.Zero
	}
	return u.Actual.Div(u.Budget.Amount).Mul(decimal.NewFromInt(100)).Round(2)
}

// IBudgetTable defines the interface for budget storage operations.
// Finders return nil, nil when no row matches.
type IBudgetTable interface {
	FindByID(ctx context.Context, id int64, owner int64, forUpdate bool) (*Budget, error)
	// FindActive returns the budget for (owner, category) whose range covers day.
	// When several overlap the one with the lowest id wins.
	FindActive(ctx context.Context, owner int64, categoryID int64, day time.Time, forUpdate bool) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, id int64, owner int64, amount decimal.Decimal, start, end time.Time) (int64, error)
	Delete(ctx context.Context, id int64, owner int64) (int64, error)
	DeleteByCategory(ctx context.Context, categoryID int64) (int64, error)
	List(ctx context.Context, owner int64) ([]*BudgetUsage, error)
	ListActive(ctx context.Context, owner int64, day time.Time) ([]*BudgetUsage, error)
}

type budgetRow struct {
	ID           int64           `db:"id"`
	OwnerID      int64           `db:"owner_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	CreatedAt    time.Time       `db:"created_at"`
}

type usageRow struct {
	ID           int64           `db:"id"`
	OwnerID      int64           `db:"owner_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	CreatedAt    time.Time       `db:"created_at"`
	Actual       decimal.Decimal `db:"actual"`
}

func rowToBudget(row budgetRow) *Budget {
	return &Budget{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		StartDate:    row.StartDate.UTC(),
		EndDate:      row.EndDate.UTC(),
		CreatedAt:    row.CreatedAt,
	}
}

func rowToUsage(row usageRow) *BudgetUsage {
	return &BudgetUsage{
		Budget: rowToBudget(budgetRow{
			ID:           row.ID,
			OwnerID:      row.OwnerID,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			CreatedAt:    row.CreatedAt,
		}),
		Actual: row.Actual,
	}
}
