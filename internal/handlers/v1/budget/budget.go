package budget

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID           int64  `json:"id" doc:"Budget id"`
	CategoryID   int64  `json:"categoryId" doc:"Category id"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	Amount       string `json:"amount" doc:"Spending ceiling"`
	StartDate    string `json:"startDate" doc:"First day of the period, YYYY-MM-DD"`
	EndDate      string `json:"endDate" doc:"Last day of the period, YYYY-MM-DD"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

// BudgetUsage is a budget with the expenses recorded in its period.
type BudgetUsage struct {
	Budget
	Actual      string `json:"actual" doc:"Expenses recorded in the period"`
	Remaining   string `json:"remaining" doc:"Amount minus actual, negative when overspent"`
	PercentUsed string `json:"percentUsed" doc:"Actual as a percentage of amount"`
}

func toBudget(b *budget.Budget) Budget {
	return Budget{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Amount:       b.Amount.StringFixed(2),
		StartDate:    common.FormatDate(b.StartDate),
		EndDate:      common.FormatDate(b.EndDate),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func toBudgetUsage(u *budget.BudgetUsage) BudgetUsage {
	return BudgetUsage{
		Budget:      toBudget(u.Budget),
		Actual:      u.Actual.StringFixed(2),
		Remaining:   u.Remaining().StringFixed(2),
		PercentUsed: u.PercentUsed().StringFixed(2),
	}
}

func toBudgetUsages(usages []*budget.BudgetUsage) []BudgetUsage {
	out := make([]BudgetUsage, len(usages))
	for i, u := range usages {
		out[i] = toBudgetUsage(u)
	}
	return out
}

// budgetService is the slice of service.BudgetService the handlers use.
type budgetService interface {
	CreateBudget(ctx context.Context, in service.BudgetInput) (*budget.Budget, error)
	UpdateBudget(ctx context.Context, id, owner int64, update budget.BudgetUpdate) (*budget.Budget, error)
	DeleteBudget(ctx context.Context, id, owner int64) error
	GetBudget(ctx context.Context, id, owner int64) (*budget.BudgetUsage, error)
	ListBudgets(ctx context.Context, owner int64) ([]*budget.BudgetUsage, error)
	BudgetVsActual(ctx context.Context, owner int64) ([]*budget.BudgetUsage, error)
	BudgetPerformance(ctx context.Context, owner int64) (*service.Performance, error)
}
