package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// BudgetInput carries the fields of a new budget.
type BudgetInput struct {
	OwnerID    int64
	CategoryID int64
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetService handles budget business logic.
type BudgetService struct {
	storage   storage.Backend
	processor Processor
	guard     *guard.BudgetGuard
	clock     calendar.Clock
}

func NewBudgetService(store storage.Backend, processor Processor, budgetGuard *guard.BudgetGuard, clock calendar.Clock) *BudgetService {
	return &BudgetService{storage: store, processor: processor, guard: budgetGuard, clock: clock}
}

// CreateBudget creates a budget whose amount covers what was already spent in its range.
func (s *BudgetService) CreateBudget(ctx context.Context, in BudgetInput) (*budget.Budget, error) {
	action := &actions.CreateBudget{
		OwnerID:    in.OwnerID,
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Guard:      s.guard,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id, owner int64, update budget.BudgetUpdate) (*budget.Budget, error) {
	action := &actions.UpdateBudget{ID: id, OwnerID: owner, Update: update, Guard: s.guard}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id, owner int64) error {
	return s.processor.Process(ctx, &actions.DeleteBudget{ID: id, OwnerID: owner})
}

// GetBudget returns a budget with the expenses recorded in its range.
func (s *BudgetService) GetBudget(ctx context.Context, id, owner int64) (*budget.BudgetUsage, error) {
	reader := s.storage.Read()
	b, err := reader.Budgets.FindByID(ctx, id, owner, false)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound("budget")
	}
	actual, err := reader.Transactions.SumExpenses(ctx, owner, b.CategoryID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return &budget.BudgetUsage{Budget: b, Actual: actual}, nil
}

// ListBudgets returns every budget of owner with its actual spend, newest period first.
func (s *BudgetService) ListBudgets(ctx context.Context, owner int64) ([]*budget.BudgetUsage, error) {
	return s.storage.Read().Budgets.List(ctx, owner)
}

// BudgetVsActual compares the budgets active today with their spend.
func (s *BudgetService) BudgetVsActual(ctx context.Context, owner int64) ([]*budget.BudgetUsage, error) {
	return s.storage.Read().Budgets.ListActive(ctx, owner, s.clock.Today())
}

// BudgetPerformance summarizes every budget of owner.
func (s *BudgetService) BudgetPerformance(ctx context.Context, owner int64) (*Performance, error) {
	usages, err := s.storage.Read().Budgets.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	p := &Performance{
		Budgets:     usages,
		TotalBudget: decimal.Zero,
		TotalActual: decimal.Zero,
	}
	for _, u := range usages {
		p.TotalBudget = p.TotalBudget.Add(u.Budget.Amount)
		p.TotalActual = p.TotalActual.Add(u.Actual)
		if u.Actual.GreaterThan(u.Budget.Amount) {
			p.OverBudgetCount++
		}
	}
	return p, nil
}

// Performance aggregates budgets against their actual spend.
type Performance struct {
	Budgets         []*budget.BudgetUsage
	TotalBudget     decimal.Decimal
	TotalActual     decimal.Decimal
	OverBudgetCount int
}
