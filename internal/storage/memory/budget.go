package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

type budgetTable struct {
	v   view
	now func() time.Time
}

var _ budget.IBudgetTable = (*budgetTable)(nil)

func joinBudget(s *state, b budget.Budget) *budget.Budget {
	b.CategoryName = s.categoryName(b.CategoryID)
	return &b
}

func (t *budgetTable) FindByID(_ context.Context, id int64, owner int64, _ bool) (*budget.Budget, error) {
	var out *budget.Budget
	t.v.read(func(s *state) {
		if b, ok := s.budgets[id]; ok && b.OwnerID == owner {
			out = joinBudget(s, b)
		}
	})
	return out, nil
}

func (t *budgetTable) FindActive(_ context.Context, owner int64, categoryID int64, day time.Time, _ bool) (*budget.Budget, error) {
	var out *budget.Budget
	t.v.read(func(s *state) {
		for _, b := range s.budgets {
			if b.OwnerID != owner || b.CategoryID != categoryID || !calendar.Within(day, b.StartDate, b.EndDate) {
				continue
			}
			if out == nil || b.ID < out.ID {
				out = joinBudget(s, b)
			}
		}
	})
	return out, nil
}

func (t *budgetTable) Insert(_ context.Context, create *budget.BudgetCreate) (*budget.Budget, error) {
	var out *budget.Budget
	var err error
	t.v.write(func(s *state) {
		if _, ok := s.categories[create.CategoryID]; !ok {
			err = fmt.Errorf("category %d does not exist", create.CategoryID)
			return
		}
		b := budget.Budget{
			ID:         s.newID(),
			OwnerID:    create.OwnerID,
			CategoryID: create.CategoryID,
			Amount:     money(create.Amount),
			StartDate:  calendar.DateOnly(create.StartDate),
			EndDate:    calendar.DateOnly(create.EndDate),
			CreatedAt:  t.now(),
		}
		s.budgets[b.ID] = b
		out = joinBudget(s, b)
	})
	return out, err
}

func (t *budgetTable) Update(_ context.Context, id int64, owner int64, amount decimal.Decimal, start, end time.Time) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		b, ok := s.budgets[id]
		if !ok || b.OwnerID != owner {
			return
		}
		b.Amount = money(amount)
		b.StartDate = calendar.DateOnly(start)
		b.EndDate = calendar.DateOnly(end)
		s.budgets[id] = b
		affected = 1
	})
	return affected, nil
}

func (t *budgetTable) Delete(_ context.Context, id int64, owner int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		if b, ok := s.budgets[id]; ok && b.OwnerID == owner {
			delete(s.budgets, id)
			affected = 1
		}
	})
	return affected, nil
}

func (t *budgetTable) DeleteByCategory(_ context.Context, categoryID int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		for id, b := range s.budgets {
			if b.CategoryID == categoryID {
				delete(s.budgets, id)
				affected++
			}
		}
	})
	return affected, nil
}

func (t *budgetTable) List(_ context.Context, owner int64) ([]*budget.BudgetUsage, error) {
	out := t.usages(owner, func(budget.Budget) bool { return true })
	slices.SortFunc(out, func(a, b *budget.BudgetUsage) int {
		if c := b.Budget.StartDate.Compare(a.Budget.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(b.Budget.ID, a.Budget.ID)
	})
	return out, nil
}

func (t *budgetTable) ListActive(_ context.Context, owner int64, day time.Time) ([]*budget.BudgetUsage, error) {
	out := t.usages(owner, func(b budget.Budget) bool {
		return calendar.Within(day, b.StartDate, b.EndDate)
	})
	slices.SortFunc(out, func(a, b *budget.BudgetUsage) int {
		if c := strings.Compare(a.Budget.CategoryName, b.Budget.CategoryName); c != 0 {
			return c
		}
		return cmp.Compare(a.Budget.ID, b.Budget.ID)
	})
	return out, nil
}

func (t *budgetTable) usages(owner int64, keep func(budget.Budget) bool) []*budget.BudgetUsage {
	var out []*budget.BudgetUsage
	t.v.read(func(s *state) {
		for _, b := range s.budgets {
			if b.OwnerID != owner || !keep(b) {
				continue
			}
			out = append(out, &budget.BudgetUsage{
				Budget: joinBudget(s, b),
				Actual: s.sumExpenses(owner, b.CategoryID, b.StartDate, b.EndDate),
			})
		}
	})
	return out
}
