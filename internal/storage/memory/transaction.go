package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type transactionTable struct {
	v   view
	now func() time.Time
}

var _ transaction.ITransactionTable = (*transactionTable)(nil)

func joinTransaction(s *state, t transaction.Transaction) *transaction.Transaction {
	t.CategoryName = s.categoryName(t.CategoryID)
	return &t
}

func (t *transactionTable) FindByID(_ context.Context, id int64, owner int64) (*transaction.Transaction, error) {
	var out *transaction.Transaction
	t.v.read(func(s *state) {
		if tr, ok := s.transactions[id]; ok && tr.OwnerID == owner {
			out = joinTransaction(s, tr)
		}
	})
	return out, nil
}

func (t *transactionTable) Insert(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	var out *transaction.Transaction
	var err error
	t.v.write(func(s *state) {
		if _, ok := s.categories[create.CategoryID]; !ok {
			err = fmt.Errorf("category %d does not exist", create.CategoryID)
			return
		}
		tr := transaction.Transaction{
			ID:          s.newID(),
			OwnerID:     create.OwnerID,
			CategoryID:  create.CategoryID,
			Amount:      money(create.Amount),
			Date:        calendar.DateOnly(create.Date),
			Description: create.Description,
			Kind:        create.Kind,
			CreatedAt:   t.now(),
		}
		s.transactions[tr.ID] = tr
		out = joinTransaction(s, tr)
	})
	return out, err
}

func (t *transactionTable) Update(_ context.Context, id int64, owner int64, update *transaction.TransactionUpdate) (int64, error) {
	var affected int64
	var err error
	t.v.write(func(s *state) {
		tr, ok := s.transactions[id]
		if !ok || tr.OwnerID != owner {
			return
		}
		if _, ok := s.categories[update.CategoryID]; !ok {
			err = fmt.Errorf("category %d does not exist", update.CategoryID)
			return
		}
		tr.CategoryID = update.CategoryID
		tr.Amount = money(update.Amount)
		tr.Date = calendar.DateOnly(update.Date)
		tr.Description = update.Description
		tr.Kind = update.Kind
		s.transactions[id] = tr
		affected = 1
	})
	return affected, err
}

func (t *transactionTable) Delete(_ context.Context, id int64, owner int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		if tr, ok := s.transactions[id]; ok && tr.OwnerID == owner {
			delete(s.transactions, id)
			affected = 1
		}
	})
	return affected, nil
}

func (t *transactionTable) DeleteByCategory(_ context.Context, categoryID int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		for id, tr := range s.transactions {
			if tr.CategoryID == categoryID {
				delete(s.transactions, id)
				affected++
			}
		}
	})
	return affected, nil
}

func (t *transactionTable) SumExpenses(_ context.Context, owner int64, categoryID int64, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	t.v.read(func(s *state) {
		total = s.sumExpenses(owner, categoryID, start, end)
	})
	return total, nil
}

func (t *transactionTable) List(_ context.Context, owner int64, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction
	t.v.read(func(s *state) {
		for _, tr := range s.transactions {
			if tr.OwnerID != owner || !matches(tr, filter) {
				continue
			}
			out = append(out, joinTransaction(s, tr))
		}
	})
	slices.SortFunc(out, func(a, b *transaction.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if filter != nil {
		if filter.Offset > 0 {
			out = out[min(filter.Offset, len(out)):]
		}
		if filter.Limit > 0 && len(out) > filter.Limit+1 {
			out = out[:filter.Limit+1]
		}
	}
	return out, nil
}

func matches(tr transaction.Transaction, filter *transaction.TransactionFilter) bool {
	if filter == nil {
		return true
	}
	if filter.StartDate != nil && tr.Date.Before(calendar.DateOnly(*filter.StartDate)) {
		return false
	}
	if filter.EndDate != nil && tr.Date.After(calendar.DateOnly(*filter.EndDate)) {
		return false
	}
	if filter.CategoryID != nil && tr.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.Kind != nil && tr.Kind != *filter.Kind {
		return false
	}
	return true
}

func (t *transactionTable) Summary(_ context.Context, owner int64, today time.Time) (*transaction.Summary, error) {
	monthStart, monthEnd := calendar.MonthBounds(today)
	out := &transaction.Summary{
		CurrentBalance: decimal.Zero,
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
	}
	t.v.read(func(s *state) {
		for _, tr := range s.transactions {
			if tr.OwnerID != owner {
				continue
			}
			inMonth := calendar.Within(tr.Date, monthStart, monthEnd)
			switch tr.Kind {
			case category.KindIncome:
				out.CurrentBalance = out.CurrentBalance.Add(tr.Amount)
				if inMonth {
					out.MonthlyIncome = out.MonthlyIncome.Add(tr.Amount)
				}
			case category.KindExpense:
				out.CurrentBalance = out.CurrentBalance.Sub(tr.Amount)
				if inMonth {
					out.MonthlyExpense = out.MonthlyExpense.Add(tr.Amount)
				}
			}
		}

		budgeted, spent := decimal.Zero, decimal.Zero
		for _, b := range s.budgets {
			if b.OwnerID != owner || !calendar.Within(today, b.StartDate, b.EndDate) {
				continue
			}
			budgeted = budgeted.Add(b.Amount)
			spent = spent.Add(s.sumExpenses(owner, b.CategoryID, b.StartDate, b.EndDate))
		}
		out.BudgetUsedPercentage = transaction.UsedPercentage(spent, budgeted)
	})
	return out, nil
}

func (t *transactionTable) MonthlyTotals(_ context.Context, owner int64, since time.Time) ([]*transaction.MonthlyTotal, error) {
	byMonth := map[string]*transaction.MonthlyTotal{}
	since = calendar.DateOnly(since)
	t.v.read(func(s *state) {
		for _, tr := range s.transactions {
			if tr.OwnerID != owner || tr.Date.Before(since) {
				continue
			}
			key := tr.Date.Format("2006-01")
			total, ok := byMonth[key]
			if !ok {
				total = &transaction.MonthlyTotal{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
				byMonth[key] = total
			}
			if tr.Kind == category.KindIncome {
				total.Income = total.Income.Add(tr.Amount)
			} else {
				total.Expense = total.Expense.Add(tr.Amount)
			}
		}
	})
	out := make([]*transaction.MonthlyTotal, 0, len(byMonth))
	for _, total := range byMonth {
		out = append(out, total)
	}
	slices.SortFunc(out, func(a, b *transaction.MonthlyTotal) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return out, nil
}

func (t *transactionTable) DailyTotals(_ context.Context, owner int64, start, end time.Time) ([]*transaction.DailyTotal, error) {
	byDay := map[time.Time]*transaction.DailyTotal{}
	t.v.read(func(s *state) {
		for _, tr := range s.transactions {
			if tr.OwnerID != owner || !calendar.Within(tr.Date, start, end) {
				continue
			}
			total, ok := byDay[tr.Date]
			if !ok {
				total = &transaction.DailyTotal{Date: tr.Date, Income: decimal.Zero, Expense: decimal.Zero}
				byDay[tr.Date] = total
			}
			if tr.Kind == category.KindIncome {
				total.Income = total.Income.Add(tr.Amount)
			} else {
				total.Expense = total.Expense.Add(tr.Amount)
			}
		}
	})
	out := make([]*transaction.DailyTotal, 0, len(byDay))
	for _, total := range byDay {
		out = append(out, total)
	}
	slices.SortFunc(out, func(a, b *transaction.DailyTotal) int {
		return a.Date.Compare(b.Date)
	})
	return out, nil
}

func (t *transactionTable) SpendingByCategory(_ context.Context, owner int64, start, end time.Time) ([]*transaction.CategorySpend, error) {
	byCategory := map[int64]*transaction.CategorySpend{}
	t.v.read(func(s *state) {
		for _, tr := range s.transactions {
			if tr.OwnerID != owner || tr.Kind != category.KindExpense || !calendar.Within(tr.Date, start, end) {
				continue
			}
			spend, ok := byCategory[tr.CategoryID]
			if !ok {
				spend = &transaction.CategorySpend{
					CategoryID:   tr.CategoryID,
					CategoryName: s.categoryName(tr.CategoryID),
					Amount:       decimal.Zero,
				}
				byCategory[tr.CategoryID] = spend
			}
			spend.Amount = spend.Amount.Add(tr.Amount)
		}
	})
	out := make([]*transaction.CategorySpend, 0, len(byCategory))
	for _, spend := range byCategory {
		out = append(out, spend)
	}
	slices.SortFunc(out, func(a, b *transaction.CategorySpend) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.CategoryID, b.CategoryID)
	})
	return out, nil
}
