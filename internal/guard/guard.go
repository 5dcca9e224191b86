// Package guard enforces budget ceilings on expenses and keeps budget
// amounts above what was already spent in their period.
package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

const savepointName = "budget_check"

// BudgetGuard reads budgets and spend through the caller's open Writer so the
// check and the write that follows it share one database transaction.
type BudgetGuard struct {
	// FailOpen admits the expense when the budget cannot be read.
	FailOpen bool
	Clock    calendar.Clock
	Logger   *logrus.Logger
}

func NewBudgetGuard(failOpen bool, clock calendar.Clock, logger *logrus.Logger) *BudgetGuard {
	return &BudgetGuard{
		FailOpen: failOpen,
		Clock:    clock,
		Logger:   logger,
	}
}

// AmountCheck is the outcome of ValidateBudgetAmount.
type AmountCheck struct {
	IsValid    bool
	Proposed   decimal.Decimal
	TotalSpent decimal.Decimal
	// Deficit is TotalSpent minus Proposed. It is positive only when the check failed.
	Deficit decimal.Decimal
}

// Err returns the InsufficientBudgetError for a failed check, nil otherwise.
func (c *AmountCheck) Err() error {
	if c.IsValid {
		return nil
	}
	return &apperror.InsufficientBudgetError{
		Amount:     c.Proposed,
		TotalSpent: c.TotalSpent,
		Deficit:    c.Deficit,
	}
}

// LimitCheck is the outcome of CheckBudgetLimit.
type LimitCheck struct {
	WithinLimit  bool
	Budget       decimal.Decimal
	CurrentUsage decimal.Decimal
	NewUsage     decimal.Decimal
	Remaining    decimal.Decimal
	CategoryName string
	// Err is the read failure that was ignored when the guard failed open.
	Err error
}

// ExceededErr returns the BudgetExceededError for a failed check, nil otherwise.
func (c *LimitCheck) ExceededErr() error {
	if c.WithinLimit {
		return nil
	}
	return &apperror.BudgetExceededError{
		Budget:       c.Budget,
		CurrentUsage: c.CurrentUsage,
		Remaining:    c.Remaining,
		CategoryName: c.CategoryName,
	}
}

// ValidateBudgetAmount compares a proposed budget amount with the expenses
// already recorded for (owner, category) in [start, end].
func (g *BudgetGuard) ValidateBudgetAmount(ctx context.Context, w *storage.Writer, owner, categoryID int64, proposed decimal.Decimal, start, end time.Time) (*AmountCheck, error) {
	spent, err := w.Transactions.SumExpenses(ctx, owner, categoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	return &AmountCheck{
		IsValid:    spent.LessThanOrEqual(proposed),
		Proposed:   proposed,
		TotalSpent: spent,
		Deficit:    spent.Sub(proposed),
	}, nil
}

// CheckBudgetLimit reports whether adding increment to the expenses of the
// budget active today for (owner, category) keeps them within its amount.
// Income and categories without an active budget are always within limit.
// The active budget row is locked until the surrounding transaction ends.
func (g *BudgetGuard) CheckBudgetLimit(ctx context.Context, w *storage.Writer, owner, categoryID int64, increment decimal.Decimal, kind category.Kind) (*LimitCheck, error) {
	if kind != category.KindExpense {
		return &LimitCheck{WithinLimit: true}, nil
	}
	return g.checkActive(ctx, w, owner, categoryID, increment, func(*budget.Budget) decimal.Decimal {
		return increment
	})
}

// CheckReplacementLimit checks an edit that turns old into an expense of amount
// in categoryID. Only the part of amount the active budget does not already
// count is charged, and an edit that charges nothing is always within limit.
func (g *BudgetGuard) CheckReplacementLimit(ctx context.Context, w *storage.Writer, owner, categoryID int64, amount decimal.Decimal, kind category.Kind, old *transaction.Transaction) (*LimitCheck, error) {
	if kind != category.KindExpense {
		return &LimitCheck{WithinLimit: true}, nil
	}
	return g.checkActive(ctx, w, owner, categoryID, amount, func(active *budget.Budget) decimal.Decimal {
		return amount.Sub(CountedAmount(old, active))
	})
}

// CountedAmount is how much of old the usage of active already includes: its
// amount when it is an expense of the same owner and category dated inside the
// budget period, zero otherwise.
func CountedAmount(old *transaction.Transaction, active *budget.Budget) decimal.Decimal {
	if old == nil || old.Kind != category.KindExpense {
		return decimal.Zero
	}
	if old.OwnerID != active.OwnerID || old.CategoryID != active.CategoryID {
		return decimal.Zero
	}
	if !calendar.Within(old.Date, active.StartDate, active.EndDate) {
		return decimal.Zero
	}
	return old.Amount
}

func (g *BudgetGuard) checkActive(ctx context.Context, w *storage.Writer, owner, categoryID int64, amount decimal.Decimal, incrementFor func(active *budget.Budget) decimal.Decimal) (*LimitCheck, error) {
	today := g.Clock.Today()
	var check *LimitCheck
	err := w.WithSavepoint(ctx, savepointName, func() error {
		active, err := w.Budgets.FindActive(ctx, owner, categoryID, today, true)
		if err != nil {
			return fmt.Errorf("find active budget: %w", err)
		}
		if active == nil {
			check = &LimitCheck{WithinLimit: true}
			return nil
		}

		usage, err := w.Transactions.SumExpenses(ctx, owner, categoryID, active.StartDate, active.EndDate)
		if err != nil {
			return fmt.Errorf("sum expenses: %w", err)
		}

		increment := incrementFor(active)
		newUsage := usage.Add(increment)
		check = &LimitCheck{
			WithinLimit:  !increment.IsPositive() || newUsage.LessThanOrEqual(active.Amount),
			Budget:       active.Amount,
			CurrentUsage: usage,
			NewUsage:     newUsage,
			Remaining:    active.Amount.Sub(usage),
			CategoryName: active.CategoryName,
		}
		return nil
	})
	if err != nil {
		if !g.FailOpen {
			return nil, err
		}
		g.logger().WithError(err).WithFields(logrus.Fields{
			"ownerID":    owner,
			"categoryID": categoryID,
			"amount":     amount.String(),
		}).Warn("BudgetGuard.CheckBudgetLimit.FailOpen")
		return &LimitCheck{WithinLimit: true, Err: err}, nil
	}
	return check, nil
}

func (g *BudgetGuard) logger() *logrus.Logger {
	if g.Logger == nil {
		return logrus.StandardLogger()
	}
	return g.Logger
}
