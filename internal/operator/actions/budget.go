package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

type CreateBudget struct {
	OwnerID    int64
	CategoryID int64
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Guard      *guard.BudgetGuard

	Result *budget.Budget
}

var _ IAction = (*CreateBudget)(nil)

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateBudget(c.Amount, c.StartDate, c.EndDate); err != nil {
		return err
	}
	if _, err := visibleCategory(ctx, writer, c.CategoryID, c.OwnerID); err != nil {
		return err
	}

	check, err := c.Guard.ValidateBudgetAmount(ctx, writer, c.OwnerID, c.CategoryID, c.Amount, c.StartDate, c.EndDate)
	if err != nil {
		return fmt.Errorf("validate budget amount: %w", err)
	}
	if err := check.Err(); err != nil {
		return err
	}

	created, err := writer.Budgets.Insert(ctx, &budget.BudgetCreate{
		OwnerID:    c.OwnerID,
		CategoryID: c.CategoryID,
		Amount:     c.Amount,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
	})
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}

	c.Result = created
	return nil
}

// UpdateBudget applies a partial update. The merged amount and range are
// validated against the spend already recorded for the budget's category.
type UpdateBudget struct {
	ID      int64
	OwnerID int64
	Update  budget.BudgetUpdate
	Guard   *guard.BudgetGuard

	Result *budget.Budget
}

var _ IAction = (*UpdateBudget)(nil)

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budgets.FindByID(ctx, u.ID, u.OwnerID, true)
	if err != nil {
		return fmt.Errorf("find budget: %w", err)
	}
	if existing == nil {
		return apperror.NotFound("budget")
	}

	amount, start, end := u.Update.Merge(existing)
	if err := validateBudget(amount, start, end); err != nil {
		return err
	}

	check, err := u.Guard.ValidateBudgetAmount(ctx, writer, u.OwnerID, existing.CategoryID, amount, start, end)
	if err != nil {
		return fmt.Errorf("validate budget amount: %w", err)
	}
	if err := check.Err(); err != nil {
		return err
	}

	affected, err := writer.Budgets.Update(ctx, u.ID, u.OwnerID, amount, start, end)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("budget")
	}

	existing.Amount = amount
	existing.StartDate = start
	existing.EndDate = end
	u.Result = existing
	return nil
}

type DeleteBudget struct {
	ID      int64
	OwnerID int64
}

var _ IAction = (*DeleteBudget)(nil)

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Budgets.Delete(ctx, d.ID, d.OwnerID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("budget")
	}
	return nil
}

func validateBudget(amount decimal.Decimal, start, end time.Time) error {
	if err := requirePositive("amount", amount); err != nil {
		return err
	}
	if start.IsZero() {
		return apperror.Validation("startDate", "is required")
	}
	if end.IsZero() {
		return apperror.Validation("endDate", "is required")
	}
	if start.After(end) {
		return apperror.Validation("endDate", "must not be before startDate")
	}
	return nil
}
