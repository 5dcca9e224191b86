package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type CreateTransaction struct {
	OwnerID     int64
	CategoryID  int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        category.Kind
	Guard       *guard.BudgetGuard

	Result *transaction.Transaction
	// Check is the budget check that admitted the expense, nil for income.
	Check *guard.LimitCheck
}

var _ IAction = (*CreateTransaction)(nil)

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateTransaction(c.Amount, c.Date, c.Description, c.Kind); err != nil {
		return err
	}
	if _, err := visibleCategory(ctx, writer, c.CategoryID, c.OwnerID); err != nil {
		return err
	}

	if c.Kind == category.KindExpense {
		check, err := c.Guard.CheckBudgetLimit(ctx, writer, c.OwnerID, c.CategoryID, c.Amount, c.Kind)
		if err != nil {
			return fmt.Errorf("check budget limit: %w", err)
		}
		if err := check.ExceededErr(); err != nil {
			return err
		}
		c.Check = check
	}

	created, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		OwnerID:     c.OwnerID,
		CategoryID:  c.CategoryID,
		Amount:      c.Amount,
		Date:        c.Date,
		Description: c.Description,
		Kind:        c.Kind,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	c.Result = created
	return nil
}

// UpdateTransaction replaces a transaction. Expenses are re-checked against the
// active budget for the part of the new amount that budget does not already count.
type UpdateTransaction struct {
	ID          int64
	OwnerID     int64
	CategoryID  int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        category.Kind
	Guard       *guard.BudgetGuard

	Result *transaction.Transaction
	Check  *guard.LimitCheck
}

var _ IAction = (*UpdateTransaction)(nil)

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateTransaction(u.Amount, u.Date, u.Description, u.Kind); err != nil {
		return err
	}

	existing, err := writer.Transactions.FindByID(ctx, u.ID, u.OwnerID)
	if err != nil {
		return fmt.Errorf("find transaction: %w", err)
	}
	if existing == nil {
		return apperror.NotFound("transaction")
	}
	if _, err := visibleCategory(ctx, writer, u.CategoryID, u.OwnerID); err != nil {
		return err
	}

	if u.Kind == category.KindExpense {
		check, err := u.Guard.CheckReplacementLimit(ctx, writer, u.OwnerID, u.CategoryID, u.Amount, u.Kind, existing)
		if err != nil {
			return fmt.Errorf("check budget limit: %w", err)
		}
		if err := check.ExceededErr(); err != nil {
			return err
		}
		u.Check = check
	}

	affected, err := writer.Transactions.Update(ctx, u.ID, u.OwnerID, &transaction.TransactionUpdate{
		CategoryID:  u.CategoryID,
		Amount:      u.Amount,
		Date:        u.Date,
		Description: u.Description,
		Kind:        u.Kind,
	})
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("transaction")
	}

	updated, err := writer.Transactions.FindByID(ctx, u.ID, u.OwnerID)
	if err != nil {
		return fmt.Errorf("reload transaction: %w", err)
	}
	u.Result = updated
	return nil
}

type DeleteTransaction struct {
	ID      int64
	OwnerID int64
}

var _ IAction = (*DeleteTransaction)(nil)

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Transactions.Delete(ctx, d.ID, d.OwnerID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("transaction")
	}
	return nil
}

func validateTransaction(amount decimal.Decimal, date time.Time, description string, kind category.Kind) error {
	if err := requirePositive("amount", amount); err != nil {
		return err
	}
	if err := requireKind(kind); err != nil {
		return err
	}
	if date.IsZero() {
		return apperror.Validation("date", "is required")
	}
	if len(description) > maxDescriptionLength {
		return apperror.Validation("description", "must be at most 255 characters")
	}
	return nil
}
