package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// DeleteCategory removes a category. With Force every transaction, budget and
// goal referencing it is removed first. All deletes share one transaction.
type DeleteCategory struct {
	ID      int64
	OwnerID int64
	Force   bool

	// Removed holds the dependent rows deleted alongside the category.
	Removed category.Dependencies
}

var _ IAction = (*DeleteCategory)(nil)

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedCategory(ctx, writer, d.ID, d.OwnerID, "deleted"); err != nil {
		return err
	}

	deps, err := writer.Categories.Dependencies(ctx, d.ID, d.OwnerID)
	if err != nil {
		return fmt.Errorf("count category dependencies: %w", err)
	}
	if !d.Force && deps.Any() {
		return &apperror.DependencyConflictError{
			TransactionCount: deps.TransactionCount,
			BudgetCount:      deps.BudgetCount,
			GoalCount:        deps.GoalCount,
		}
	}

	if d.Removed.TransactionCount, err = writer.Transactions.DeleteByCategory(ctx, d.ID); err != nil {
		return fmt.Errorf("delete category transactions: %w", err)
	}
	if d.Removed.BudgetCount, err = writer.Budgets.DeleteByCategory(ctx, d.ID); err != nil {
		return fmt.Errorf("delete category budgets: %w", err)
	}
	if d.Removed.GoalCount, err = writer.Goals.DeleteByCategory(ctx, d.ID); err != nil {
		return fmt.Errorf("delete category goals: %w", err)
	}

	affected, err := writer.Categories.Delete(ctx, d.ID, d.OwnerID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete category %d: no rows affected", d.ID)
	}
	return nil
}
