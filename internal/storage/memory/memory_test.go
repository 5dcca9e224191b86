package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestNew_SeedsSystemCategories(t *testing.T) {
	b := New()

	categories, err := b.Read().Categories.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, categories, len(SystemCategories))
	for _, c := range categories {
		assert.True(t, c.IsSystem())
	}
}

func TestWrite_CommitPublishesChanges(t *testing.T) {
	ctx := context.Background()
	b := New()
	owner := int64(7)

	w, err := b.Write(ctx)
	require.NoError(t, err)
	created, err := w.Categories.Insert(ctx, &category.CategoryCreate{OwnerID: &owner, Name: "Books", Kind: category.KindExpense})
	require.NoError(t, err)

	found, err := b.Read().Categories.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "uncommitted rows must not be visible to readers")

	require.NoError(t, w.Commit())

	found, err = b.Read().Categories.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Books", found.Name)
	assert.True(t, found.OwnedBy(owner))
}

func TestWrite_RollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	b := New()

	w, err := b.Write(ctx)
	require.NoError(t, err)
	created, err := w.Transactions.Insert(ctx, &transaction.TransactionCreate{
		OwnerID: 1, CategoryID: 5, Amount: decimal.NewFromInt(10), Date: day("2025-01-02"), Kind: category.KindExpense,
	})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	found, err := b.Read().Transactions.FindByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, found)

	// The write lock is released so the next unit of work can start.
	w, err = b.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Rollback())
}

func TestCategoryDelete_RejectsReferencedRows(t *testing.T) {
	ctx := context.Background()
	b := New()
	owner := int64(1)

	w, err := b.Write(ctx)
	require.NoError(t, err)
	defer w.Rollback()

	c, err := w.Categories.Insert(ctx, &category.CategoryCreate{OwnerID: &owner, Name: "Pets", Kind: category.KindExpense})
	require.NoError(t, err)
	_, err = w.Transactions.Insert(ctx, &transaction.TransactionCreate{
		OwnerID: owner, CategoryID: c.ID, Amount: decimal.NewFromInt(3), Date: day("2025-01-02"), Kind: category.KindExpense,
	})
	require.NoError(t, err)

	_, err = w.Categories.Delete(ctx, c.ID, owner)
	assert.Error(t, err)

	n, err := w.Transactions.DeleteByCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = w.Categories.Delete(ctx, c.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBudgetFindActive_LowestIDWins(t *testing.T) {
	ctx := context.Background()
	b := New()

	w, err := b.Write(ctx)
	require.NoError(t, err)
	defer w.Rollback()

	first, err := w.Budgets.Insert(ctx, &budget.BudgetCreate{
		OwnerID: 1, CategoryID: 5, Amount: decimal.NewFromInt(100), StartDate: day("2025-01-01"), EndDate: day("2025-01-31"),
	})
	require.NoError(t, err)
	_, err = w.Budgets.Insert(ctx, &budget.BudgetCreate{
		OwnerID: 1, CategoryID: 5, Amount: decimal.NewFromInt(50), StartDate: day("2025-01-10"), EndDate: day("2025-02-10"),
	})
	require.NoError(t, err)

	active, err := w.Budgets.FindActive(ctx, 1, 5, day("2025-01-15"), true)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)
	assert.Equal(t, "Food", active.CategoryName)

	none, err := w.Budgets.FindActive(ctx, 1, 5, day("2025-03-01"), true)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestTransactionSummary(t *testing.T) {
	ctx := context.Background()
	b := New()
	today := day("2025-06-15")

	w, err := b.Write(ctx)
	require.NoError(t, err)
	for _, c := range []transaction.TransactionCreate{
		{OwnerID: 1, CategoryID: 1, Amount: decimal.NewFromInt(1000), Date: day("2025-05-31"), Kind: category.KindIncome},
		{OwnerID: 1, CategoryID: 1, Amount: decimal.NewFromInt(500), Date: day("2025-06-01"), Kind: category.KindIncome},
		{OwnerID: 1, CategoryID: 5, Amount: decimal.NewFromInt(50), Date: day("2025-06-02"), Kind: category.KindExpense},
		{OwnerID: 2, CategoryID: 5, Amount: decimal.NewFromInt(70), Date: day("2025-06-02"), Kind: category.KindExpense},
	} {
		_, err := w.Transactions.Insert(ctx, &c)
		require.NoError(t, err)
	}
	_, err = w.Budgets.Insert(ctx, &budget.BudgetCreate{
		OwnerID: 1, CategoryID: 5, Amount: decimal.NewFromInt(200), StartDate: day("2025-06-01"), EndDate: day("2025-06-30"),
	})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	summary, err := b.Read().Transactions.Summary(ctx, 1, today)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1450).Equal(summary.CurrentBalance))
	assert.True(t, decimal.NewFromInt(500).Equal(summary.MonthlyIncome))
	assert.True(t, decimal.NewFromInt(50).Equal(summary.MonthlyExpense))
	assert.True(t, decimal.NewFromInt(25).Equal(summary.BudgetUsedPercentage))

	months, err := b.Read().Transactions.MonthlyTotals(ctx, 1, day("2025-01-01"))
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "2025-05", months[0].Month)
	assert.Equal(t, "2025-06", months[1].Month)
}

func TestGoalFindFirstIncomplete(t *testing.T) {
	ctx := context.Background()
	b := New()

	w, err := b.Write(ctx)
	require.NoError(t, err)
	defer w.Rollback()

	later, err := w.Goals.Insert(ctx, &goal.GoalCreate{
		OwnerID: 1, Name: "Car", TargetAmount: decimal.NewFromInt(100), TargetDate: day("2026-01-01"),
	})
	require.NoError(t, err)
	_, err = w.Goals.Insert(ctx, &goal.GoalCreate{
		OwnerID: 1, Name: "Done", TargetAmount: decimal.NewFromInt(10), CurrentAmount: decimal.NewFromInt(10),
		TargetDate: day("2025-01-01"), Completed: true,
	})
	require.NoError(t, err)
	sooner, err := w.Goals.Insert(ctx, &goal.GoalCreate{
		OwnerID: 1, Name: "Trip", TargetAmount: decimal.NewFromInt(100), TargetDate: day("2025-07-01"),
	})
	require.NoError(t, err)

	next, err := w.Goals.FindFirstIncomplete(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, sooner.ID, next.ID)

	goals, err := w.Goals.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	assert.Equal(t, sooner.ID, goals[0].ID)
	assert.Equal(t, later.ID, goals[1].ID)
	assert.True(t, goals[2].Completed)
}
