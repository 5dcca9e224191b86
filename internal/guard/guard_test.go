package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today.Add(10 * time.Hour) }

type fixture struct {
	guard        *BudgetGuard
	writer       *storage.Writer
	budgets      *budget.MockIBudgetTable
	transactions *transaction.MockITransactionTable
	hook         *test.Hook
}

func newFixture(t *testing.T, failOpen bool) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	budgets := budget.NewMockIBudgetTable(t)
	transactions := transaction.NewMockITransactionTable(t)
	return &fixture{
		guard:        NewBudgetGuard(failOpen, fixedClock, logger),
		writer:       storage.NewWriter(nil, storage.Tables{Budgets: budgets, Transactions: transactions}),
		budgets:      budgets,
		transactions: transactions,
		hook:         hook,
	}
}

func juneBudget(amount string) *budget.Budget {
	return &budget.Budget{
		ID:           3,
		OwnerID:      1,
		CategoryID:   5,
		CategoryName: "Food",
		Amount:       decimal.RequireFromString(amount),
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

// -- CheckBudgetLimit tests --

func TestCheckBudgetLimit_IncomeIsAlwaysWithin(t *testing.T) {
	f := newFixture(t, true)

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.NewFromInt(1_000_000), category.KindIncome)

	require.NoError(t, err)
	assert.True(t, check.WithinLimit)
	assert.NoError(t, check.ExceededErr())
}

func TestCheckBudgetLimit_NoActiveBudget(t *testing.T) {
	f := newFixture(t, true)

	f.budgets.EXPECT().FindActive(mock.Anything, int64(1), int64(5), today, true).Return(nil, nil)

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.NewFromInt(999), category.KindExpense)

	require.NoError(t, err)
	assert.True(t, check.WithinLimit)
	assert.Nil(t, check.Err)
}

func TestCheckBudgetLimit_Within(t *testing.T) {
	f := newFixture(t, true)
	b := juneBudget("100")

	f.budgets.EXPECT().FindActive(mock.Anything, int64(1), int64(5), today, true).Return(b, nil)
	f.transactions.EXPECT().SumExpenses(mock.Anything, int64(1), int64(5), b.StartDate, b.EndDate).
		Return(decimal.RequireFromString("60"), nil)

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.RequireFromString("40"), category.KindExpense)

	require.NoError(t, err)
	assert.True(t, check.WithinLimit, "reaching the ceiling exactly is allowed")
	assert.True(t, decimal.RequireFromString("100").Equal(check.NewUsage))
	assert.True(t, decimal.RequireFromString("40").Equal(check.Remaining))
}

func TestCheckBudgetLimit_Exceeded(t *testing.T) {
	f := newFixture(t, true)
	b := juneBudget("100")

	f.budgets.EXPECT().FindActive(mock.Anything, int64(1), int64(5), today, true).Return(b, nil)
	f.transactions.EXPECT().SumExpenses(mock.Anything, int64(1), int64(5), b.StartDate, b.EndDate).
		Return(decimal.RequireFromString("60"), nil)

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.RequireFromString("40.01"), category.KindExpense)

	require.NoError(t, err)
	assert.False(t, check.WithinLimit)

	var exceeded *apperror.BudgetExceededError
	require.ErrorAs(t, check.ExceededErr(), &exceeded)
	assert.Equal(t, "Food", exceeded.CategoryName)
	assert.True(t, decimal.RequireFromString("100").Equal(exceeded.Budget))
	assert.True(t, decimal.RequireFromString("60").Equal(exceeded.CurrentUsage))
	assert.True(t, decimal.RequireFromString("40").Equal(exceeded.Remaining))
}

func TestCheckBudgetLimit_FailOpenOnReadError(t *testing.T) {
	f := newFixture(t, true)

	f.budgets.EXPECT().FindActive(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).
		Return(nil, errors.New("connection reset"))

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.NewFromInt(10), category.KindExpense)

	require.NoError(t, err)
	assert.True(t, check.WithinLimit)
	assert.ErrorContains(t, check.Err, "connection reset")

	require.NotNil(t, f.hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, f.hook.LastEntry().Level)
	assert.Equal(t, "BudgetGuard.CheckBudgetLimit.FailOpen", f.hook.LastEntry().Message)
}

func TestCheckBudgetLimit_FailClosedOnReadError(t *testing.T) {
	f := newFixture(t, false)
	b := juneBudget("100")

	f.budgets.EXPECT().FindActive(mock.Anything, mock.Anything, mock.Anything, mock.Anything, true).Return(b, nil)
	f.transactions.EXPECT().SumExpenses(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("statement timeout"))

	check, err := f.guard.CheckBudgetLimit(context.Background(), f.writer, 1, 5, decimal.NewFromInt(10), category.KindExpense)

	assert.Nil(t, check)
	assert.ErrorContains(t, err, "statement timeout")
	assert.Empty(t, f.hook.Entries)
}

// -- CheckReplacementLimit tests --

func TestCountedAmount(t *testing.T) {
	b := juneBudget("100")
	inWindow := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		old  *transaction.Transaction
		want string
	}{
		{"expense in period", &transaction.Transaction{OwnerID: 1, CategoryID: 5, Amount: decimal.RequireFromString("30"), Date: inWindow, Kind: category.KindExpense}, "30"},
		{"dated before period", &transaction.Transaction{OwnerID: 1, CategoryID: 5, Amount: decimal.RequireFromString("30"), Date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), Kind: category.KindExpense}, "0"},
		{"other category", &transaction.Transaction{OwnerID: 1, CategoryID: 6, Amount: decimal.RequireFromString("30"), Date: inWindow, Kind: category.KindExpense}, "0"},
		{"income", &transaction.Transaction{OwnerID: 1, CategoryID: 5, Amount: decimal.RequireFromString("30"), Date: inWindow, Kind: category.KindIncome}, "0"},
		{"no previous row", nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(CountedAmount(tt.old, b)))
		})
	}
}

func TestCheckReplacementLimit_RowMovedIntoPeriodIsChargedInFull(t *testing.T) {
	f := newFixture(t, true)
	b := juneBudget("1000")
	old := &transaction.Transaction{
		ID: 9, OwnerID: 1, CategoryID: 5, Amount: decimal.RequireFromString("100"),
		Date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), Kind: category.KindExpense,
	}

	f.budgets.EXPECT().FindActive(mock.Anything, int64(1), int64(5), today, true).Return(b, nil)
	f.transactions.EXPECT().SumExpenses(mock.Anything, int64(1), int64(5), b.StartDate, b.EndDate).
		Return(decimal.RequireFromString("1000"), nil)

	check, err := f.guard.CheckReplacementLimit(context.Background(), f.writer, 1, 5, decimal.RequireFromString("100"), category.KindExpense, old)

	require.NoError(t, err)
	assert.False(t, check.WithinLimit)
	assert.True(t, decimal.RequireFromString("1100").Equal(check.NewUsage))
}

func TestCheckReplacementLimit_LoweringCountedRowUnderFullBudget(t *testing.T) {
	f := newFixture(t, true)
	b := juneBudget("100")
	old := &transaction.Transaction{
		ID: 9, OwnerID: 1, CategoryID: 5, Amount: decimal.RequireFromString("100"),
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Kind: category.KindExpense,
	}

	f.budgets.EXPECT().FindActive(mock.Anything, int64(1), int64(5), today, true).Return(b, nil)
	f.transactions.EXPECT().SumExpenses(mock.Anything, int64(1), int64(5), b.StartDate, b.EndDate).
		Return(decimal.RequireFromString("120"), nil)

	check, err := f.guard.CheckReplacementLimit(context.Background(), f.writer, 1, 5, decimal.RequireFromString("80"), category.KindExpense, old)

	require.NoError(t, err)
	assert.True(t, check.WithinLimit, "an edit that adds nothing is never rejected")
}

// -- ValidateBudgetAmount tests --

func TestValidateBudgetAmount(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		spent    string
		proposed string
		valid    bool
		deficit  string
	}{
		{name: "above spend", spent: "80", proposed: "100", valid: true, deficit: "-20"},
		{name: "equal to spend", spent: "100", proposed: "100", valid: true, deficit: "0"},
		{name: "below spend", spent: "120.50", proposed: "100", valid: false, deficit: "20.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)
			f.transactions.EXPECT().SumExpenses(mock.Anything, int64(1), int64(5), start, end).
				Return(decimal.RequireFromString(tt.spent), nil)

			check, err := f.guard.ValidateBudgetAmount(context.Background(), f.writer, 1, 5, decimal.RequireFromString(tt.proposed), start, end)

			require.NoError(t, err)
			assert.Equal(t, tt.valid, check.IsValid)
			assert.True(t, decimal.RequireFromString(tt.deficit).Equal(check.Deficit))
			if tt.valid {
				assert.NoError(t, check.Err())
			} else {
				var insufficient *apperror.InsufficientBudgetError
				require.ErrorAs(t, check.Err(), &insufficient)
				assert.True(t, decimal.RequireFromString(tt.spent).Equal(insufficient.TotalSpent))
			}
		})
	}
}

func TestValidateBudgetAmount_ReadError(t *testing.T) {
	f := newFixture(t, true)
	f.transactions.EXPECT().SumExpenses(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("boom"))

	check, err := f.guard.ValidateBudgetAmount(context.Background(), f.writer, 1, 5, decimal.NewFromInt(1), today, today)

	assert.Nil(t, check)
	assert.ErrorContains(t, err, "boom")
}
