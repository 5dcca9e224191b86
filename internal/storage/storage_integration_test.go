//go:build integration

package storage_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

const owner int64 = 1

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func setupPostgres(t *testing.T) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("finance"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrationDB, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	_, post, err := storage.RunMigrations(migrationDB)
	require.NoError(t, err)
	require.Equal(t, uint(4), post)
	_ = migrationDB.Close()

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	store := storage.NewStorageFromDB(db)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.PingContext(ctx))
	return store
}

func newService(t *testing.T, store storage.Backend) *service.Service {
	t.Helper()
	logger, _ := test.NewNullLogger()
	delegator := operator.NewOperatorDelegator(store, logger, 4)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	clock := func() time.Time { return now }
	return service.NewService(store, delegator, guard.NewBudgetGuard(true, clock, logger), clock)
}

func systemCategory(t *testing.T, svc *service.Service, name string) int64 {
	t.Helper()
	categories, err := svc.Category.ListCategories(context.Background(), owner)
	require.NoError(t, err)
	for _, c := range categories {
		if c.Name == name && c.OwnerID == nil {
			return c.ID
		}
	}
	t.Fatalf("system category %q not seeded", name)
	return 0
}

func expense(categoryID int64, amount string) service.TransactionInput {
	return service.TransactionInput{
		OwnerID:     owner,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Description: "integration",
		Kind:        category.KindExpense,
	}
}

func TestIntegration_BudgetCeilingUnderConcurrency(t *testing.T) {
	svc := newService(t, setupPostgres(t))
	ctx := context.Background()
	foodID := systemCategory(t, svc, "Food")

	_, err := svc.Budget.CreateBudget(ctx, service.BudgetInput{
		OwnerID:    owner,
		CategoryID: foodID,
		Amount:     decimal.RequireFromString("100"),
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 25)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Transaction.CreateTransaction(ctx, expense(foodID, "10"))
		}()
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.Equal(t, apperror.CodeBudgetExceeded, apperror.CodeOf(err))
	}
	assert.Equal(t, 10, accepted)

	usage, err := svc.Budget.BudgetVsActual(ctx, owner)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.True(t, decimal.RequireFromString("100").Equal(usage[0].Actual))
}

func TestIntegration_ForceDeleteCascades(t *testing.T) {
	svc := newService(t, setupPostgres(t))
	ctx := context.Background()

	pets, err := svc.Category.CreateCategory(ctx, owner, "Pets", category.KindExpense)
	require.NoError(t, err)
	for _, amount := range []string{"10", "20"} {
		_, err := svc.Transaction.CreateTransaction(ctx, expense(pets.ID, amount))
		require.NoError(t, err)
	}

	_, err = svc.Category.DeleteCategory(ctx, pets.ID, owner, false)
	var conflict *apperror.DependencyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(2), conflict.TransactionCount)

	removed, err := svc.Category.DeleteCategory(ctx, pets.ID, owner, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed.TransactionCount)

	_, err = svc.Category.GetCategory(ctx, pets.ID, owner)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	txs, _, err := svc.Transaction.ListTransactions(ctx, owner, service.TransactionQuery{}, nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestIntegration_SystemCategoryCannotBeDeleted(t *testing.T) {
	svc := newService(t, setupPostgres(t))

	_, err := svc.Category.DeleteCategory(context.Background(), systemCategory(t, svc, "Salary"), owner, true)

	assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(err))
}

func TestIntegration_DependenciesAreOwnerScoped(t *testing.T) {
	svc := newService(t, setupPostgres(t))
	ctx := context.Background()
	foodID := systemCategory(t, svc, "Food")

	other := expense(foodID, "25")
	other.OwnerID = owner + 1
	_, err := svc.Transaction.CreateTransaction(ctx, other)
	require.NoError(t, err)

	deps, err := svc.Category.CheckDependencies(ctx, foodID, owner)

	require.NoError(t, err)
	assert.Equal(t, category.Dependencies{}, *deps)
}

func TestIntegration_RangeReport(t *testing.T) {
	svc := newService(t, setupPostgres(t))
	ctx := context.Background()
	foodID := systemCategory(t, svc, "Food")
	for _, amount := range []string{"12.50", "7.50"} {
		_, err := svc.Transaction.CreateTransaction(ctx, expense(foodID, amount))
		require.NoError(t, err)
	}

	report, err := svc.Report.MonthlyReport(ctx, owner, 2025, 6)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20").Equal(report.TotalExpense))
	assert.True(t, decimal.RequireFromString("-20").Equal(report.NetSavings))
	require.Len(t, report.Daily, 1)
	assert.True(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC).Equal(report.Daily[0].Date))
	assert.Len(t, report.Transactions, 2)
	require.Len(t, report.MonthlyTrend, 12)
	assert.True(t, decimal.RequireFromString("20").Equal(report.MonthlyTrend[11].Expense))
}
