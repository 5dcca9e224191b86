package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

const tableName = "transactions"

var joinedColumns = []any{
	"transactions.id",
	"transactions.owner_id",
	"transactions.category_id",
	"COALESCE(categories.name, '') AS category_name",
	"transactions.amount",
	"transactions.transaction_date",
	"transactions.description",
	"transactions.kind",
	"transactions.created_at",
}

// Table provides access to the transactions table.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements ITransactionTable at compile time.
var _ ITransactionTable = (*Table)(nil)

// NewTable creates a Table over a database handle or transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func selectJoined(queryMods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(joinedColumns...),
		sm.From(tableName),
		sm.LeftJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("transactions", "category_id")),
		),
	}
	return psql.Select(append(base, queryMods...)...)
}

// FindByID retrieves a transaction owned by owner.
func (t *Table) FindByID(ctx context.Context, id int64, owner int64) (*Transaction, error) {
	q := selectJoined(
		sm.Where(psql.Quote("transactions", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("transactions", "owner_id").EQ(psql.Arg(owner))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

// Insert creates a new transaction and returns it with the category name joined in.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(tableName, "owner_id", "category_id", "amount", "transaction_date", "description", "kind"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(create.Date),
			psql.Arg(create.Description),
			psql.Arg(string(create.Kind)),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, err
	}
	created, err := t.FindByID(ctx, id, create.OwnerID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, sql.ErrNoRows
	}
	return created, nil
}

// Update replaces the mutable fields of a transaction owned by owner.
func (t *Table) Update(ctx context.Context, id int64, owner int64, update *TransactionUpdate) (int64, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("transaction_date").ToArg(update.Date),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("kind").ToArg(string(update.Kind)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// Delete removes a transaction owned by owner.
func (t *Table) Delete(ctx context.Context, id int64, owner int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// DeleteByCategory removes every transaction referencing the category, across owners.
func (t *Table) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return execAffected(ctx, t.exec, q)
}

// SumExpenses totals EXPENSE amounts for (owner, category) dated within [start, end].
func (t *Table) SumExpenses(ctx context.Context, owner int64, categoryID int64, start, end time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns("COALESCE(SUM(amount), 0)"),
		sm.From(tableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("kind").EQ(psql.Arg(string(category.KindExpense)))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(end))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// List returns transactions owned by owner matching the filter, newest first. Nil filter returns all.
// A positive Limit fetches one extra row so callers can tell whether another page exists.
func (t *Table) List(ctx context.Context, owner int64, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("transactions", "owner_id").EQ(psql.Arg(owner))),
	}
	if filter != nil {
		if filter.StartDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "transaction_date").GTE(psql.Arg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "transaction_date").LTE(psql.Arg(*filter.EndDate))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.Kind != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "kind").EQ(psql.Arg(string(*filter.Kind)))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transactions", "transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "id")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, selectJoined(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Summary computes the dashboard aggregate as of today.
func (t *Table) Summary(ctx context.Context, owner int64, today time.Time) (*Summary, error) {
	monthStart, monthEnd := calendar.MonthBounds(today)

	totalsQuery := psql.RawQuery(`
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END), 0)
				- COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN amount ELSE 0 END), 0) AS current_balance,
			COALESCE(SUM(CASE WHEN kind = 'INCOME' AND transaction_date BETWEEN ? AND ? THEN amount ELSE 0 END), 0) AS monthly_income,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' AND transaction_date BETWEEN ? AND ? THEN amount ELSE 0 END), 0) AS monthly_expense
		FROM transactions
		WHERE owner_id = ?`,
		monthStart, monthEnd, monthStart, monthEnd, owner,
	)
	type totalsRow struct {
		CurrentBalance decimal.Decimal `db:"current_balance"`
		MonthlyIncome  decimal.Decimal `db:"monthly_income"`
		MonthlyExpense decimal.Decimal `db:"monthly_expense"`
	}
	totals, err := bob.One(ctx, t.exec, totalsQuery, scan.StructMapper[totalsRow]())
	if err != nil {
		return nil, err
	}

	budgetQuery := psql.RawQuery(`
		SELECT COALESCE(SUM(u.amount), 0) AS budgeted, COALESCE(SUM(u.spent), 0) AS spent
		FROM (
			SELECT b.amount,
				(SELECT COALESCE(SUM(t.amount), 0)
				 FROM transactions t
				 WHERE t.owner_id = b.owner_id
				   AND t.category_id = b.category_id
				   AND t.kind = 'EXPENSE'
				   AND t.transaction_date BETWEEN b.start_date AND b.end_date) AS spent
			FROM budgets b
			WHERE b.owner_id = ? AND b.start_date <= ? AND b.end_date >= ?
		) u`,
		owner, today, today,
	)
	type budgetRow struct {
		Budgeted decimal.Decimal `db:"budgeted"`
		Spent    decimal.Decimal `db:"spent"`
	}
	usage, err := bob.One(ctx, t.exec, budgetQuery, scan.StructMapper[budgetRow]())
	if err != nil {
		return nil, err
	}

	return &Summary{
		CurrentBalance:       totals.CurrentBalance,
		MonthlyIncome:        totals.MonthlyIncome,
		MonthlyExpense:       totals.MonthlyExpense,
		BudgetUsedPercentage: UsedPercentage(usage.Spent, usage.Budgeted),
	}, nil
}

// MonthlyTotals returns income and expense per month for transactions dated on or after since.
func (t *Table) MonthlyTotals(ctx context.Context, owner int64, since time.Time) ([]*MonthlyTotal, error) {
	q := psql.RawQuery(`
		SELECT
			to_char(date_trunc('month', transaction_date), 'YYYY-MM') AS month,
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense
		FROM transactions
		WHERE owner_id = ? AND transaction_date >= ?
		GROUP BY 1
		ORDER BY 1`,
		owner, since,
	)
	type monthRow struct {
		Month   string          `db:"month"`
		Income  decimal.Decimal `db:"income"`
		Expense decimal.Decimal `db:"expense"`
	}
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[monthRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*MonthlyTotal, len(rows))
	for i, row := range rows {
		result[i] = &MonthlyTotal{Month: row.Month, Income: row.Income, Expense: row.Expense}
	}
	return result, nil
}

// DailyTotals sums income and expense per day within [start, end]. Days
// without transactions are absent; rows come oldest first.
func (t *Table) DailyTotals(ctx context.Context, owner int64, start, end time.Time) ([]*DailyTotal, error) {
	q := psql.RawQuery(`
		SELECT
			transaction_date AS day,
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense
		FROM transactions
		WHERE owner_id = ? AND transaction_date BETWEEN ? AND ?
		GROUP BY transaction_date
		ORDER BY transaction_date`,
		owner, start, end,
	)
	type dayRow struct {
		Day     time.Time       `db:"day"`
		Income  decimal.Decimal `db:"income"`
		Expense decimal.Decimal `db:"expense"`
	}
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[dayRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*DailyTotal, len(rows))
	for i, row := range rows {
		result[i] = &DailyTotal{Date: row.Day, Income: row.Income, Expense: row.Expense}
	}
	return result, nil
}

// SpendingByCategory totals EXPENSE amounts per category within [start, end], largest first.
func (t *Table) SpendingByCategory(ctx context.Context, owner int64, start, end time.Time) ([]*CategorySpend, error) {
	q := psql.RawQuery(`
		SELECT c.id AS category_id, c.name AS category_name, SUM(t.amount) AS amount
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.owner_id = ? AND t.kind = 'EXPENSE' AND t.transaction_date BETWEEN ? AND ?
		GROUP BY c.id, c.name
		ORDER BY amount DESC, c.id ASC`,
		owner, start, end,
	)
	type spendRow struct {
		CategoryID   int64           `db:"category_id"`
		CategoryName string          `db:"category_name"`
		Amount       decimal.Decimal `db:"amount"`
	}
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[spendRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*CategorySpend, len(rows))
	for i, row := range rows {
		result[i] = &CategorySpend{CategoryID: row.CategoryID, CategoryName: row.CategoryName, Amount: row.Amount}
	}
	return result, nil
}

// UsedPercentage returns spent/budgeted as a percentage rounded to two places, or zero without a budget.
func UsedPercentage(spent, budgeted decimal.Decimal) decimal.Decimal {
	if !budgeted.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(2)
}

func execAffected(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
