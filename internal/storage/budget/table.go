package budget

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
)

const tableName = "budgets"

var joinedColumns = []any{
	"budgets.id",
	"budgets.owner_id",
	"budgets.category_id",
	"categories.name AS category_name",
	"budgets.amount",
	"budgets.start_date",
	"budgets.end_date",
	"budgets.created_at",
}

const usageQuery = `
	SELECT
		budgets.id,
		budgets.owner_id,
		budgets.category_id,
		categories.name AS category_name,
		budgets.amount,
		budgets.start_date,
		budgets.end_date,
		budgets.created_at,
		(SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t
		 WHERE t.owner_id = budgets.owner_id
		   AND t.category_id = budgets.category_id
		   AND t.kind = 'EXPENSE'
		   AND t.transaction_date BETWEEN budgets.start_date AND budgets.end_date) AS actual
	FROM budgets
	JOIN categories ON categories.id = budgets.category_id
	WHERE budgets.owner_id = ?`

// Table provides access to the budgets table.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements IBudgetTable at compile time.
var _ IBudgetTable = (*Table)(nil)

// NewTable creates a Table over a database handle or transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func selectJoined(forUpdate bool, queryMods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(joinedColumns...),
		sm.From(tableName),
		sm.InnerJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("budgets", "category_id")),
		),
	}
	base = append(base, queryMods...)
	if forUpdate {
		base = append(base, sm.ForUpdate(tableName))
	}
	return psql.Select(base...)
}

// FindByID retrieves a budget owned by owner, optionally locking the row.
func (t *Table) FindByID(ctx context.Context, id int64, owner int64, forUpdate bool) (*Budget, error) {
	q := selectJoined(forUpdate,
		sm.Where(psql.Quote("budgets", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("budgets", "owner_id").EQ(psql.Arg(owner))),
	)
	return t.one(ctx, q)
}

// FindActive retrieves the budget for (owner, category) covering day.
func (t *Table) FindActive(ctx context.Context, owner int64, categoryID int64, day time.Time, forUpdate bool) (*Budget, error) {
	q := selectJoined(forUpdate,
		sm.Where(psql.Quote("budgets", "owner_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("budgets", "category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("budgets", "start_date").LTE(psql.Arg(day))),
		sm.Where(psql.Quote("budgets", "end_date").GTE(psql.Arg(day))),
		sm.OrderBy(psql.Quote("budgets", "id")).Asc(),
		sm.Limit(1),
	)
	return t.one(ctx, q)
}

// Insert creates a new budget and returns it with the category name joined in.
func (t *Table) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into(tableName, "owner_id", "category_id", "amount", "start_date", "end_date"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(create.StartDate),
			psql.Arg(create.EndDate),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, err
	}
	created, err := t.FindByID(ctx, id, create.OwnerID, false)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, sql.ErrNoRows
	}
	return created, nil
}

// Update overwrites the amount and range of a budget owned by owner.
func (t *Table) Update(ctx context.Context, id int64, owner int64, amount decimal.Decimal, start, end time.Time) (int64, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("amount").ToArg(amount),
		um.SetCol("start_date").ToArg(start),
		um.SetCol("end_date").ToArg(end),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// Delete removes a budget owned by owner.
func (t *Table) Delete(ctx context.Context, id int64, owner int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// DeleteByCategory removes every budget referencing the category, across owners.
func (t *Table) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return execAffected(ctx, t.exec, q)
}

// List returns every budget owned by owner with its actual spend, most recent period first.
func (t *Table) List(ctx context.Context, owner int64) ([]*BudgetUsage, error) {
	q := psql.RawQuery(usageQuery+`
	ORDER BY budgets.start_date DESC, budgets.id DESC`, owner)
	return t.usages(ctx, q)
}

// ListActive returns the budgets owned by owner whose range covers day.
func (t *Table) ListActive(ctx context.Context, owner int64, day time.Time) ([]*BudgetUsage, error) {
	q := psql.RawQuery(usageQuery+`
	  AND budgets.start_date <= ? AND budgets.end_date >= ?
	ORDER BY categories.name ASC, budgets.id ASC`, owner, day, day)
	return t.usages(ctx, q)
}

func (t *Table) usages(ctx context.Context, q bob.Query) ([]*BudgetUsage, error) {
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[usageRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*BudgetUsage, len(rows))
	for i, row := range rows {
		result[i] = rowToUsage(row)
	}
	return result, nil
}

func (t *Table) one(ctx context.Context, q bob.Query) (*Budget, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[budgetRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToBudget(row), nil
}

func execAffected(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
