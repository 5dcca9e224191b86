package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const tableName = "categories"

var columns = []any{"id", "owner_id", "name", "kind", "created_at"}

// Table provides access to the categories table.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements ICategoryTable at compile time.
var _ ICategoryTable = (*Table)(nil)

// NewTable creates a Table over a database handle or transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a category by primary key regardless of owner.
func (t *Table) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// FindVisible retrieves a category that is either system-wide or owned by owner.
func (t *Table) FindVisible(ctx context.Context, id int64, owner int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Or(
			psql.Quote("owner_id").EQ(psql.Arg(owner)),
			psql.Quote("owner_id").IsNull(),
		)),
	)
	return t.one(ctx, q)
}

// List returns system categories plus the ones owned by owner.
func (t *Table) List(ctx context.Context, owner int64) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Or(
			psql.Quote("owner_id").EQ(psql.Arg(owner)),
			psql.Quote("owner_id").IsNull(),
		)),
		sm.OrderBy("kind").Asc(),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}

// Insert creates a new category and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	var owner sql.NullInt64
	if create.OwnerID != nil {
		owner = sql.NullInt64{Int64: *create.OwnerID, Valid: true}
	}
	q := psql.Insert(
		im.Into(tableName, "owner_id", "name", "kind"),
		im.Values(psql.Arg(owner), psql.Arg(create.Name), psql.Arg(string(create.Kind))),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	return rowToCategory(row), nil
}

// Update renames or re-kinds a category owned by owner and returns the affected row count.
func (t *Table) Update(ctx context.Context, id int64, owner int64, name string, kind Kind) (int64, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("name").ToArg(name),
		um.SetCol("kind").ToArg(string(kind)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// Delete removes a category owned by owner and returns the affected row count.
func (t *Table) Delete(ctx context.Context, id int64, owner int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	return execAffected(ctx, t.exec, q)
}

// Dependencies counts the transactions, budgets and goals of owner that
// reference the category.
func (t *Table) Dependencies(ctx context.Context, id int64, owner int64) (*Dependencies, error) {
	q := psql.RawQuery(`
		SELECT
			(SELECT COUNT(*) FROM transactions WHERE category_id = ? AND owner_id = ?) AS transaction_count,
			(SELECT COUNT(*) FROM budgets WHERE category_id = ? AND owner_id = ?) AS budget_count,
			(SELECT COUNT(*) FROM goals WHERE category_id = ? AND owner_id = ?) AS goal_count`,
		id, owner, id, owner, id, owner,
	)
	type countsRow struct {
		TransactionCount int64 `db:"transaction_count"`
		BudgetCount      int64 `db:"budget_count"`
		GoalCount        int64 `db:"goal_count"`
	}
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[countsRow]())
	if err != nil {
		return nil, err
	}
	return &Dependencies{
		TransactionCount: row.TransactionCount,
		BudgetCount:      row.BudgetCount,
		GoalCount:        row.GoalCount,
	}, nil
}

func (t *Table) one(ctx context.Context, q bob.Query) (*Category, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToCategory(row), nil
}

func execAffected(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
