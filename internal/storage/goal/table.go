package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const tableName = "goals"

var columns = []any{
	"id", "owner_id", "category_id", "name", "target_amount", "current_amount",
	"start_date", "target_date", "completed", "created_at", "updated_at",
}

// Table provides access to the goals table.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements IGoalTable at compile time.
var _ IGoalTable = (*Table)(nil)

// NewTable creates a Table over a database handle or transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a goal by primary key, optionally locking the row.
func (t *Table) FindByID(ctx context.Context, id int64, forUpdate bool) (*Goal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	return t.one(ctx, psql.Select(queryMods...))
}

// FindFirstIncomplete retrieves and locks the owner's next goal to fund.
func (t *Table) FindFirstIncomplete(ctx context.Context, owner int64) (*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("completed").EQ(psql.Arg(false))),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
		sm.ForUpdate(),
	)
	return t.one(ctx, q)
}

// Insert creates a new goal and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *GoalCreate) (*Goal, error) {
	q := psql.Insert(
		im.Into(tableName, "owner_id", "category_id", "name", "target_amount", "current_amount",
			"start_date", "target_date", "completed"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(nullable(create.CategoryID)),
			psql.Arg(create.Name),
			psql.Arg(create.TargetAmount),
			psql.Arg(create.CurrentAmount),
			psql.Arg(create.StartDate),
			psql.Arg(create.TargetDate),
			psql.Arg(create.Completed),
		),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[goalRow]())
	if err != nil {
		return nil, err
	}
	return rowToGoal(row), nil
}

// Save writes every mutable field of g and stamps updated_at.
func (t *Table) Save(ctx context.Context, g *Goal) error {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("name").ToArg(g.Name),
		um.SetCol("category_id").ToArg(nullable(g.CategoryID)),
		um.SetCol("target_amount").ToArg(g.TargetAmount),
		um.SetCol("current_amount").ToArg(g.CurrentAmount),
		um.SetCol("start_date").ToArg(g.StartDate),
		um.SetCol("target_date").ToArg(g.TargetDate),
		um.SetCol("completed").ToArg(g.Completed),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(g.ID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a goal by primary key.
func (t *Table) Delete(ctx context.Context, id int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffected(ctx, t.exec, q)
}

// DeleteByCategory removes every goal linked to the category.
func (t *Table) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return execAffected(ctx, t.exec, q)
}

// List returns the owner's goals, open ones first, then by target date.
func (t *Table) List(ctx context.Context, owner int64) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.OrderBy("completed").Asc(),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[goalRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Goal, len(rows))
	for i, row := range rows {
		result[i] = rowToGoal(row)
	}
	return result, nil
}

func (t *Table) one(ctx context.Context, q bob.Query) (*Goal, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[goalRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToGoal(row), nil
}

func execAffected(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
