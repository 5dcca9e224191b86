package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

type CreateGoal struct {
	OwnerID       int64
	CategoryID    *int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	TargetDate    time.Time

	Result *goal.Goal
}

var _ IAction = (*CreateGoal)(nil)

func (c *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	name, err := requireName("name", c.Name)
	if err != nil {
		return err
	}
	g := &goal.Goal{
		OwnerID:       c.OwnerID,
		CategoryID:    c.CategoryID,
		Name:          name,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		StartDate:     c.StartDate,
		TargetDate:    c.TargetDate,
	}
	if err := validateGoal(g); err != nil {
		return err
	}
	if g.CategoryID != nil {
		if _, err := visibleCategory(ctx, writer, *g.CategoryID, c.OwnerID); err != nil {
			return err
		}
	}
	g.Recompute()

	created, err := writer.Goals.Insert(ctx, &goal.GoalCreate{
		OwnerID:       g.OwnerID,
		CategoryID:    g.CategoryID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		StartDate:     g.StartDate,
		TargetDate:    g.TargetDate,
		Completed:     g.Completed,
	})
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}

	c.Result = created
	return nil
}

// UpdateGoal applies a partial update and re-derives completion from the new amounts.
type UpdateGoal struct {
	ID      int64
	OwnerID int64
	Update  goal.GoalUpdate

	Result         *goal.Goal
	NewlyCompleted bool
}

var _ IAction = (*UpdateGoal)(nil)

func (u *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	g, err := ownedGoal(ctx, writer, u.ID, u.OwnerID)
	if err != nil {
		return err
	}

	u.Update.Apply(g)
	name, err := requireName("name", g.Name)
	if err != nil {
		return err
	}
	g.Name = name
	if err := validateGoal(g); err != nil {
		return err
	}
	if categoryID, ok := u.Update.CategoryID.Get(); ok {
		if _, err := visibleCategory(ctx, writer, categoryID, u.OwnerID); err != nil {
			return err
		}
	}
	u.NewlyCompleted = g.Recompute()

	if err := writer.Goals.Save(ctx, g); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}

	u.Result = g
	return nil
}

// AllocateToGoal adds funds to a goal. Without GoalID the owner's incomplete
// goal with the earliest target date is funded; when there is none the
// allocation is a no-op and Result stays nil.
type AllocateToGoal struct {
	OwnerID int64
	Amount  decimal.Decimal
	GoalID  *int64

	Result         *goal.Goal
	NewlyCompleted bool
}

var _ IAction = (*AllocateToGoal)(nil)

func (a *AllocateToGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := requirePositive("amount", a.Amount); err != nil {
		return err
	}

	var g *goal.Goal
	if a.GoalID != nil {
		var err error
		g, err = ownedGoal(ctx, writer, *a.GoalID, a.OwnerID)
		if err != nil {
			return err
		}
		if g.Completed {
			return apperror.ErrGoalAlreadyComplete
		}
	} else {
		var err error
		g, err = writer.Goals.FindFirstIncomplete(ctx, a.OwnerID)
		if err != nil {
			return fmt.Errorf("find first incomplete goal: %w", err)
		}
		if g == nil {
			return nil
		}
	}

	g.CurrentAmount = g.CurrentAmount.Add(a.Amount)
	a.NewlyCompleted = g.Recompute()

	if err := writer.Goals.Save(ctx, g); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}

	a.Result = g
	return nil
}

type DeleteGoal struct {
	ID      int64
	OwnerID int64
}

var _ IAction = (*DeleteGoal)(nil)

func (d *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedGoal(ctx, writer, d.ID, d.OwnerID); err != nil {
		return err
	}

	affected, err := writer.Goals.Delete(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("goal")
	}
	return nil
}

// ownedGoal loads and locks a goal, telling a missing goal apart from another owner's.
func ownedGoal(ctx context.Context, writer *storage.Writer, id, owner int64) (*goal.Goal, error) {
	g, err := writer.Goals.FindByID(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("find goal: %w", err)
	}
	if g == nil {
		return nil, apperror.NotFound("goal")
	}
	if g.OwnerID != owner {
		return nil, apperror.Forbidden("goal belongs to another owner")
	}
	return g, nil
}

func validateGoal(g *goal.Goal) error {
	if err := requirePositive("targetAmount", g.TargetAmount); err != nil {
		return err
	}
	if err := requireNonNegative("currentAmount", g.CurrentAmount); err != nil {
		return err
	}
	if g.TargetDate.IsZero() {
		return apperror.Validation("targetDate", "is required")
	}
	return nil
}
