package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

// GoalInput carries the fields of a new goal. A zero StartDate means today.
type GoalInput struct {
	OwnerID       int64
	CategoryID    *int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	TargetDate    time.Time
}

// GoalResult is a written goal. NewlyCompleted is set when the write reached the target.
// Goal is nil when an allocation found no goal to fund.
type GoalResult struct {
	Goal           *goal.Goal
	NewlyCompleted bool
}

// GoalService handles goal business logic.
type GoalService struct {
	storage   storage.Backend
	processor Processor
	clock     calendar.Clock
}

func NewGoalService(store storage.Backend, processor Processor, clock calendar.Clock) *GoalService {
	return &GoalService{storage: store, processor: processor, clock: clock}
}

func (s *GoalService) CreateGoal(ctx context.Context, in GoalInput) (*goal.Goal, error) {
	start := in.StartDate
	if start.IsZero() {
		start = s.clock.Today()
	}
	action := &actions.CreateGoal{
		OwnerID:       in.OwnerID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		StartDate:     start,
		TargetDate:    in.TargetDate,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, id, owner int64, update goal.GoalUpdate) (*GoalResult, error) {
	action := &actions.UpdateGoal{ID: id, OwnerID: owner, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &GoalResult{Goal: action.Result, NewlyCompleted: action.NewlyCompleted}, nil
}

// AllocateToGoal adds amount to goalID, or to the most urgent incomplete goal when goalID is nil.
func (s *GoalService) AllocateToGoal(ctx context.Context, owner int64, amount decimal.Decimal, goalID *int64) (*GoalResult, error) {
	action := &actions.AllocateToGoal{OwnerID: owner, Amount: amount, GoalID: goalID}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &GoalResult{Goal: action.Result, NewlyCompleted: action.NewlyCompleted}, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id, owner int64) error {
	return s.processor.Process(ctx, &actions.DeleteGoal{ID: id, OwnerID: owner})
}

func (s *GoalService) GetGoal(ctx context.Context, id, owner int64) (*goal.Goal, error) {
	g, err := s.storage.Read().Goals.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperror.NotFound("goal")
	}
	if g.OwnerID != owner {
		return nil, apperror.Forbidden("goal belongs to another owner")
	}
	return g, nil
}

// ListGoals returns owner's goals, open ones first by target date.
func (s *GoalService) ListGoals(ctx context.Context, owner int64) ([]*goal.Goal, error) {
	return s.storage.Read().Goals.List(ctx, owner)
}
