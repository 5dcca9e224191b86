package goal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID              int64  `json:"id" doc:"Goal id"`
	CategoryID      *int64 `json:"categoryId,omitempty" doc:"Linked category id"`
	Name            string `json:"name" doc:"Goal name"`
	TargetAmount    string `json:"targetAmount" doc:"Amount to save"`
	CurrentAmount   string `json:"currentAmount" doc:"Amount saved so far"`
	PercentComplete string `json:"percentComplete" doc:"Current over target as a whole percentage"`
	StartDate       string `json:"startDate" doc:"YYYY-MM-DD"`
	TargetDate      string `json:"targetDate" doc:"YYYY-MM-DD"`
	Completed       bool   `json:"completed" doc:"Whether the target was reached"`
	UpdatedAt       string `json:"updatedAt" doc:"RFC3339 time of the last write"`
}

func toGoal(g *goal.Goal) Goal {
	return Goal{
		ID:              g.ID,
		CategoryID:      g.CategoryID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount.StringFixed(2),
		CurrentAmount:   g.CurrentAmount.StringFixed(2),
		PercentComplete: g.PercentComplete().String(),
		StartDate:       common.FormatDate(g.StartDate),
		TargetDate:      common.FormatDate(g.TargetDate),
		Completed:       g.Completed,
		UpdatedAt:       g.UpdatedAt.Format(time.RFC3339),
	}
}

// goalService is the slice of service.GoalService the handlers use.
type goalService interface {
	CreateGoal(ctx context.Context, in service.GoalInput) (*goal.Goal, error)
	UpdateGoal(ctx context.Context, id, owner int64, update goal.GoalUpdate) (*service.GoalResult, error)
	AllocateToGoal(ctx context.Context, owner int64, amount decimal.Decimal, goalID *int64) (*service.GoalResult, error)
	DeleteGoal(ctx context.Context, id, owner int64) error
	GetGoal(ctx context.Context, id, owner int64) (*goal.Goal, error)
	ListGoals(ctx context.Context, owner int64) ([]*goal.Goal, error)
}
