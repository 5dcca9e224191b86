package goal

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Name          string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Goal name"`
	TargetAmount  string `json:"targetAmount" required:"true" doc:"Positive amount to save"`
	CurrentAmount string `json:"currentAmount,omitempty" doc:"Amount already saved, defaults to 0"`
	StartDate     string `json:"startDate,omitempty" doc:"YYYY-MM-DD, defaults to today"`
	TargetDate    string `json:"targetDate" required:"true" doc:"YYYY-MM-DD"`
	CategoryID    int64  `json:"categoryId,omitempty" minimum:"0" doc:"Optional linked category"`
}

// UpdateGoalBody changes only the fields that are set.
type UpdateGoalBody struct {
	Name          string `json:"name,omitempty" maxLength:"100"`
	TargetAmount  string `json:"targetAmount,omitempty"`
	CurrentAmount string `json:"currentAmount,omitempty"`
	StartDate     string `json:"startDate,omitempty" doc:"YYYY-MM-DD"`
	TargetDate    string `json:"targetDate,omitempty" doc:"YYYY-MM-DD"`
	CategoryID    *int64 `json:"categoryId,omitempty" minimum:"0" doc:"Linked category, 0 unlinks it"`
}

// AllocateBody adds funds to a goal. Without goalId the open goal with the
// earliest target date receives them.
type AllocateBody struct {
	Amount string `json:"amount" required:"true" doc:"Positive amount to add"`
	GoalID int64  `json:"goalId,omitempty" minimum:"0" doc:"Goal to fund"`
}

type CreateGoalInput struct {
	common.OwnerHeader
	Body CreateGoalBody
}

type UpdateGoalInput struct {
	common.OwnerHeader
	ID   int64 `path:"id" doc:"Goal id"`
	Body UpdateGoalBody
}

type AllocateInput struct {
	common.OwnerHeader
	Body AllocateBody
}

type GoalOutput struct {
	Status int
	Body   Goal
}

// GoalWriteBody reports a goal write. Goal is absent when an allocation found nothing to fund.
type GoalWriteBody struct {
	Goal           *Goal `json:"goal,omitempty"`
	NewlyCompleted bool  `json:"newlyCompleted" doc:"The write reached the target"`
}

type GoalWriteOutput struct {
	Body GoalWriteBody
}

type DeleteGoalInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Goal id"`
}

type DeleteGoalOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// WriteHandler handles goal mutations.
type WriteHandler struct {
	GoalService goalService
}

func NewWriteHandler(svc goalService) *WriteHandler {
	return &WriteHandler{GoalService: svc}
}

func (h *WriteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "allocate-to-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goals/allocate",
		Summary:     "Allocate to goal",
		Description: "Adds funds to a goal, or to the most urgent open goal when none is named.",
		Tags:        []string{"Goals"},
	}, h.allocate)
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals",
		Summary:       "Create goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goals/{id}",
		Summary:     "Update goal",
		Description: "Changes the set fields and re-derives completion.",
		Tags:        []string{"Goals"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-goal",
		Method:      http.MethodDelete,
		Path:        "/v1/goals/{id}",
		Summary:     "Delete goal",
		Tags:        []string{"Goals"},
	}, h.delete)
}

// parseCreateGoalBody parses and validates the API input.
func parseCreateGoalBody(owner int64, body CreateGoalBody) (service.GoalInput, error) {
	in := service.GoalInput{OwnerID: owner, Name: body.Name, CurrentAmount: decimal.Zero}
	var err error
	if in.TargetAmount, err = common.ParseAmount("targetAmount", body.TargetAmount); err != nil {
		return in, err
	}
	if body.CurrentAmount != "" {
		if in.CurrentAmount, err = common.ParseAmount("currentAmount", body.CurrentAmount); err != nil {
			return in, err
		}
	}
	if body.StartDate != "" {
		if in.StartDate, err = common.ParseDate("body.startDate", body.StartDate); err != nil {
			return in, err
		}
	}
	if in.TargetDate, err = common.ParseDate("body.targetDate", body.TargetDate); err != nil {
		return in, err
	}
	if body.CategoryID > 0 {
		categoryID := body.CategoryID
		in.CategoryID = &categoryID
	}
	return in, nil
}

// parseUpdateGoalBody turns the set fields into a partial update.
func parseUpdateGoalBody(body UpdateGoalBody) (goal.GoalUpdate, error) {
	var update goal.GoalUpdate
	if body.Name != "" {
		update.Name = omit.From(body.Name)
	}
	if body.TargetAmount != "" {
		amount, err := common.ParseAmount("targetAmount", body.TargetAmount)
		if err != nil {
			return update, err
		}
		update.TargetAmount = omit.From(amount)
	}
	if body.CurrentAmount != "" {
		amount, err := common.ParseAmount("currentAmount", body.CurrentAmount)
		if err != nil {
			return update, err
		}
		update.CurrentAmount = omit.From(amount)
	}
	if body.StartDate != "" {
		day, err := common.ParseDate("body.startDate", body.StartDate)
		if err != nil {
			return update, err
		}
		update.StartDate = omit.From(day)
	}
	if body.TargetDate != "" {
		day, err := common.ParseDate("body.targetDate", body.TargetDate)
		if err != nil {
			return update, err
		}
		update.TargetDate = omit.From(day)
	}
	if body.CategoryID != nil {
		if *body.CategoryID == 0 {
			update.CategoryID = omitnull.FromPtr[int64](nil)
		} else {
			update.CategoryID = omitnull.From(*body.CategoryID)
		}
	}
	return update, nil
}

func toWriteOutput(res *service.GoalResult) *GoalWriteOutput {
	out := &GoalWriteOutput{Body: GoalWriteBody{NewlyCompleted: res.NewlyCompleted}}
	if res.Goal != nil {
		g := toGoal(res.Goal)
		out.Body.Goal = &g
	}
	return out
}

func (h *WriteHandler) create(ctx context.Context, input *CreateGoalInput) (*GoalOutput, error) {
	in, err := parseCreateGoalBody(input.OwnerID, input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.GoalService.CreateGoal(ctx, in)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to create goal")
	}
	return &GoalOutput{Status: http.StatusCreated, Body: toGoal(created)}, nil
}

func (h *WriteHandler) update(ctx context.Context, input *UpdateGoalInput) (*GoalWriteOutput, error) {
	update, err := parseUpdateGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	res, err := h.GoalService.UpdateGoal(ctx, input.ID, input.OwnerID, update)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to update goal")
	}
	return toWriteOutput(res), nil
}

func (h *WriteHandler) allocate(ctx context.Context, input *AllocateInput) (*GoalWriteOutput, error) {
	amount, err := common.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}
	var goalID *int64
	if input.Body.GoalID > 0 {
		goalID = &input.Body.GoalID
	}

	res, err := h.GoalService.AllocateToGoal(ctx, input.OwnerID, amount, goalID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to allocate to goal")
	}
	return toWriteOutput(res), nil
}

func (h *WriteHandler) delete(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	if err := h.GoalService.DeleteGoal(ctx, input.ID, input.OwnerID); err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to delete goal")
	}
	out := &DeleteGoalOutput{}
	out.Body.Deleted = true
	return out, nil
}
