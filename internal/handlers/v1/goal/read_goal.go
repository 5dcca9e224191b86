package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
)

type ListGoalsInput struct {
	common.OwnerHeader
}

type ListGoalsOutput struct {
	Body struct {
		Goals []Goal `json:"goals"`
	}
}

type GetGoalInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Goal id"`
}

type GetGoalOutput struct {
	Body Goal
}

// ReadHandler serves goal lookups.
type ReadHandler struct {
	GoalService goalService
}

func NewReadHandler(svc goalService) *ReadHandler {
	return &ReadHandler{GoalService: svc}
}

func (h *ReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List goals",
		Description: "Returns the caller's goals, open ones first by target date.",
		Tags:        []string{"Goals"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goals/{id}",
		Summary:     "Get goal",
		Tags:        []string{"Goals"},
	}, h.get)
}

func (h *ReadHandler) list(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := h.GoalService.ListGoals(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to list goals")
	}
	out := &ListGoalsOutput{}
	out.Body.Goals = make([]Goal, len(goals))
	for i, g := range goals {
		out.Body.Goals[i] = toGoal(g)
	}
	return out, nil
}

func (h *ReadHandler) get(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	g, err := h.GoalService.GetGoal(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to get goal")
	}
	return &GetGoalOutput{Body: toGoal(g)}, nil
}
