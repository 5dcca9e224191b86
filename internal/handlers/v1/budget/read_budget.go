package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
)

type OwnerInput struct {
	common.OwnerHeader
}

type ListBudgetsOutput struct {
	Body struct {
		Budgets []BudgetUsage `json:"budgets"`
	}
}

type GetBudgetInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Budget id"`
}

type GetBudgetOutput struct {
	Body BudgetUsage
}

type PerformanceOutput struct {
	Body struct {
		Budgets         []BudgetUsage `json:"budgets"`
		TotalBudget     string        `json:"totalBudget"`
		TotalActual     string        `json:"totalActual"`
		OverBudgetCount int           `json:"overBudgetCount"`
	}
}

// ReadHandler serves budget lookups and comparisons.
type ReadHandler struct {
	BudgetService budgetService
}

func NewReadHandler(svc budgetService) *ReadHandler {
	return &ReadHandler{BudgetService: svc}
}

// Register adds the fixed paths before /v1/budgets/{id} so routers that match
// in registration order do not treat them as ids.
func (h *ReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-vs-actual",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/vs-actual",
		Summary:     "Budget vs actual",
		Description: "Compares the budgets active today with what was spent.",
		Tags:        []string{"Budgets"},
	}, h.vsActual)
	huma.Register(api, huma.Operation{
		OperationID: "budget-performance",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/performance",
		Summary:     "Budget performance",
		Description: "Summarizes every budget with its actual spend.",
		Tags:        []string{"Budgets"},
	}, h.performance)
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Tags:        []string{"Budgets"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/{id}",
		Summary:     "Get budget",
		Tags:        []string{"Budgets"},
	}, h.get)
}

func (h *ReadHandler) list(ctx context.Context, input *OwnerInput) (*ListBudgetsOutput, error) {
	usages, err := h.BudgetService.ListBudgets(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to list budgets")
	}
	out := &ListBudgetsOutput{}
	out.Body.Budgets = toBudgetUsages(usages)
	return out, nil
}

func (h *ReadHandler) get(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	usage, err := h.BudgetService.GetBudget(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to get budget")
	}
	return &GetBudgetOutput{Body: toBudgetUsage(usage)}, nil
}

func (h *ReadHandler) vsActual(ctx context.Context, input *OwnerInput) (*ListBudgetsOutput, error) {
	usages, err := h.BudgetService.BudgetVsActual(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to compare budgets")
	}
	out := &ListBudgetsOutput{}
	out.Body.Budgets = toBudgetUsages(usages)
	return out, nil
}

func (h *ReadHandler) performance(ctx context.Context, input *OwnerInput) (*PerformanceOutput, error) {
	perf, err := h.BudgetService.BudgetPerformance(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to summarize budgets")
	}
	out := &PerformanceOutput{}
	out.Body.Budgets = toBudgetUsages(perf.Budgets)
	out.Body.TotalBudget = perf.TotalBudget.StringFixed(2)
	out.Body.TotalActual = perf.TotalActual.StringFixed(2)
	out.Body.OverBudgetCount = perf.OverBudgetCount
	return out, nil
}
