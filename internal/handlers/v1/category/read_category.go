package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/logging"
)

type ListCategoriesInput struct {
	common.OwnerHeader
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories"`
	}
}

type GetCategoryInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Category id"`
}

type GetCategoryOutput struct {
	Body Category
}

type DependenciesOutput struct {
	Body Dependencies
}

// ReadHandler serves category lookups.
type ReadHandler struct {
	CategoryService categoryService
}

func NewReadHandler(svc categoryService) *ReadHandler {
	return &ReadHandler{CategoryService: svc}
}

func (h *ReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the system categories and the caller's own.",
		Tags:        []string{"Categories"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "get-category-dependencies",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}/dependencies",
		Summary:     "Count category dependencies",
		Description: "Counts the transactions, budgets and goals that a forced delete would remove.",
		Tags:        []string{"Categories"},
	}, h.dependencies)
}

func (h *ReadHandler) list(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to list categories")
	}
	if logData := logging.FromContext(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = toCategory(c)
	}
	return out, nil
}

func (h *ReadHandler) get(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	c, err := h.CategoryService.GetCategory(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to get category")
	}
	return &GetCategoryOutput{Body: toCategory(c)}, nil
}

func (h *ReadHandler) dependencies(ctx context.Context, input *GetCategoryInput) (*DependenciesOutput, error) {
	deps, err := h.CategoryService.CheckDependencies(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to count category dependencies")
	}
	return &DependenciesOutput{Body: Dependencies{
		TransactionCount: deps.TransactionCount,
		BudgetCount:      deps.BudgetCount,
		GoalCount:        deps.GoalCount,
	}}, nil
}
