package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
)

// CategoryBody is the request body for creating or updating a category.
type CategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Category name"`
	Kind string `json:"kind" required:"true" doc:"INCOME or EXPENSE"`
}

type CreateCategoryInput struct {
	common.OwnerHeader
	Body CategoryBody
}

type UpdateCategoryInput struct {
	common.OwnerHeader
	ID   int64 `path:"id" doc:"Category id"`
	Body CategoryBody
}

type CategoryOutput struct {
	Status int
	Body   Category
}

type DeleteCategoryInput struct {
	common.OwnerHeader
	ID    int64 `path:"id" doc:"Category id"`
	Force bool  `query:"force" doc:"Also delete every transaction, budget and goal in the category"`
}

// Dependencies counts the rows that reference a category.
type Dependencies struct {
	TransactionCount int64 `json:"transactionCount"`
	BudgetCount      int64 `json:"budgetCount"`
	GoalCount        int64 `json:"goalCount"`
}

type DeleteCategoryOutput struct {
	Body struct {
		Deleted bool         `json:"deleted"`
		Removed Dependencies `json:"removed" doc:"Dependent rows deleted with the category"`
	}
}

// WriteHandler handles category mutations.
type WriteHandler struct {
	CategoryService categoryService
}

func NewWriteHandler(svc categoryService) *WriteHandler {
	return &WriteHandler{CategoryService: svc}
}

func (h *WriteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Description:   "Creates a category owned by the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Renames or re-kinds a category owned by the caller. System categories are read-only.",
		Tags:        []string{"Categories"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category. Without force the request fails with 409 while anything references it.",
		Tags:        []string{"Categories"},
	}, h.delete)
}

func (h *WriteHandler) create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	kind, err := common.ParseKind("body.kind", input.Body.Kind)
	if err != nil {
		return nil, err
	}

	created, err := h.CategoryService.CreateCategory(ctx, input.OwnerID, input.Body.Name, kind)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to create category")
	}
	return &CategoryOutput{Status: http.StatusCreated, Body: toCategory(created)}, nil
}

func (h *WriteHandler) update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	kind, err := common.ParseKind("body.kind", input.Body.Kind)
	if err != nil {
		return nil, err
	}

	updated, err := h.CategoryService.UpdateCategory(ctx, input.ID, input.OwnerID, input.Body.Name, kind)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to update category")
	}
	return &CategoryOutput{Status: http.StatusOK, Body: toCategory(updated)}, nil
}

func (h *WriteHandler) delete(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	removed, err := h.CategoryService.DeleteCategory(ctx, input.ID, input.OwnerID, input.Force)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to delete category")
	}

	out := &DeleteCategoryOutput{}
	out.Body.Deleted = true
	out.Body.Removed = Dependencies{
		TransactionCount: removed.TransactionCount,
		BudgetCount:      removed.BudgetCount,
		GoalCount:        removed.GoalCount,
	}
	return out, nil
}
