package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID int64  `json:"categoryId" required:"true" minimum:"1" doc:"Category id"`
	Amount     string `json:"amount" required:"true" doc:"Positive spending ceiling"`
	StartDate  string `json:"startDate" required:"true" doc:"First day of the period, YYYY-MM-DD"`
	EndDate    string `json:"endDate" required:"true" doc:"Last day of the period, YYYY-MM-DD"`
}

// UpdateBudgetBody changes only the fields that are set.
type UpdateBudgetBody struct {
	Amount    string `json:"amount,omitempty" doc:"Positive spending ceiling"`
	StartDate string `json:"startDate,omitempty" doc:"First day of the period, YYYY-MM-DD"`
	EndDate   string `json:"endDate,omitempty" doc:"Last day of the period, YYYY-MM-DD"`
}

type CreateBudgetInput struct {
	common.OwnerHeader
	Body CreateBudgetBody
}

type UpdateBudgetInput struct {
	common.OwnerHeader
	ID   int64 `path:"id" doc:"Budget id"`
	Body UpdateBudgetBody
}

type BudgetOutput struct {
	Status int
	Body   Budget
}

type DeleteBudgetInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Budget id"`
}

type DeleteBudgetOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// WriteHandler handles budget mutations.
type WriteHandler struct {
	BudgetService budgetService
}

func NewWriteHandler(svc budgetService) *WriteHandler {
	return &WriteHandler{BudgetService: svc}
}

func (h *WriteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budgets",
		Summary:       "Create budget",
		Description:   "Creates a spending ceiling. The amount must cover what was already spent in the period.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budgets/{id}",
		Summary:     "Update budget",
		Description: "Changes the amount or period of a budget. Unset fields keep their value.",
		Tags:        []string{"Budgets"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budgets/{id}",
		Summary:     "Delete budget",
		Tags:        []string{"Budgets"},
	}, h.delete)
}

func (h *WriteHandler) create(ctx context.Context, input *CreateBudgetInput) (*BudgetOutput, error) {
	amount, err := common.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}
	start, err := common.ParseDate("body.startDate", input.Body.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := common.ParseDate("body.endDate", input.Body.EndDate)
	if err != nil {
		return nil, err
	}

	created, err := h.BudgetService.CreateBudget(ctx, service.BudgetInput{
		OwnerID:    input.OwnerID,
		CategoryID: input.Body.CategoryID,
		Amount:     amount,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to create budget")
	}
	return &BudgetOutput{Status: http.StatusCreated, Body: toBudget(created)}, nil
}

// parseUpdateBudgetBody turns the set fields into a partial update.
func parseUpdateBudgetBody(body UpdateBudgetBody) (budget.BudgetUpdate, error) {
	var update budget.BudgetUpdate
	if body.Amount != "" {
		amount, err := common.ParseAmount("amount", body.Amount)
		if err != nil {
			return update, err
		}
		update.Amount = omit.From(amount)
	}
	if body.StartDate != "" {
		start, err := common.ParseDate("body.startDate", body.StartDate)
		if err != nil {
			return update, err
		}
		update.StartDate = omit.From(start)
	}
	if body.EndDate != "" {
		end, err := common.ParseDate("body.endDate", body.EndDate)
		if err != nil {
			return update, err
		}
		update.EndDate = omit.From(end)
	}
	return update, nil
}

func (h *WriteHandler) update(ctx context.Context, input *UpdateBudgetInput) (*BudgetOutput, error) {
	update, err := parseUpdateBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.BudgetService.UpdateBudget(ctx, input.ID, input.OwnerID, update)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to update budget")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: toBudget(updated)}, nil
}

func (h *WriteHandler) delete(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	if err := h.BudgetService.DeleteBudget(ctx, input.ID, input.OwnerID); err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to delete budget")
	}
	out := &DeleteBudgetOutput{}
	out.Body.Deleted = true
	return out, nil
}
