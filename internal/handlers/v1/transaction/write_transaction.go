package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
)

// TransactionBody is the request body for creating or replacing a transaction.
type TransactionBody struct {
	CategoryID  int64  `json:"categoryId" required:"true" minimum:"1" doc:"Category id"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Date        string `json:"date" required:"true" doc:"Transaction day, YYYY-MM-DD"`
	Description string `json:"description,omitempty" maxLength:"255" doc:"Free text description"`
	Kind        string `json:"kind" required:"true" doc:"INCOME or EXPENSE"`
}

type CreateTransactionInput struct {
	common.OwnerHeader
	Body TransactionBody
}

type UpdateTransactionInput struct {
	common.OwnerHeader
	ID   int64 `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

type TransactionOutput struct {
	Status int
	Body   Transaction
}

type DeleteTransactionInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Transaction id"`
}

type DeleteTransactionOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// WriteHandler handles transaction mutations.
type WriteHandler struct {
	TransactionService transactionService
}

func NewWriteHandler(svc transactionService) *WriteHandler {
	return &WriteHandler{TransactionService: svc}
}

func (h *WriteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction. Expenses are rejected when they would exceed the active budget of their category.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces a transaction. Only the increase over what the budget already counts is checked.",
		Tags:        []string{"Transactions"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions/{id}",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
	}, h.delete)
}

// parseTransactionBody parses and validates the API input.
func parseTransactionBody(owner int64, body TransactionBody) (service.TransactionInput, error) {
	amount, err := common.ParseAmount("amount", body.Amount)
	if err != nil {
		return service.TransactionInput{}, err
	}
	date, err := common.ParseDate("body.date", body.Date)
	if err != nil {
		return service.TransactionInput{}, err
	}
	kind, err := common.ParseKind("body.kind", body.Kind)
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		OwnerID:     owner,
		CategoryID:  body.CategoryID,
		Amount:      amount,
		Date:        date,
		Description: body.Description,
		Kind:        kind,
	}, nil
}

func (h *WriteHandler) create(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	in, err := parseTransactionBody(input.OwnerID, input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.CreateTransaction(ctx, in)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to create transaction")
	}
	return &TransactionOutput{Status: http.StatusCreated, Body: toTransaction(created)}, nil
}

func (h *WriteHandler) update(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	in, err := parseTransactionBody(input.OwnerID, input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, input.ID, in)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to update transaction")
	}
	return &TransactionOutput{Status: http.StatusOK, Body: toTransaction(updated)}, nil
}

func (h *WriteHandler) delete(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if err := h.TransactionService.DeleteTransaction(ctx, input.ID, input.OwnerID); err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to delete transaction")
	}
	out := &DeleteTransactionOutput{}
	out.Body.Deleted = true
	return out, nil
}
