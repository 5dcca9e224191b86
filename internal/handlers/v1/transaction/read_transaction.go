package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type ListTransactionsInput struct {
	common.OwnerHeader
	Start      string `query:"start" doc:"First day to include, YYYY-MM-DD"`
	End        string `query:"end" doc:"Last day to include, YYYY-MM-DD"`
	CategoryID int64  `query:"categoryId" minimum:"0" doc:"Only this category"`
	Kind       string `query:"kind" doc:"Only INCOME or EXPENSE"`
	Position   int    `query:"position" minimum:"0" doc:"Offset from a previous nextCursor"`
	Limit      int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

// ListTransactionsCursor points at the next page.
type ListTransactionsCursor struct {
	Position int `json:"position" doc:"Offset of the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type GetTransactionInput struct {
	common.OwnerHeader
	ID int64 `path:"id" doc:"Transaction id"`
}

type GetTransactionOutput struct {
	Body Transaction
}

// ReadHandler serves transaction lookups.
type ReadHandler struct {
	TransactionService transactionService
}

func NewReadHandler(svc transactionService) *ReadHandler {
	return &ReadHandler{TransactionService: svc}
}

func (h *ReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of the caller's transactions, optionally limited to a date range.",
		Tags:        []string{"Transactions"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.get)
}

// parseListTransactionsInput parses the filters. Without position or limit the
// service starts at the first page with its default size.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, *service.TransactionCursor, error) {
	var query service.TransactionQuery
	var err error
	if query.StartDate, err = common.ParseOptionalDate("query.start", input.Start); err != nil {
		return query, nil, err
	}
	if query.EndDate, err = common.ParseOptionalDate("query.end", input.End); err != nil {
		return query, nil, err
	}
	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return query, nil, huma.Error400BadRequest("start must not be after end")
	}
	if input.CategoryID > 0 {
		query.CategoryID = &input.CategoryID
	}
	if input.Kind != "" {
		kind, err := common.ParseKind("query.kind", input.Kind)
		if err != nil {
			return query, nil, err
		}
		query.Kind = &kind
	}

	if input.Position == 0 && input.Limit == 0 {
		return query, nil, nil
	}
	return query, &service.TransactionCursor{Position: input.Position, Limit: input.Limit}, nil
}

func (h *ReadHandler) list(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.FromContext(ctx)
	query, cursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, input.OwnerID, query, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = toTransaction(tx)
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

func (h *ReadHandler) get(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	tx, err := h.TransactionService.GetTransaction(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to get transaction")
	}
	return &GetTransactionOutput{Body: toTransaction(tx)}, nil
}

