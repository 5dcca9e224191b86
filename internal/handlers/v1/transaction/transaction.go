package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           int64  `json:"id" doc:"Transaction id"`
	CategoryID   int64  `json:"categoryId" doc:"Category id"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Date         string `json:"date" doc:"Transaction day, YYYY-MM-DD"`
	Description  string `json:"description" doc:"Free text description"`
	Kind         string `json:"kind" enum:"INCOME,EXPENSE" doc:"INCOME or EXPENSE"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toTransaction(t *transaction.Transaction) Transaction {
	return Transaction{
		ID:           t.ID,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Amount:       t.Amount.StringFixed(2),
		Date:         common.FormatDate(t.Date),
		Description:  t.Description,
		Kind:         string(t.Kind),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

// transactionService is the slice of service.TransactionService the handlers use.
type transactionService interface {
	CreateTransaction(ctx context.Context, in service.TransactionInput) (*transaction.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, in service.TransactionInput) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id, owner int64) error
	GetTransaction(ctx context.Context, id, owner int64) (*transaction.Transaction, error)
	ListTransactions(ctx context.Context, owner int64, query service.TransactionQuery, cursor *service.TransactionCursor) ([]*transaction.Transaction, *service.TransactionCursor, error)
}
