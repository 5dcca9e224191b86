package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionInput carries the mutable fields of a transaction.
type TransactionInput struct {
	OwnerID     int64
	CategoryID  int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        category.Kind
}

// TransactionQuery narrows a transaction listing. Zero values do not filter.
type TransactionQuery struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Kind       *category.Kind
}

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   storage.Backend
	processor Processor
	guard     *guard.BudgetGuard
}

func NewTransactionService(store storage.Backend, processor Processor, budgetGuard *guard.BudgetGuard) *TransactionService {
	return &TransactionService{storage: store, processor: processor, guard: budgetGuard}
}

// CreateTransaction records a transaction. Expenses must fit the active budget of their category.
func (s *TransactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*transaction.Transaction, error) {
	action := &actions.CreateTransaction{
		OwnerID:     in.OwnerID,
		CategoryID:  in.CategoryID,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		Kind:        in.Kind,
		Guard:       s.guard,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, in TransactionInput) (*transaction.Transaction, error) {
	action := &actions.UpdateTransaction{
		ID:          id,
		OwnerID:     in.OwnerID,
		CategoryID:  in.CategoryID,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		Kind:        in.Kind,
		Guard:       s.guard,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id, owner int64) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id, OwnerID: owner})
}

func (s *TransactionService) GetTransaction(ctx context.Context, id, owner int64) (*transaction.Transaction, error) {
	t, err := s.storage.Read().Transactions.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound("transaction")
	}
	return t, nil
}

// ListTransactions returns a page of owner's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, owner int64, query TransactionQuery, cursor *TransactionCursor) ([]*transaction.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	filter := &transaction.TransactionFilter{
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		CategoryID: query.CategoryID,
		Kind:       query.Kind,
		Limit:      limit,
		Offset:     offset,
	}

	rows, err := s.storage.Read().Transactions.List(ctx, owner, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return rows, nextCursor, nil
}
