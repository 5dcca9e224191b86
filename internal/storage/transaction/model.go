package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/category"
)

// Transaction represents a transaction record with its category name joined in.
type Transaction struct {
	ID           int64
	OwnerID      int64
	CategoryID   int64
	CategoryName string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Kind         category.Kind
	CreatedAt    time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID     int64
	CategoryID  int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        category.Kind
}

// TransactionUpdate replaces every mutable field of a transaction.
type TransactionUpdate struct {
	CategoryID  int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        category.Kind
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Kind       *category.Kind
	Limit      int
	Offset     int
}

// Summary is the dashboard aggregate for one owner.
type Summary struct {
	CurrentBalance       decimal.Decimal
	MonthlyIncome        decimal.Decimal
	MonthlyExpense       decimal.Decimal
	BudgetUsedPercentage decimal.Decimal
}

// MonthlyTotal is income and expense for one calendar month ("YYYY-MM").
type MonthlyTotal struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailyTotal is income and expense for one calendar day.
type DailyTotal struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategorySpend is the expense total for one category.
type CategorySpend struct {
	CategoryID   int64
	CategoryName string
	Amount       decimal.Decimal
}

// ITransactionTable defines the interface for transaction storage operations.
// Finders return nil, nil when no row matches.
type ITransactionTable interface {
	FindByID(ctx context.Context, id int64, owner int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, owner int64, update *TransactionUpdate) (int64, error)
	Delete(ctx context.Context, id int64, owner int64) (int64, error)
	DeleteByCategory(ctx context.Context, categoryID int64) (int64, error)
	SumExpenses(ctx context.Context, owner int64, categoryID int64, start, end time.Time) (decimal.Decimal, error)
	List(ctx context.Context, owner int64, filter *TransactionFilter) ([]*Transaction, error)
	Summary(ctx context.Context, owner int64, today time.Time) (*Summary, error)
	MonthlyTotals(ctx context.Context, owner int64, since time.Time) ([]*MonthlyTotal, error)
	DailyTotals(ctx context.Context, owner int64, start, end time.Time) ([]*DailyTotal, error)
	SpendingByCategory(ctx context.Context, owner int64, start, end time.Time) ([]*CategorySpend, error)
}

type transactionRow struct {
	ID           int64           `db:"id"`
	OwnerID      int64           `db:"owner_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"transaction_date"`
	Description  string          `db:"description"`
	Kind         string          `db:"kind"`
	CreatedAt    time.Time       `db:"created_at"`
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		Date:         row.Date.UTC(),
		Description:  row.Description,
		Kind:         category.Kind(row.Kind),
		CreatedAt:    row.CreatedAt,
	}
}
