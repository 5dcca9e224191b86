package storage

import (
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Tables groups the table accessors bound to one executor.
type Tables struct {
	Categories   category.ICategoryTable
	Budgets      budget.IBudgetTable
	Transactions transaction.ITransactionTable
	Goals        goal.IGoalTable
}

// Reader serves queries outside of a transaction.
type Reader struct {
	Tables
}

func NewReader(tables Tables) *Reader {
	return &Reader{Tables: tables}
}
