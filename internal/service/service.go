package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs an action in its own unit of work and waits for the outcome.
// operator.OperatorDelegator is the production implementation.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Goal        *GoalService
	Report      *ReportService
}

// NewService wires the services over one backend. Mutations go through processor,
// reads go straight to store.
func NewService(store storage.Backend, processor Processor, budgetGuard *guard.BudgetGuard, clock calendar.Clock) *Service {
	return &Service{
		Category:    NewCategoryService(store, processor),
		Transaction: NewTransactionService(store, processor, budgetGuard),
		Budget:      NewBudgetService(store, processor, budgetGuard, clock),
		Goal:        NewGoalService(store, processor, clock),
		Report:      NewReportService(store, clock),
	}
}
