package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: CodeUnknown},
		{name: "not found", err: NotFound("category"), want: CodeNotFound},
		{name: "wrapped forbidden", err: fmt.Errorf("delete: %w", Forbidden("nope")), want: CodeForbidden},
		{name: "validation", err: Validation("amount", "must be positive"), want: CodeValidation},
		{name: "goal complete", err: ErrGoalAlreadyComplete, want: CodeGoalAlreadyComplete},
		{name: "budget exceeded", err: &BudgetExceededError{}, want: CodeBudgetExceeded},
		{name: "insufficient", err: fmt.Errorf("x: %w", &InsufficientBudgetError{}), want: CodeInsufficientBudget},
		{name: "dependency", err: &DependencyConflictError{TransactionCount: 1}, want: CodeDependencyConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("budget"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "load: budget not found", err.Error())
}

func TestBudgetExceededError_Message(t *testing.T) {
	err := &BudgetExceededError{
		Budget:       decimal.RequireFromString("1000"),
		CurrentUsage: decimal.RequireFromString("1000"),
		Remaining:    decimal.Zero,
		CategoryName: "Groceries",
	}

	assert.Equal(t,
		"this transaction would exceed your budget for Groceries. Budget: 1000.00, Current usage: 1000.00, Remaining: 0.00",
		err.Error())
}

func TestInsufficientBudgetError_Message(t *testing.T) {
	err := &InsufficientBudgetError{
		Amount:     decimal.RequireFromString("400"),
		TotalSpent: decimal.RequireFromString("500"),
		Deficit:    decimal.RequireFromString("100"),
	}

	assert.Contains(t, err.Error(), "(400.00)")
	assert.Contains(t, err.Error(), "(500.00)")
	assert.Contains(t, err.Error(), "at least 100.00")
}
