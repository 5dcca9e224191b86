// Package apperror defines the error taxonomy returned by the finance engine.
//
// Every error carries a machine-readable Code so the HTTP layer can map it to a
// status without inspecting messages. Errors with structured details
// (BudgetExceededError, InsufficientBudgetError, DependencyConflictError) build
// their human-readable message from those details.
package apperror

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown             Code = "UNKNOWN"
	CodeNotFound            Code = "NOT_FOUND"
	CodeForbidden           Code = "FORBIDDEN"
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeBudgetExceeded      Code = "BUDGET_EXCEEDED"
	CodeInsufficientBudget  Code = "INSUFFICIENT_BUDGET"
	CodeDependencyConflict  Code = "CATEGORY_IN_USE"
	CodeGoalAlreadyComplete Code = "GOAL_ALREADY_COMPLETE"
)

type coder interface {
	Code() Code
}

// Error is the generic domain error.
type Error struct {
	code    Code
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Code() Code {
	return e.code
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.code == t.code
	}
	return false
}

// ErrGoalAlreadyComplete is returned when funds are allocated to a completed goal.
var ErrGoalAlreadyComplete = &Error{code: CodeGoalAlreadyComplete, Message: "cannot allocate funds to a completed goal"}

// ErrNotFound matches every NotFound error via errors.Is.
var ErrNotFound = &Error{code: CodeNotFound, Message: "not found"}

// ErrForbidden matches every Forbidden error via errors.Is.
var ErrForbidden = &Error{code: CodeForbidden, Message: "forbidden"}

// NotFound reports a missing or invisible entity.
func NotFound(entity string) *Error {
	return &Error{code: CodeNotFound, Message: entity + " not found"}
}

// Forbidden reports an ownership or immutability violation.
func Forbidden(reason string) *Error {
	return &Error{code: CodeForbidden, Message: reason}
}

// Validation reports an invalid input field.
func Validation(field, reason string) *Error {
	return &Error{code: CodeValidation, Field: field, Message: fmt.Sprintf("invalid %s: %s", field, reason)}
}

// BudgetExceededError is returned when an expense would push a budget over its amount.
type BudgetExceededError struct {
	Budget       decimal.Decimal
	CurrentUsage decimal.Decimal
	Remaining    decimal.Decimal
	CategoryName string
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("this transaction would exceed your budget for %s. Budget: %s, Current usage: %s, Remaining: %s",
		e.CategoryName, e.Budget.StringFixed(2), e.CurrentUsage.StringFixed(2), e.Remaining.StringFixed(2))
}

func (e *BudgetExceededError) Code() Code {
	return CodeBudgetExceeded
}

// InsufficientBudgetError is returned when a budget amount is below what was already spent in its period.
type InsufficientBudgetError struct {
	Amount     decimal.Decimal
	TotalSpent decimal.Decimal
	Deficit    decimal.Decimal
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("budget amount (%s) is less than already spent amount (%s) for this category in the selected period; increase the budget by at least %s",
		e.Amount.StringFixed(2), e.TotalSpent.StringFixed(2), e.Deficit.StringFixed(2))
}

func (e *InsufficientBudgetError) Code() Code {
	return CodeInsufficientBudget
}

// DependencyConflictError is returned when a category still has referencing rows and force was not requested.
type DependencyConflictError struct {
	TransactionCount int64
	BudgetCount      int64
	GoalCount        int64
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("category is in use: %d transactions, %d budgets, %d goals",
		e.TransactionCount, e.BudgetCount, e.GoalCount)
}

func (e *DependencyConflictError) Code() Code {
	return CodeDependencyConflict
}

// CodeOf returns the code of the first coded error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeUnknown
}
