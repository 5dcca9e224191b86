package actions

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// IAction is one unit of work. Perform runs inside a single database transaction
// which the operator commits when it returns nil and rolls back otherwise.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

const (
	maxNameLength        = 100
	maxDescriptionLength = 255
)

// Amounts are stored as NUMERIC(14, 2). Finer amounts are rejected, never rounded.
func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.Validation(field, "must be greater than zero")
	}
	return requireCents(field, amount)
}

func requireNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperror.Validation(field, "must not be negative")
	}
	return requireCents(field, amount)
}

func requireCents(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(2)) {
		return apperror.Validation(field, "must have at most two decimal places")
	}
	return nil
}

func requireKind(kind category.Kind) error {
	if _, err := category.ParseKind(string(kind)); err != nil {
		return apperror.Validation("kind", "must be INCOME or EXPENSE")
	}
	return nil
}

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.Validation(field, "must not be empty")
	}
	if len(name) > maxNameLength {
		return "", apperror.Validation(field, "must be at most 100 characters")
	}
	return name, nil
}

// visibleCategory loads a category the owner may reference.
func visibleCategory(ctx context.Context, writer *storage.Writer, id, owner int64) (*category.Category, error) {
	c, err := writer.Categories.FindVisible(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("category")
	}
	return c, nil
}
