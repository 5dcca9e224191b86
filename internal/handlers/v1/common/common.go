// Package common holds the request plumbing shared by the v1 handlers.
package common

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// OwnerHeader identifies the caller. The gateway in front of the server authenticates
// the user and forwards their id.
type OwnerHeader struct {
	OwnerID int64 `header:"X-Owner-ID" required:"true" minimum:"1" doc:"Id of the authenticated owner"`
}

// ParseAmount parses a positive decimal money amount.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.Error400BadRequest("invalid "+field, &huma.ErrorDetail{
			Message:  "must be a decimal number",
			Location: "body." + field,
			Value:    value,
		})
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD day.
func ParseDate(location, value string) (time.Time, error) {
	day, err := calendar.Parse(value)
	if err != nil {
		return time.Time{}, huma.Error400BadRequest("invalid date", &huma.ErrorDetail{
			Message:  "must be formatted YYYY-MM-DD",
			Location: location,
			Value:    value,
		})
	}
	return day, nil
}

// ParseOptionalDate parses value when it is set.
func ParseOptionalDate(location, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := ParseDate(location, value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// ParseKind parses INCOME or EXPENSE.
func ParseKind(location, value string) (category.Kind, error) {
	kind, err := category.ParseKind(value)
	if err != nil {
		return "", huma.Error400BadRequest("invalid kind", &huma.ErrorDetail{
			Message:  "must be INCOME or EXPENSE",
			Location: location,
			Value:    value,
		})
	}
	return kind, nil
}

// FormatDate renders a calendar day.
func FormatDate(t time.Time) string {
	return t.Format(calendar.Layout)
}

// ToHumaError maps a domain error to an HTTP error. Unknown errors become a 500
// carrying only fallback; the cause goes to the request log entry instead of
// the response body.
func ToHumaError(ctx context.Context, err error, fallback string) error {
	var exceeded *apperror.BudgetExceededError
	var insufficient *apperror.InsufficientBudgetError
	var conflict *apperror.DependencyConflictError
	var domain *apperror.Error

	switch {
	case errors.As(err, &exceeded):
		return huma.NewError(http.StatusBadRequest, exceeded.Error(), &huma.ErrorDetail{
			Message:  string(apperror.CodeBudgetExceeded),
			Location: "body.amount",
			Value: map[string]string{
				"budget":       exceeded.Budget.StringFixed(2),
				"currentUsage": exceeded.CurrentUsage.StringFixed(2),
				"remaining":    exceeded.Remaining.StringFixed(2),
				"categoryName": exceeded.CategoryName,
			},
		})
	case errors.As(err, &insufficient):
		return huma.NewError(http.StatusBadRequest, insufficient.Error(), &huma.ErrorDetail{
			Message:  string(apperror.CodeInsufficientBudget),
			Location: "body.amount",
			Value: map[string]string{
				"totalSpent": insufficient.TotalSpent.StringFixed(2),
				"deficit":    insufficient.Deficit.StringFixed(2),
			},
		})
	case errors.As(err, &conflict):
		return huma.NewError(http.StatusConflict, conflict.Error(), &huma.ErrorDetail{
			Message:  string(apperror.CodeDependencyConflict),
			Location: "query.force",
			Value: map[string]int64{
				"transactionCount": conflict.TransactionCount,
				"budgetCount":      conflict.BudgetCount,
				"goalCount":        conflict.GoalCount,
			},
		})
	case errors.As(err, &domain):
		return huma.NewError(statusFor(domain.Code()), domain.Message, domainDetail(domain))
	default:
		if logData := logging.FromContext(ctx); logData != nil {
			logData.AddData("error", err.Error())
		}
		return huma.Error500InternalServerError(fallback)
	}
}

func statusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeForbidden:
		return http.StatusForbidden
	case apperror.CodeValidation, apperror.CodeGoalAlreadyComplete:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func domainDetail(e *apperror.Error) *huma.ErrorDetail {
	detail := &huma.ErrorDetail{Message: string(e.Code())}
	if e.Field != "" {
		detail.Location = "body." + e.Field
	}
	return detail
}
