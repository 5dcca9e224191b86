package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

const (
	trendMonths          = 6
	financialTrendMonths = 12
)

// PeriodReport is the full report over one date range.
type PeriodReport struct {
	StartDate          time.Time
	EndDate            time.Time
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	NetSavings         decimal.Decimal
	ExpensesByCategory []*transaction.CategorySpend
	// Daily holds only days with transactions, oldest first.
	Daily        []*transaction.DailyTotal
	Transactions []*transaction.Transaction
	// MonthlyTrend always covers the twelve months ending today, whatever the period.
	MonthlyTrend []*transaction.MonthlyTotal
}

// ReportService builds the read-only dashboards.
type ReportService struct {
	storage storage.Backend
	clock   calendar.Clock
}

func NewReportService(store storage.Backend, clock calendar.Clock) *ReportService {
	return &ReportService{storage: store, clock: clock}
}

// Dashboard returns the balance, this month's income and expense and how much
// of the active budgets is used.
func (s *ReportService) Dashboard(ctx context.Context, owner int64) (*transaction.Summary, error) {
	return s.storage.Read().Transactions.Summary(ctx, owner, s.clock.Today())
}

// MonthlyIncomeVsExpense returns one entry per month for the last six months,
// oldest first, including months without transactions.
func (s *ReportService) MonthlyIncomeVsExpense(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error) {
	return s.lastMonths(ctx, owner, trendMonths)
}

func (s *ReportService) lastMonths(ctx context.Context, owner int64, months int) ([]*transaction.MonthlyTotal, error) {
	first, _ := calendar.MonthBounds(s.clock.Today())
	since := first.AddDate(0, -(months - 1), 0)

	totals, err := s.storage.Read().Transactions.MonthlyTotals(ctx, owner, since)
	if err != nil {
		return nil, err
	}
	return fillMonths(since, months, totals), nil
}

// FinancialTrends returns income and expense for the last twelve months,
// oldest first, including months without transactions.
func (s *ReportService) FinancialTrends(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error) {
	return s.lastMonths(ctx, owner, financialTrendMonths)
}

// MonthlyReport builds the period report for one calendar month.
func (s *ReportService) MonthlyReport(ctx context.Context, owner int64, year, month int) (*PeriodReport, error) {
	if month < 1 || month > 12 {
		return nil, apperror.Validation("month", "must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, apperror.Validation("year", "must be between 1 and 9999")
	}
	start, end := calendar.MonthBounds(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	return s.RangeReport(ctx, owner, start, end)
}

// RangeReport builds the period report for [start, end].
func (s *ReportService) RangeReport(ctx context.Context, owner int64, start, end time.Time) (*PeriodReport, error) {
	start, end = calendar.DateOnly(start), calendar.DateOnly(end)
	if end.Before(start) {
		return nil, apperror.Validation("endDate", "must not be before startDate")
	}
	table := s.storage.Read().Transactions

	daily, err := table.DailyTotals(ctx, owner, start, end)
	if err != nil {
		return nil, err
	}
	byCategory, err := table.SpendingByCategory(ctx, owner, start, end)
	if err != nil {
		return nil, err
	}
	txs, err := table.List(ctx, owner, &transaction.TransactionFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, err
	}
	trend, err := s.lastMonths(ctx, owner, financialTrendMonths)
	if err != nil {
		return nil, err
	}

	report := &PeriodReport{
		StartDate:          start,
		EndDate:            end,
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		ExpensesByCategory: byCategory,
		Daily:              daily,
		Transactions:       txs,
		MonthlyTrend:       trend,
	}
	for _, day := range daily {
		report.TotalIncome = report.TotalIncome.Add(day.Income)
		report.TotalExpense = report.TotalExpense.Add(day.Expense)
	}
	report.NetSavings = report.TotalIncome.Sub(report.TotalExpense)
	return report, nil
}

// SpendingByCategory totals expenses per category between start and end.
// Nil bounds default to the current month.
func (s *ReportService) SpendingByCategory(ctx context.Context, owner int64, start, end *time.Time) ([]*transaction.CategorySpend, error) {
	monthStart, monthEnd := calendar.MonthBounds(s.clock.Today())
	if start != nil {
		monthStart = *start
	}
	if end != nil {
		monthEnd = *end
	}
	return s.storage.Read().Transactions.SpendingByCategory(ctx, owner, monthStart, monthEnd)
}

func fillMonths(since time.Time, months int, totals []*transaction.MonthlyTotal) []*transaction.MonthlyTotal {
	byMonth := make(map[string]*transaction.MonthlyTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}
	out := make([]*transaction.MonthlyTotal, 0, months)
	for i := range months {
		key := since.AddDate(0, i, 0).Format("2006-01")
		if t, ok := byMonth[key]; ok {
			out = append(out, t)
			continue
		}
		out = append(out, &transaction.MonthlyTotal{Month: key, Income: decimal.Zero, Expense: decimal.Zero})
	}
	return out
}
