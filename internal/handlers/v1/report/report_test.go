package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Dashboard(ctx context.Context, owner int64) (*transaction.Summary, error) {
	args := m.Called(ctx, owner)
	s, _ := args.Get(0).(*transaction.Summary)
	return s, args.Error(1)
}

func (m *mockReportService) MonthlyIncomeVsExpense(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error) {
	args := m.Called(ctx, owner)
	t, _ := args.Get(0).([]*transaction.MonthlyTotal)
	return t, args.Error(1)
}

func (m *mockReportService) SpendingByCategory(ctx context.Context, owner int64, start, end *time.Time) ([]*transaction.CategorySpend, error) {
	args := m.Called(ctx, owner, start, end)
	s, _ := args.Get(0).([]*transaction.CategorySpend)
	return s, args.Error(1)
}

func (m *mockReportService) FinancialTrends(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error) {
	args := m.Called(ctx, owner)
	t, _ := args.Get(0).([]*transaction.MonthlyTotal)
	return t, args.Error(1)
}

func (m *mockReportService) MonthlyReport(ctx context.Context, owner int64, year, month int) (*service.PeriodReport, error) {
	args := m.Called(ctx, owner, year, month)
	r, _ := args.Get(0).(*service.PeriodReport)
	return r, args.Error(1)
}

func (m *mockReportService) RangeReport(ctx context.Context, owner int64, start, end time.Time) (*service.PeriodReport, error) {
	args := m.Called(ctx, owner, start, end)
	r, _ := args.Get(0).(*service.PeriodReport)
	return r, args.Error(1)
}

func juneReport() *service.PeriodReport {
	june12 := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	return &service.PeriodReport{
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TotalIncome:  decimal.RequireFromString("2000"),
		TotalExpense: decimal.RequireFromString("120.5"),
		NetSavings:   decimal.RequireFromString("1879.5"),
		ExpensesByCategory: []*transaction.CategorySpend{
			{CategoryID: 5, CategoryName: "Food", Amount: decimal.RequireFromString("120.5")},
		},
		Daily: []*transaction.DailyTotal{
			{Date: june12, Income: decimal.RequireFromString("2000"), Expense: decimal.RequireFromString("120.5")},
		},
		Transactions: []*transaction.Transaction{
			{ID: 3, CategoryID: 5, CategoryName: "Food", Amount: decimal.RequireFromString("120.5"), Date: june12,
				Description: "groceries", Kind: category.KindExpense},
		},
		MonthlyTrend: []*transaction.MonthlyTotal{
			{Month: "2025-06", Income: decimal.RequireFromString("2000"), Expense: decimal.RequireFromString("120.5")},
		},
	}
}

func newTestAPI(t *testing.T, svc reportService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

const ownerHeader = "X-Owner-ID: 7"

func TestHTTP_Dashboard(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Dashboard", mock.Anything, int64(7)).Return(&transaction.Summary{
		CurrentBalance:       decimal.RequireFromString("1450"),
		MonthlyIncome:        decimal.RequireFromString("2000"),
		MonthlyExpense:       decimal.RequireFromString("550"),
		BudgetUsedPercentage: decimal.RequireFromString("25"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/dashboard", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"currentBalance":"1450.00","monthlyIncome":"2000.00","monthlyExpense":"550.00","budgetUsedPercentage":"25.00"}`,
		resp.Body.String())
}

func TestHTTP_Monthly(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("MonthlyIncomeVsExpense", mock.Anything, int64(7)).Return([]*transaction.MonthlyTotal{
		{Month: "2025-05", Income: decimal.RequireFromString("100"), Expense: decimal.RequireFromString("130")},
		{Month: "2025-06", Income: decimal.Zero, Expense: decimal.Zero},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/monthly", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlyOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Months, 2)
	assert.Equal(t, "-30.00", body.Body.Months[0].Savings)
}

func TestHTTP_Spending_WithRange(t *testing.T) {
	mockSvc := new(mockReportService)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	mockSvc.On("SpendingByCategory", mock.Anything, int64(7), &start, (*time.Time)(nil)).
		Return([]*transaction.CategorySpend{{CategoryID: 5, CategoryName: "Food", Amount: decimal.RequireFromString("320.5")}}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/spending-by-category?start=2025-05-01", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"amount":"320.50"`)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Spending_BadDate(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/spending-by-category?end=yesterday", ownerHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "SpendingByCategory")
}

func TestHTTP_Dashboard_Error(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Dashboard", mock.Anything, int64(7)).Return(nil, errors.New("timeout"))

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/dashboard", ownerHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Trends(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("FinancialTrends", mock.Anything, int64(7)).Return([]*transaction.MonthlyTotal{
		{Month: "2025-06", Income: decimal.RequireFromString("500"), Expense: decimal.RequireFromString("200")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/trends", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"months":[{"month":"2025-06","income":"500.00","expense":"200.00","savings":"300.00"}]}`, resp.Body.String())
}

func TestHTTP_MonthlyReport(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("MonthlyReport", mock.Anything, int64(7), 2025, 6).Return(juneReport(), nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/monthly-report?month=6&year=2025", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PeriodReportBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2000.00", body.TotalIncome)
	assert.Equal(t, "120.50", body.TotalExpense)
	assert.Equal(t, "1879.50", body.NetSavings)
	assert.Equal(t, Period{StartDate: "2025-06-01", EndDate: "2025-06-30"}, body.Period)
	require.Len(t, body.IncomeVsExpense, 1)
	assert.Equal(t, Day{Date: "2025-06-12", Income: "2000.00", Expense: "120.50"}, body.IncomeVsExpense[0])
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "EXPENSE", body.Transactions[0].Kind)
	require.Len(t, body.ExpensesByCategory, 1)
	require.Len(t, body.MonthlyTrend, 1)
	assert.Equal(t, "1879.50", body.MonthlyTrend[0].Savings)
}

func TestHTTP_MonthlyReport_MonthAndYearRequired(t *testing.T) {
	mockSvc := new(mockReportService)
	api := newTestAPI(t, mockSvc)

	for _, path := range []string{
		"/v1/reports/monthly-report?year=2025",
		"/v1/reports/monthly-report?month=6",
		"/v1/reports/monthly-report?month=13&year=2025",
	} {
		resp := api.Get(path, ownerHeader)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, path)
	}
	mockSvc.AssertNotCalled(t, "MonthlyReport")
}

func TestHTTP_RangeReport(t *testing.T) {
	mockSvc := new(mockReportService)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	mockSvc.On("RangeReport", mock.Anything, int64(7), start, end).Return(juneReport(), nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/range?startDate=2025-06-01&endDate=2025-06-30", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"netSavings":"1879.50"`)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RangeReport_BoundsRequired(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/range?startDate=2025-06-01", ownerHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "RangeReport")
}

func TestHTTP_RangeReport_InvertedRange(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("RangeReport", mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(nil, apperror.Validation("endDate", "must not be before startDate"))

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/range?startDate=2025-06-30&endDate=2025-06-01", ownerHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
