package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/common"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// reportService is the slice of service.ReportService the handlers use.
type reportService interface {
	Dashboard(ctx context.Context, owner int64) (*transaction.Summary, error)
	MonthlyIncomeVsExpense(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error)
	SpendingByCategory(ctx context.Context, owner int64, start, end *time.Time) ([]*transaction.CategorySpend, error)
	FinancialTrends(ctx context.Context, owner int64) ([]*transaction.MonthlyTotal, error)
	MonthlyReport(ctx context.Context, owner int64, year, month int) (*service.PeriodReport, error)
	RangeReport(ctx context.Context, owner int64, start, end time.Time) (*service.PeriodReport, error)
}

type OwnerInput struct {
	common.OwnerHeader
}

type DashboardOutput struct {
	Body struct {
		CurrentBalance       string `json:"currentBalance" doc:"All income minus all expenses"`
		MonthlyIncome        string `json:"monthlyIncome" doc:"Income this month"`
		MonthlyExpense       string `json:"monthlyExpense" doc:"Expenses this month"`
		BudgetUsedPercentage string `json:"budgetUsedPercentage" doc:"Spend over amount across active budgets"`
	}
}

// Month is income and expense for one calendar month.
type Month struct {
	Month   string `json:"month" doc:"YYYY-MM"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Savings string `json:"savings" doc:"Income minus expense"`
}

type MonthlyOutput struct {
	Body struct {
		Months []Month `json:"months" doc:"The last six months, oldest first"`
	}
}

type SpendingInput struct {
	common.OwnerHeader
	Start string `query:"start" doc:"First day, YYYY-MM-DD, defaults to the start of this month"`
	End   string `query:"end" doc:"Last day, YYYY-MM-DD, defaults to the end of this month"`
}

// CategorySpend is the expense total for one category.
type CategorySpend struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Amount       string `json:"amount"`
}

type SpendingOutput struct {
	Body struct {
		Categories []CategorySpend `json:"categories" doc:"Largest spend first"`
	}
}

type TrendsOutput struct {
	Body struct {
		Months []Month `json:"months" doc:"The last twelve months, oldest first"`
	}
}

type MonthlyReportInput struct {
	common.OwnerHeader
	Month int `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1 to 12"`
	Year  int `query:"year" required:"true" minimum:"1" maximum:"9999" doc:"Calendar year"`
}

type RangeReportInput struct {
	common.OwnerHeader
	StartDate string `query:"startDate" required:"true" doc:"First day, YYYY-MM-DD"`
	EndDate   string `query:"endDate" required:"true" doc:"Last day, YYYY-MM-DD"`
}

// Day is income and expense for one day with transactions.
type Day struct {
	Date    string `json:"date" doc:"YYYY-MM-DD"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// Transaction is one row of a period report.
type Transaction struct {
	ID           int64  `json:"id"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Kind         string `json:"kind"`
}

type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type PeriodReportBody struct {
	TotalIncome        string          `json:"totalIncome"`
	TotalExpense       string          `json:"totalExpense"`
	NetSavings         string          `json:"netSavings" doc:"Income minus expense over the period"`
	ExpensesByCategory []CategorySpend `json:"expensesByCategory" doc:"Largest spend first"`
	IncomeVsExpense    []Day           `json:"incomeVsExpense" doc:"Days with transactions, oldest first"`
	Transactions       []Transaction   `json:"transactions" doc:"Newest first"`
	MonthlyTrend       []Month         `json:"monthlyTrend" doc:"The twelve months ending this month"`
	Period             Period          `json:"period"`
}

type PeriodReportOutput struct {
	Body PeriodReportBody
}

// Handler serves the read-only reports.
type Handler struct {
	ReportService reportService
}

func NewHandler(svc reportService) *Handler {
	return &Handler{ReportService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/reports/dashboard",
		Summary:     "Dashboard summary",
		Tags:        []string{"Reports"},
	}, h.dashboard)
	huma.Register(api, huma.Operation{
		OperationID: "monthly-income-vs-expense",
		Method:      http.MethodGet,
		Path:        "/v1/reports/monthly",
		Summary:     "Monthly income vs expense",
		Tags:        []string{"Reports"},
	}, h.monthly)
	huma.Register(api, huma.Operation{
		OperationID: "spending-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/reports/spending-by-category",
		Summary:     "Spending by category",
		Tags:        []string{"Reports"},
	}, h.spending)
	huma.Register(api, huma.Operation{
		OperationID: "financial-trends",
		Method:      http.MethodGet,
		Path:        "/v1/reports/trends",
		Summary:     "Financial trends",
		Description: "Income, expense and savings for each of the last twelve months.",
		Tags:        []string{"Reports"},
	}, h.trends)
	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/monthly-report",
		Summary:     "Monthly report",
		Tags:        []string{"Reports"},
	}, h.monthlyReport)
	huma.Register(api, huma.Operation{
		OperationID: "range-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/range",
		Summary:     "Report by date range",
		Tags:        []string{"Reports"},
	}, h.rangeReport)
}

func (h *Handler) dashboard(ctx context.Context, input *OwnerInput) (*DashboardOutput, error) {
	summary, err := h.ReportService.Dashboard(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build dashboard")
	}
	out := &DashboardOutput{}
	out.Body.CurrentBalance = summary.CurrentBalance.StringFixed(2)
	out.Body.MonthlyIncome = summary.MonthlyIncome.StringFixed(2)
	out.Body.MonthlyExpense = summary.MonthlyExpense.StringFixed(2)
	out.Body.BudgetUsedPercentage = summary.BudgetUsedPercentage.StringFixed(2)
	return out, nil
}

func (h *Handler) monthly(ctx context.Context, input *OwnerInput) (*MonthlyOutput, error) {
	totals, err := h.ReportService.MonthlyIncomeVsExpense(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build monthly report")
	}
	out := &MonthlyOutput{}
	out.Body.Months = toMonths(totals)
	return out, nil
}

func (h *Handler) trends(ctx context.Context, input *OwnerInput) (*TrendsOutput, error) {
	totals, err := h.ReportService.FinancialTrends(ctx, input.OwnerID)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build financial trends")
	}
	out := &TrendsOutput{}
	out.Body.Months = toMonths(totals)
	return out, nil
}

func (h *Handler) monthlyReport(ctx context.Context, input *MonthlyReportInput) (*PeriodReportOutput, error) {
	report, err := h.ReportService.MonthlyReport(ctx, input.OwnerID, input.Year, input.Month)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build monthly report")
	}
	return toPeriodReport(ctx, report), nil
}

func (h *Handler) rangeReport(ctx context.Context, input *RangeReportInput) (*PeriodReportOutput, error) {
	start, err := common.ParseDate("query.startDate", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := common.ParseDate("query.endDate", input.EndDate)
	if err != nil {
		return nil, err
	}

	report, err := h.ReportService.RangeReport(ctx, input.OwnerID, start, end)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build report")
	}
	return toPeriodReport(ctx, report), nil
}

func toMonths(totals []*transaction.MonthlyTotal) []Month {
	months := make([]Month, len(totals))
	for i, m := range totals {
		months[i] = Month{
			Month:   m.Month,
			Income:  m.Income.StringFixed(2),
			Expense: m.Expense.StringFixed(2),
			Savings: m.Income.Sub(m.Expense).StringFixed(2),
		}
	}
	return months
}

func toCategorySpends(spends []*transaction.CategorySpend) []CategorySpend {
	out := make([]CategorySpend, len(spends))
	for i, s := range spends {
		out[i] = CategorySpend{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Amount:       s.Amount.StringFixed(2),
		}
	}
	return out
}

func toPeriodReport(ctx context.Context, report *service.PeriodReport) *PeriodReportOutput {
	if logData := logging.FromContext(ctx); logData != nil {
		logData.AddData("transactionCount", len(report.Transactions))
	}

	body := PeriodReportBody{
		TotalIncome:        report.TotalIncome.StringFixed(2),
		TotalExpense:       report.TotalExpense.StringFixed(2),
		NetSavings:         report.NetSavings.StringFixed(2),
		ExpensesByCategory: toCategorySpends(report.ExpensesByCategory),
		IncomeVsExpense:    make([]Day, len(report.Daily)),
		Transactions:       make([]Transaction, len(report.Transactions)),
		MonthlyTrend:       toMonths(report.MonthlyTrend),
		Period: Period{
			StartDate: common.FormatDate(report.StartDate),
			EndDate:   common.FormatDate(report.EndDate),
		},
	}
	for i, d := range report.Daily {
		body.IncomeVsExpense[i] = Day{
			Date:    common.FormatDate(d.Date),
			Income:  d.Income.StringFixed(2),
			Expense: d.Expense.StringFixed(2),
		}
	}
	for i, t := range report.Transactions {
		body.Transactions[i] = Transaction{
			ID:           t.ID,
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Amount:       t.Amount.StringFixed(2),
			Date:         common.FormatDate(t.Date),
			Description:  t.Description,
			Kind:         string(t.Kind),
		}
	}
	return &PeriodReportOutput{Body: body}
}

func (h *Handler) spending(ctx context.Context, input *SpendingInput) (*SpendingOutput, error) {
	start, err := common.ParseOptionalDate("query.start", input.Start)
	if err != nil {
		return nil, err
	}
	end, err := common.ParseOptionalDate("query.end", input.End)
	if err != nil {
		return nil, err
	}

	spends, err := h.ReportService.SpendingByCategory(ctx, input.OwnerID, start, end)
	if err != nil {
		return nil, common.ToHumaError(ctx, err, "failed to build spending report")
	}
	if logData := logging.FromContext(ctx); logData != nil {
		logData.AddData("categoryCount", len(spends))
	}

	out := &SpendingOutput{}
	out.Body.Categories = toCategorySpends(spends)
	return out, nil
}
