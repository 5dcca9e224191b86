package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/memory"
)

func newTestRest(t *testing.T) (*Rest, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	backend := memory.New()
	delegator := operator.NewOperatorDelegator(backend, logger, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	clock := func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return &Rest{
		Logger:  logger,
		Port:    "0",
		Service: service.NewService(backend, delegator, guard.NewBudgetGuard(true, clock, logger), clock),
	}, hook
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Owner-ID", "1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_Status(t *testing.T) {
	rest, hook := newTestRest(t)

	w := do(t, rest.Handler(), http.MethodGet, "/status", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Handler.Status.Complete", hook.LastEntry().Message)
}

func TestHandler_BudgetFlow(t *testing.T) {
	rest, _ := newTestRest(t)
	h := rest.Handler()

	w := do(t, h, http.MethodPost, "/v1/budgets",
		`{"categoryId":5,"amount":"50","startDate":"2025-06-01","endDate":"2025-06-30"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/v1/transactions",
		`{"categoryId":5,"amount":"40","date":"2025-06-10","description":"groceries","kind":"EXPENSE"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/v1/transactions",
		`{"categoryId":5,"amount":"10.01","date":"2025-06-11","description":"snacks","kind":"EXPENSE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceed your budget for Food")

	w = do(t, h, http.MethodGet, "/v1/budgets/vs-actual", "")
	require.Equal(t, http.StatusOK, w.Code)
	var usage struct {
		Budgets []struct {
			Actual string `json:"actual"`
		} `json:"budgets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usage))
	require.Len(t, usage.Budgets, 1)
	assert.Equal(t, "40.00", usage.Budgets[0].Actual)
}

func TestHandler_MissingOwnerHeader(t *testing.T) {
	rest, _ := newTestRest(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	w := httptest.NewRecorder()
	rest.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
