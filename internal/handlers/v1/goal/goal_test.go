package goal

import (
	"context"
	"encoding/json"
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
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) CreateGoal(ctx context.Context, in service.GoalInput) (*goal.Goal, error) {
	args := m.Called(ctx, in)
	g, _ := args.Get(0).(*goal.Goal)
	return g, args.Error(1)
}

func (m *mockGoalService) UpdateGoal(ctx context.Context, id, owner int64, update goal.GoalUpdate) (*service.GoalResult, error) {
	args := m.Called(ctx, id, owner, update)
	r, _ := args.Get(0).(*service.GoalResult)
	return r, args.Error(1)
}

func (m *mockGoalService) AllocateToGoal(ctx context.Context, owner int64, amount decimal.Decimal, goalID *int64) (*service.GoalResult, error) {
	args := m.Called(ctx, owner, amount, goalID)
	r, _ := args.Get(0).(*service.GoalResult)
	return r, args.Error(1)
}

func (m *mockGoalService) DeleteGoal(ctx context.Context, id, owner int64) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *mockGoalService) GetGoal(ctx context.Context, id, owner int64) (*goal.Goal, error) {
	args := m.Called(ctx, id, owner)
	g, _ := args.Get(0).(*goal.Goal)
	return g, args.Error(1)
}

func (m *mockGoalService) ListGoals(ctx context.Context, owner int64) ([]*goal.Goal, error) {
	args := m.Called(ctx, owner)
	g, _ := args.Get(0).([]*goal.Goal)
	return g, args.Error(1)
}

func newTestAPI(t *testing.T, svc goalService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewWriteHandler(svc).Register(api)
	NewReadHandler(svc).Register(api)
	return api
}

const ownerHeader = "X-Owner-ID: 7"

func laptop(current string, completed bool) *goal.Goal {
	return &goal.Goal{
		ID:            9,
		OwnerID:       7,
		Name:          "Laptop",
		TargetAmount:  decimal.RequireFromString("1000"),
		CurrentAmount: decimal.RequireFromString(current),
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Completed:     completed,
	}
}

// -- parse unit tests --

func TestParseCreateGoalBody_Defaults(t *testing.T) {
	in, err := parseCreateGoalBody(7, CreateGoalBody{Name: "Laptop", TargetAmount: "1000", TargetDate: "2025-09-01"})

	require.NoError(t, err)
	assert.True(t, in.CurrentAmount.IsZero())
	assert.True(t, in.StartDate.IsZero())
	assert.Nil(t, in.CategoryID)
}

func TestParseUpdateGoalBody(t *testing.T) {
	categoryID := int64(5)
	update, err := parseUpdateGoalBody(UpdateGoalBody{CurrentAmount: "40", StartDate: "2025-07-01", CategoryID: &categoryID})

	require.NoError(t, err)
	assert.True(t, update.Name.IsUnset())
	assert.True(t, update.CurrentAmount.IsValue())
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), update.StartDate.GetOr(time.Time{}))
	assert.Equal(t, int64(5), update.CategoryID.GetOr(0))
}

func TestParseUpdateGoalBody_ZeroCategoryUnlinks(t *testing.T) {
	zero := int64(0)

	update, err := parseUpdateGoalBody(UpdateGoalBody{CategoryID: &zero})
	require.NoError(t, err)
	assert.True(t, update.CategoryID.IsNull())

	untouched, err := parseUpdateGoalBody(UpdateGoalBody{Name: "Desktop"})
	require.NoError(t, err)
	assert.True(t, untouched.CategoryID.IsUnset())
}

// -- HTTP tests --

func TestHTTP_CreateGoal(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("CreateGoal", mock.Anything, mock.MatchedBy(func(in service.GoalInput) bool {
		return in.OwnerID == 7 && in.Name == "Laptop" && in.CurrentAmount.Equal(decimal.RequireFromString("900"))
	})).Return(laptop("900", false), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/goals", ownerHeader, CreateGoalBody{
		Name: "Laptop", TargetAmount: "1000", CurrentAmount: "900", TargetDate: "2025-09-01",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Goal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "90", body.PercentComplete)
	assert.False(t, body.Completed)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Allocate_AutoRouted(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("AllocateToGoal", mock.Anything, int64(7), decimal.RequireFromString("100"), (*int64)(nil)).
		Return(&service.GoalResult{Goal: laptop("1000", true), NewlyCompleted: true}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/goals/allocate", ownerHeader, AllocateBody{Amount: "100"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GoalWriteBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.NewlyCompleted)
	require.NotNil(t, body.Goal)
	assert.True(t, body.Goal.Completed)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Allocate_NothingToFund(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("AllocateToGoal", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(&service.GoalResult{}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/goals/allocate", ownerHeader, AllocateBody{Amount: "100"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"newlyCompleted":false}`, resp.Body.String())
}

func TestHTTP_Allocate_AlreadyComplete(t *testing.T) {
	mockSvc := new(mockGoalService)
	goalID := int64(9)
	mockSvc.On("AllocateToGoal", mock.Anything, int64(7), decimal.RequireFromString("50"), &goalID).
		Return(nil, apperror.ErrGoalAlreadyComplete)

	resp := newTestAPI(t, mockSvc).Post("/v1/goals/allocate", ownerHeader, AllocateBody{Amount: "50", GoalID: 9})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "GOAL_ALREADY_COMPLETE")
}

func TestHTTP_UpdateGoal_Forbidden(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("UpdateGoal", mock.Anything, int64(9), int64(7), mock.Anything).
		Return(nil, apperror.Forbidden("goal belongs to another owner"))

	resp := newTestAPI(t, mockSvc).Put("/v1/goals/9", ownerHeader, UpdateGoalBody{Name: "Desktop"})

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_ListGoals(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("ListGoals", mock.Anything, int64(7)).Return([]*goal.Goal{laptop("250", false)}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/goals", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListGoalsOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Goals, 1)
	assert.Equal(t, "250.00", body.Body.Goals[0].CurrentAmount)
	assert.Equal(t, "25", body.Body.Goals[0].PercentComplete)
}

func TestHTTP_DeleteGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("DeleteGoal", mock.Anything, int64(9), int64(7)).Return(apperror.NotFound("goal"))

	resp := newTestAPI(t, mockSvc).Delete("/v1/goals/9", ownerHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
