package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, owner int64, name string, kind category.Kind) (*category.Category, error) {
	args := m.Called(ctx, owner, name, kind)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id, owner int64) (*category.Category, error) {
	args := m.Called(ctx, id, owner)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, owner int64) ([]*category.Category, error) {
	args := m.Called(ctx, owner)
	list, _ := args.Get(0).([]*category.Category)
	return list, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id, owner int64, name string, kind category.Kind) (*category.Category, error) {
	args := m.Called(ctx, id, owner, name, kind)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) CheckDependencies(ctx context.Context, id, owner int64) (*category.Dependencies, error) {
	args := m.Called(ctx, id, owner)
	d, _ := args.Get(0).(*category.Dependencies)
	return d, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id, owner int64, force bool) (*category.Dependencies, error) {
	args := m.Called(ctx, id, owner, force)
	d, _ := args.Get(0).(*category.Dependencies)
	return d, args.Error(1)
}

func newTestAPI(t *testing.T, svc categoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewWriteHandler(svc).Register(api)
	NewReadHandler(svc).Register(api)
	return api
}

const ownerHeader = "X-Owner-ID: 7"

func owned(id int64, name string) *category.Category {
	owner := int64(7)
	return &category.Category{ID: id, OwnerID: &owner, Name: name, Kind: category.KindExpense, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
}

// -- Create tests --

func TestHTTP_CreateCategory_Success(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("CreateCategory", mock.Anything, int64(7), "Pets", category.KindExpense).Return(owned(12, "Pets"), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", ownerHeader, CategoryBody{Name: "Pets", Kind: "expense"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(12), body.ID)
	assert.Equal(t, "EXPENSE", body.Kind)
	assert.False(t, body.System)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_MissingOwner(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", CategoryBody{Name: "Pets", Kind: "EXPENSE"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_CreateCategory_BadKind(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", ownerHeader, CategoryBody{Name: "Pets", Kind: "TRANSFER"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

// -- Update tests --

func TestHTTP_UpdateCategory_SystemForbidden(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("UpdateCategory", mock.Anything, int64(4), int64(7), "Rent", category.KindExpense).
		Return(nil, apperror.Forbidden("system categories cannot be modified"))

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/4", ownerHeader, CategoryBody{Name: "Rent", Kind: "EXPENSE"})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- Delete tests --

func TestHTTP_DeleteCategory_Conflict(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("DeleteCategory", mock.Anything, int64(12), int64(7), false).
		Return(nil, &apperror.DependencyConflictError{TransactionCount: 3, BudgetCount: 1})

	resp := newTestAPI(t, mockSvc).Delete("/v1/categories/12", ownerHeader)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), `"transactionCount":3`)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_Force(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("DeleteCategory", mock.Anything, int64(12), int64(7), true).
		Return(&category.Dependencies{TransactionCount: 3, BudgetCount: 1}, nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/categories/12?force=true", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteCategoryOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.True(t, body.Body.Deleted)
	assert.Equal(t, int64(3), body.Body.Removed.TransactionCount)
	mockSvc.AssertExpectations(t)
}

// -- Read tests --

func TestHTTP_ListCategories(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything, int64(7)).Return([]*category.Category{
		{ID: 1, Name: "Salary", Kind: category.KindIncome},
		owned(12, "Pets"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/categories", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Categories, 2)
	assert.True(t, body.Body.Categories[0].System)
	assert.False(t, body.Body.Categories[1].System)
}

func TestHTTP_GetCategory_NotFound(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("GetCategory", mock.Anything, int64(99), int64(7)).Return(nil, apperror.NotFound("category"))

	resp := newTestAPI(t, mockSvc).Get("/v1/categories/99", ownerHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CategoryDependencies_StorageError(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("CheckDependencies", mock.Anything, int64(12), int64(7)).Return(nil, errors.New("connection refused"))

	resp := newTestAPI(t, mockSvc).Get("/v1/categories/12/dependencies", ownerHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to count category dependencies")
	assert.NotContains(t, resp.Body.String(), "connection refused")
}
