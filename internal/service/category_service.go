package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   storage.Backend
	processor Processor
}

func NewCategoryService(store storage.Backend, processor Processor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// CreateCategory creates a category owned by owner.
func (s *CategoryService) CreateCategory(ctx context.Context, owner int64, name string, kind category.Kind) (*category.Category, error) {
	action := &actions.CreateCategory{OwnerID: owner, Name: name, Kind: kind}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// GetCategory returns a system category or one owned by owner.
func (s *CategoryService) GetCategory(ctx context.Context, id, owner int64) (*category.Category, error) {
	c, err := s.storage.Read().Categories.FindVisible(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("category")
	}
	return c, nil
}

// ListCategories returns the system categories followed by owner's, grouped by kind.
func (s *CategoryService) ListCategories(ctx context.Context, owner int64) ([]*category.Category, error) {
	return s.storage.Read().Categories.List(ctx, owner)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, owner int64, name string, kind category.Kind) (*category.Category, error) {
	action := &actions.UpdateCategory{ID: id, OwnerID: owner, Name: name, Kind: kind}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// CheckDependencies counts the rows of owner referencing a category visible
// to owner. Rows of other owners sharing a system category are not counted.
func (s *CategoryService) CheckDependencies(ctx context.Context, id, owner int64) (*category.Dependencies, error) {
	if _, err := s.GetCategory(ctx, id, owner); err != nil {
		return nil, err
	}
	return s.storage.Read().Categories.Dependencies(ctx, id, owner)
}

// DeleteCategory removes a category, cascading to its dependents when force is set.
// It returns the dependent rows removed with it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id, owner int64, force bool) (*category.Dependencies, error) {
	action := &actions.DeleteCategory{ID: id, OwnerID: owner, Force: force}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &action.Removed, nil
}
