package category

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Category name"`
	Kind      string `json:"kind" enum:"INCOME,EXPENSE" doc:"Whether the category holds income or expenses"`
	System    bool   `json:"system" doc:"System categories are shared and read-only"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toCategory(c *category.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		System:    c.IsSystem(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// categoryService is the slice of service.CategoryService the handlers use.
type categoryService interface {
	CreateCategory(ctx context.Context, owner int64, name string, kind category.Kind) (*category.Category, error)
	GetCategory(ctx context.Context, id, owner int64) (*category.Category, error)
	ListCategories(ctx context.Context, owner int64) ([]*category.Category, error)
	UpdateCategory(ctx context.Context, id, owner int64, name string, kind category.Kind) (*category.Category, error)
	CheckDependencies(ctx context.Context, id, owner int64) (*category.Dependencies, error)
	DeleteCategory(ctx context.Context, id, owner int64, force bool) (*category.Dependencies, error)
}
