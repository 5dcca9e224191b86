package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

type CreateCategory struct {
	OwnerID int64
	Name    string
	Kind    category.Kind

	Result *category.Category
}

var _ IAction = (*CreateCategory)(nil)

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name, err := requireName("name", c.Name)
	if err != nil {
		return err
	}
	if err := requireKind(c.Kind); err != nil {
		return err
	}

	owner := c.OwnerID
	created, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		OwnerID: &owner,
		Name:    name,
		Kind:    c.Kind,
	})
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	c.Result = created
	return nil
}

type UpdateCategory struct {
	ID      int64
	OwnerID int64
	Name    string
	Kind    category.Kind

	Result *category.Category
}

var _ IAction = (*UpdateCategory)(nil)

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name, err := requireName("name", u.Name)
	if err != nil {
		return err
	}
	if err := requireKind(u.Kind); err != nil {
		return err
	}

	existing, err := ownedCategory(ctx, writer, u.ID, u.OwnerID, "modified")
	if err != nil {
		return err
	}

	affected, err := writer.Categories.Update(ctx, u.ID, u.OwnerID, name, u.Kind)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("category")
	}

	existing.Name = name
	existing.Kind = u.Kind
	u.Result = existing
	return nil
}

// ownedCategory loads a category the owner may change. System categories and
// categories of other owners are Forbidden.
func ownedCategory(ctx context.Context, writer *storage.Writer, id, owner int64, verb string) (*category.Category, error) {
	c, err := writer.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if c == nil {
		return nil, apperror.NotFound("category")
	}
	if c.IsSystem() {
		return nil, apperror.Forbidden("system categories cannot be " + verb)
	}
	if !c.OwnedBy(owner) {
		return nil, apperror.Forbidden("category belongs to another owner")
	}
	return c, nil
}
