package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/carson-networks/finance-server/internal/storage/category"
)

type categoryTable struct {
	v   view
	now func() time.Time
}

var _ category.ICategoryTable = (*categoryTable)(nil)

func (t *categoryTable) FindByID(_ context.Context, id int64) (*category.Category, error) {
	var out *category.Category
	t.v.read(func(s *state) {
		if c, ok := s.categories[id]; ok {
			out = &c
		}
	})
	return out, nil
}

func (t *categoryTable) FindVisible(_ context.Context, id int64, owner int64) (*category.Category, error) {
	var out *category.Category
	t.v.read(func(s *state) {
		if c, ok := s.categories[id]; ok && c.VisibleTo(owner) {
			out = &c
		}
	})
	return out, nil
}

func (t *categoryTable) List(_ context.Context, owner int64) ([]*category.Category, error) {
	var out []*category.Category
	t.v.read(func(s *state) {
		for _, c := range s.categories {
			if c.VisibleTo(owner) {
				out = append(out, &c)
			}
		}
	})
	slices.SortFunc(out, func(a, b *category.Category) int {
		if c := strings.Compare(string(a.Kind), string(b.Kind)); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (t *categoryTable) Insert(_ context.Context, create *category.CategoryCreate) (*category.Category, error) {
	var out *category.Category
	t.v.write(func(s *state) {
		c := category.Category{
			ID:        s.newID(),
			Name:      create.Name,
			Kind:      create.Kind,
			CreatedAt: t.now(),
		}
		if create.OwnerID != nil {
			owner := *create.OwnerID
			c.OwnerID = &owner
		}
		s.categories[c.ID] = c
		out = &c
	})
	return out, nil
}

func (t *categoryTable) Update(_ context.Context, id int64, owner int64, name string, kind category.Kind) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		c, ok := s.categories[id]
		if !ok || !c.OwnedBy(owner) {
			return
		}
		c.Name = name
		c.Kind = kind
		s.categories[id] = c
		affected = 1
	})
	return affected, nil
}

func (t *categoryTable) Delete(_ context.Context, id int64, owner int64) (int64, error) {
	var affected int64
	var err error
	t.v.write(func(s *state) {
		c, ok := s.categories[id]
		if !ok || !c.OwnedBy(owner) {
			return
		}
		if deps := dependencies(s, id, anyOwner); deps.Any() {
			err = fmt.Errorf("category %d is still referenced by %d transactions, %d budgets and %d goals",
				id, deps.TransactionCount, deps.BudgetCount, deps.GoalCount)
			return
		}
		delete(s.categories, id)
		affected = 1
	})
	return affected, err
}

func (t *categoryTable) Dependencies(_ context.Context, id int64, owner int64) (*category.Dependencies, error) {
	var out category.Dependencies
	t.v.read(func(s *state) {
		out = dependencies(s, id, func(o int64) bool { return o == owner })
	})
	return &out, nil
}

func anyOwner(int64) bool { return true }

func dependencies(s *state, id int64, match func(owner int64) bool) category.Dependencies {
	var deps category.Dependencies
	for _, tr := range s.transactions {
		if tr.CategoryID == id && match(tr.OwnerID) {
			deps.TransactionCount++
		}
	}
	for _, b := range s.budgets {
		if b.CategoryID == id && match(b.OwnerID) {
			deps.BudgetCount++
		}
	}
	for _, g := range s.goals {
		if g.CategoryID != nil && *g.CategoryID == id && match(g.OwnerID) {
			deps.GoalCount++
		}
	}
	return deps
}
