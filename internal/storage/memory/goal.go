package memory

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/carson-networks/finance-server/internal/calendar"
	"github.com/carson-networks/finance-server/internal/storage/goal"
)

type goalTable struct {
	v   view
	now func() time.Time
}

var _ goal.IGoalTable = (*goalTable)(nil)

func (t *goalTable) FindByID(_ context.Context, id int64, _ bool) (*goal.Goal, error) {
	var out *goal.Goal
	t.v.read(func(s *state) {
		if g, ok := s.goals[id]; ok {
			out = &g
		}
	})
	return out, nil
}

func (t *goalTable) FindFirstIncomplete(_ context.Context, owner int64) (*goal.Goal, error) {
	var out *goal.Goal
	t.v.read(func(s *state) {
		for _, g := range s.goals {
			if g.OwnerID != owner || g.Completed {
				continue
			}
			if out == nil || goalBefore(&g, out) {
				out = &g
			}
		}
	})
	return out, nil
}

func goalBefore(a, b *goal.Goal) bool {
	if c := a.TargetDate.Compare(b.TargetDate); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

func (t *goalTable) Insert(_ context.Context, create *goal.GoalCreate) (*goal.Goal, error) {
	var out *goal.Goal
	var err error
	t.v.write(func(s *state) {
		if create.CategoryID != nil {
			if _, ok := s.categories[*create.CategoryID]; !ok {
				err = fmt.Errorf("category %d does not exist", *create.CategoryID)
				return
			}
		}
		now := t.now()
		g := goal.Goal{
			ID:            s.newID(),
			OwnerID:       create.OwnerID,
			CategoryID:    copyID(create.CategoryID),
			Name:          create.Name,
			TargetAmount:  money(create.TargetAmount),
			CurrentAmount: money(create.CurrentAmount),
			StartDate:     calendar.DateOnly(create.StartDate),
			TargetDate:    calendar.DateOnly(create.TargetDate),
			Completed:     create.Completed,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		s.goals[g.ID] = g
		out = &g
	})
	return out, err
}

func (t *goalTable) Save(_ context.Context, g *goal.Goal) error {
	var err error
	t.v.write(func(s *state) {
		stored, ok := s.goals[g.ID]
		if !ok {
			err = sql.ErrNoRows
			return
		}
		if g.CategoryID != nil {
			if _, ok := s.categories[*g.CategoryID]; !ok {
				err = fmt.Errorf("category %d does not exist", *g.CategoryID)
				return
			}
		}
		stored.Name = g.Name
		stored.CategoryID = copyID(g.CategoryID)
		stored.TargetAmount = money(g.TargetAmount)
		stored.CurrentAmount = money(g.CurrentAmount)
		stored.StartDate = calendar.DateOnly(g.StartDate)
		stored.TargetDate = calendar.DateOnly(g.TargetDate)
		stored.Completed = g.Completed
		stored.UpdatedAt = t.now()
		s.goals[g.ID] = stored
	})
	return err
}

func (t *goalTable) Delete(_ context.Context, id int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		if _, ok := s.goals[id]; ok {
			delete(s.goals, id)
			affected = 1
		}
	})
	return affected, nil
}

func (t *goalTable) DeleteByCategory(_ context.Context, categoryID int64) (int64, error) {
	var affected int64
	t.v.write(func(s *state) {
		for id, g := range s.goals {
			if g.CategoryID != nil && *g.CategoryID == categoryID {
				delete(s.goals, id)
				affected++
			}
		}
	})
	return affected, nil
}

func (t *goalTable) List(_ context.Context, owner int64) ([]*goal.Goal, error) {
	var out []*goal.Goal
	t.v.read(func(s *state) {
		for _, g := range s.goals {
			if g.OwnerID == owner {
				out = append(out, &g)
			}
		}
	})
	slices.SortFunc(out, func(a, b *goal.Goal) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		if c := a.TargetDate.Compare(b.TargetDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
