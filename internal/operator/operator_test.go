package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/memory"
)

// insertThenFail writes a category and then fails, so nothing may be committed.
type insertThenFail struct {
	err error
}

func (a *insertThenFail) Perform(ctx context.Context, writer *storage.Writer) error {
	owner := int64(1)
	if _, err := writer.Categories.Insert(ctx, &category.CategoryCreate{OwnerID: &owner, Name: "Doomed", Kind: category.KindExpense}); err != nil {
		return err
	}
	return a.err
}

// insertThenCancel writes a category and then cancels the caller's context,
// as a client disconnecting mid-request would.
type insertThenCancel struct {
	cancel context.CancelFunc
}

func (a *insertThenCancel) Perform(ctx context.Context, writer *storage.Writer) error {
	owner := int64(1)
	if _, err := writer.Categories.Insert(ctx, &category.CategoryCreate{OwnerID: &owner, Name: "Abandoned", Kind: category.KindExpense}); err != nil {
		return err
	}
	a.cancel()
	return nil
}

func newDelegator(t *testing.T, workers int) (*OperatorDelegator, *memory.Backend, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	backend := memory.New()
	d := NewOperatorDelegator(backend, logger, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d, backend, hook
}

func ownedCategories(t *testing.T, b *memory.Backend, owner int64) []*category.Category {
	t.Helper()
	all, err := b.Read().Categories.List(context.Background(), owner)
	require.NoError(t, err)
	var owned []*category.Category
	for _, c := range all {
		if c.OwnedBy(owner) {
			owned = append(owned, c)
		}
	}
	return owned
}

func TestProcess_CommitsSuccessfulAction(t *testing.T) {
	d, backend, hook := newDelegator(t, 1)

	action := &actions.CreateCategory{OwnerID: 1, Name: "Pets", Kind: category.KindExpense}
	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	owned := ownedCategories(t, backend, 1)
	require.Len(t, owned, 1)
	assert.Equal(t, "Pets", owned[0].Name)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Operator.CreateCategory.Complete", last.Message)
	assert.Equal(t, logrus.InfoLevel, last.Level)
}

func TestProcess_RollsBackRejectedAction(t *testing.T) {
	d, backend, hook := newDelegator(t, 1)

	err := d.Process(context.Background(), &insertThenFail{err: apperror.Validation("name", "taken")})

	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
	assert.Empty(t, ownedCategories(t, backend, 1))
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Operator.insertThenFail.Rejected", last.Message)
	assert.Equal(t, logrus.InfoLevel, last.Level)
}

func TestProcess_UnexpectedErrorIsLoggedAsError(t *testing.T) {
	d, backend, hook := newDelegator(t, 1)

	err := d.Process(context.Background(), &insertThenFail{err: errors.New("boom")})

	assert.EqualError(t, err, "boom")
	assert.Empty(t, ownedCategories(t, backend, 1))
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Operator.insertThenFail.Error", last.Message)
	assert.Equal(t, logrus.ErrorLevel, last.Level)
}

func TestProcess_CancelledContext(t *testing.T) {
	d, _, _ := newDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateCategory{OwnerID: 1, Name: "Pets", Kind: category.KindExpense})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_ContextCancelledDuringPerformSkipsCommit(t *testing.T) {
	d, backend, _ := newDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := d.Process(ctx, &insertThenCancel{cancel: cancel})
	d.Stop()

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ownedCategories(t, backend, 1))
}

func TestProcess_ConcurrentWorkersSerializeWrites(t *testing.T) {
	d, backend, _ := newDelegator(t, 4)

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = d.Process(context.Background(), &actions.CreateCategory{OwnerID: 1, Name: "Shared", Kind: category.KindExpense})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	owned := ownedCategories(t, backend, 1)
	assert.Len(t, owned, 20)
	ids := map[int64]bool{}
	for _, c := range owned {
		ids[c.ID] = true
	}
	assert.Len(t, ids, 20)
}

func TestStop_IsIdempotent(t *testing.T) {
	d, _, _ := newDelegator(t, 2)

	d.Stop()
	assert.NotPanics(t, d.Stop)
}

func TestProcess_AfterStop(t *testing.T) {
	d, _, _ := newDelegator(t, 1)
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateCategory{OwnerID: 1, Name: "Late", Kind: category.KindExpense})

	assert.ErrorIs(t, err, ErrStopped)
}
