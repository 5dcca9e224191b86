package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/telemetry"
)

const defaultQueueSize = 1000

// ErrStopped is returned by Process once the delegator no longer accepts work.
var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator owns the action queue and the pool of Operators draining it.
type OperatorDelegator struct {
	storage    storage.Backend
	logger     *logrus.Logger
	numWorkers int
	queueSize  int

	queue   chan ActionItem
	workers sync.WaitGroup

	// mu guards stopped so no send races the close of queue.
	mu      sync.RWMutex
	stopped bool
}

type Option func(*OperatorDelegator)

// WithQueueSize bounds how many actions may wait for a free worker.
func WithQueueSize(size int) Option {
	return func(d *OperatorDelegator) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

func NewOperatorDelegator(s storage.Backend, logger *logrus.Logger, numWorkers int, opts ...Option) *OperatorDelegator {
	d := &OperatorDelegator{
		storage:    s,
		logger:     logger,
		numWorkers: max(numWorkers, 1),
		queueSize:  defaultQueueSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.queue = make(chan ActionItem, d.queueSize)
	return d
}

func (d *OperatorDelegator) Start() {
	tracer := telemetry.Tracer("operator")
	for range d.numWorkers {
		op := NewOperator(d.storage, d.queue, d.logger, tracer)
		d.workers.Add(1)
		go func() {
			defer d.workers.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop refuses new work, lets the workers finish what is queued and waits for them.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.workers.Wait()
	d.logger.Info("OperatorDelegator.Stop")
}

// Process runs action in its own unit of work and waits for the outcome.
// When ctx ends first Process returns ctx.Err() without waiting. The worker
// then rolls the action back unless Perform had already returned and the
// commit was under way.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		id:       uuid.Must(uuid.NewV4()),
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
