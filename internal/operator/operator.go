package operator

import (
	"context"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carson-networks/finance-server/internal/apperror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage storage.Backend
	queue   chan ActionItem
	logger  *logrus.Logger
	tracer  trace.Tracer
}

func NewOperator(s storage.Backend, queue chan ActionItem, logger *logrus.Logger, tracer trace.Tracer) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
		tracer:  tracer,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	name := actionName(item.action)
	ctx, span := o.tracer.Start(item.ctx, "Operator."+name,
		trace.WithAttributes(attribute.String("correlation_id", item.id.String())))
	defer span.End()

	logData := logging.NewLogData(o.logger)
	logData.AddData("action", name)
	logData.AddData("correlationID", item.id.String())
	endTimer := logData.AddTiming("duration")

	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithField("correlationID", item.id.String()).Debugf("Operator.%v.Action\n%s", name, spew.Sdump(item.action))
	}

	err := o.perform(ctx, item.action)
	endTimer()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry := logData.Log().WithError(err).WithField("code", string(apperror.CodeOf(err)))
		if apperror.CodeOf(err) == apperror.CodeUnknown {
			entry.Errorf("Operator.%v.Error", name)
		} else {
			entry.Infof("Operator.%v.Rejected", name)
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	logData.Log().Infof("Operator.%v.Complete", name)
	item.response <- ActionItemResponse{}
}

// perform runs action in one writer. The writer is rolled back when Perform
// fails or when ctx ended while Perform ran.
func (o *Operator) perform(ctx context.Context, action actions.IAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	if err = action.Perform(ctx, writer); err != nil {
		o.rollback(writer)
		return err
	}
	if err = ctx.Err(); err != nil {
		o.rollback(writer)
		return err
	}

	if err = writer.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (o *Operator) rollback(writer *storage.Writer) {
	if err := writer.Rollback(); err != nil {
		o.logger.WithError(err).Warn("Operator.Rollback.Error")
	}
}

func actionName(action actions.IAction) string {
	name := fmt.Sprintf("%T", action)
	return name[strings.LastIndex(name, ".")+1:]
}

type ActionItem struct {
	ctx      context.Context
	id       uuid.UUID
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
