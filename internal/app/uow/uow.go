// Package uow coordinates persisting the aggregates touched by one command
// and publishing the domain events they raised.
//
// A UnitOfWork is created per command:
//
//	u := uow.New(publisher)
//	u.Track(p, func(ctx context.Context) error { return repo.Save(ctx, p) })
//	if err := u.Commit(ctx); err != nil { ... }
//
// Events are only published once every save has succeeded, so handlers never
// observe state that was not persisted.
package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

var (
	// ErrAlreadyCommitted is returned by Track and Commit after Commit has
	// been called.
	ErrAlreadyCommitted = errors.New("uow: already committed")

	// ErrNilAggregate is returned by Track for a nil aggregate or save.
	ErrNilAggregate = errors.New("uow: nil aggregate")

	// ErrPublishFailed wraps publisher errors returned by Commit. The saves
	// have already succeeded when it is returned.
	ErrPublishFailed = errors.New("uow: publishing domain events failed")
)

// Step persists or compensates a tracked aggregate.
type Step func(ctx context.Context) error

// Option configures a tracked aggregate.
type Option func(*tracked)

// WithRollback registers a compensation run, in reverse tracking order, when
// a later save fails.
func WithRollback(rollback Step) Option {
	return func(t *tracked) { t.rollback = rollback }
}

// Named sets the description used in logs. It defaults to the aggregate's
// Go type.
func Named(description string) Option {
	return func(t *tracked) { t.description = description }
}

type tracked struct {
	aggregate   domain.EventSource
	save        Step
	rollback    Step
	description string
}

// UnitOfWork collects aggregates and commits them together. It is
// request-scoped; Track and Commit are safe for concurrent use but Commit
// runs only once.
type UnitOfWork struct {
	publisher ports.EventPublisher

	mu        sync.Mutex
	items     []tracked
	committed bool
}

// New creates a UnitOfWork that publishes committed events through
// publisher.
func New(publisher ports.EventPublisher) *UnitOfWork {
	return &UnitOfWork{publisher: publisher}
}

// Track stages aggregate for Commit, which calls save and then drains the
// aggregate's events.
func (u *UnitOfWork) Track(aggregate domain.EventSource, save Step, opts ...Option) error {
	if isNil(aggregate) || save == nil {
		return ErrNilAggregate
	}

	t := tracked{aggregate: aggregate, save: save, description: fmt.Sprintf("%T", aggregate)}
	for _, opt := range opts {
		opt(&t)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}
	u.items = append(u.items, t)
	return nil
}

// Commit runs the saves in tracking order. If one fails the completed saves
// are rolled back in reverse order, the error is returned and every event
// stays queued on its aggregate. Otherwise the events of all tracked
// aggregates are popped in tracking order and published; a publisher error
// is returned wrapped in ErrPublishFailed.
//
// Returns ErrAlreadyCommitted if called more than once.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return ErrAlreadyCommitted
	}
	u.committed = true
	items := u.items
	u.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "saving aggregate",
			slog.String("operation", "UnitOfWork.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("aggregate", item.description),
		)

		if err := item.save(ctx); err != nil {
			logger.ErrorContext(ctx, "save failed, initiating rollback",
				slog.String("operation", "UnitOfWork.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("aggregate", item.description),
				slog.Any("error", err),
			)
			rollback(ctx, items, i-1, logger)
			return fmt.Errorf("saving %s: %w", item.description, err)
		}
	}

	var events []domain.Event
	for _, item := range items {
		events = append(events, item.aggregate.PopDomainEvents()...)
	}
	if len(events) == 0 || u.publisher == nil {
		return nil
	}

	if err := u.publisher.Publish(ctx, events...); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// rollback compensates items 0..upTo (inclusive) in reverse order. Rollback
// errors are logged and do not stop the remaining compensations.
func rollback(ctx context.Context, items []tracked, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		item := items[i]
		if item.rollback == nil {
			continue
		}

		logger.InfoContext(ctx, "rolling back save",
			slog.String("operation", "UnitOfWork.Commit"),
			slog.Int("step", i+1),
			slog.String("aggregate", item.description),
		)

		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "UnitOfWork.Commit"),
				slog.Int("step", i+1),
				slog.String("aggregate", item.description),
				slog.Any("error", err),
			)
		}
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
