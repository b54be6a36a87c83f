package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
)

// EventHandler reacts to one domain event type.
type EventHandler[E domain.Event] interface {
	Handle(ctx context.Context, event E) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc[E domain.Event] func(ctx context.Context, event E) error

// Handle calls f(ctx, event).
func (f EventHandlerFunc[E]) Handle(ctx context.Context, event E) error {
	return f(ctx, event)
}

type eventFunc func(ctx context.Context, event domain.Event) error

// Publisher dispatches domain events to subscribed handlers. Subscribe during
// composition; Publish is safe for concurrent use afterwards.
type Publisher struct {
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]eventFunc
	all      []eventFunc
}

// NewPublisher creates an empty Publisher. A nil logger discards output.
func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{
		logger:   logger,
		handlers: make(map[string][]eventFunc),
	}
}

// Subscribe registers h for events of type E. The routing key is the
// EventName of E's zero value, so E must be a non-pointer type whose
// EventName does not depend on its fields. It panics when E is a pointer or
// interface type.
func Subscribe[E domain.Event](p *Publisher, h EventHandler[E]) {
	switch t := reflect.TypeFor[E](); t.Kind() {
	case reflect.Pointer, reflect.Interface:
		panic(fmt.Sprintf("messaging: Subscribe[%s]: the zero value of a %s event type has no EventName", t, t.Kind()))
	}
	var zero E
	name := zero.EventName()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[name] = append(p.handlers[name], func(ctx context.Context, event domain.Event) error {
		e, ok := event.(E)
		if !ok {
			return fmt.Errorf("event %s: got %T, want %T", name, event, zero)
		}
		return h.Handle(ctx, e)
	})
}

// SubscribeAll registers h for every event, after the type-specific
// handlers.
func SubscribeAll(p *Publisher, h EventHandler[domain.Event]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.all = append(p.all, h.Handle)
}

// Publish dispatches events in order. Each event goes to its type-specific
// handlers in subscription order, then to the catch-all handlers. A failing
// handler does not stop the others; all failures are returned joined.
func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		name := event.EventName()

		p.mu.RLock()
		handlers := append(append([]eventFunc(nil), p.handlers[name]...), p.all...)
		p.mu.RUnlock()

		if len(handlers) == 0 {
			p.logger.DebugContext(ctx, "no subscribers for domain event",
				slog.String("event", name),
			)
			continue
		}

		for _, h := range handlers {
			if err := h(ctx, event); err != nil {
				p.logger.ErrorContext(ctx, "domain event handler failed",
					slog.String("operation", "Publisher.Publish"),
					slog.String("event", name),
					slog.Any("error", err),
				)
				errs = append(errs, fmt.Errorf("handling %s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
