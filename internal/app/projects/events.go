package projects

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

type aggregateEvent interface {
	AggregateID() string
}

// LogEvent records every domain event at info level.
func LogEvent(logger *slog.Logger) messaging.EventHandlerFunc[domain.Event] {
	return func(ctx context.Context, event domain.Event) error {
		attrs := []any{
			slog.String("event", event.EventName()),
			slog.Time("occurred_on", event.OccurredOn()),
		}
		if agg, ok := event.(aggregateEvent); ok {
			attrs = append(attrs, slog.String("aggregate_id", agg.AggregateID()))
		}
		logger.InfoContext(ctx, "domain event", attrs...)
		return nil
	}
}

// LogCompletion announces finished todos.
func LogCompletion(logger *slog.Logger) messaging.EventHandlerFunc[project.TodoCompleted] {
	return func(ctx context.Context, event project.TodoCompleted) error {
		logger.InfoContext(ctx, "todo completed",
			slog.String("project_id", event.AggregateID()),
			slog.String("todo_id", event.TodoID.String()),
		)
		return nil
	}
}

// Forward delivers every domain event to sink.
func Forward(sink ports.EventSink) messaging.EventHandlerFunc[domain.Event] {
	return func(ctx context.Context, event domain.Event) error {
		if err := sink.Deliver(ctx, event); err != nil {
			return fmt.Errorf("forwarding to %s: %w", sink.Name(), err)
		}
		return nil
	}
}
