package ports

import (
	"context"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
)

// EventPublisher dispatches domain events raised by aggregates to their
// in-process handlers. Implemented by messaging.Publisher.
type EventPublisher interface {
	// Publish dispatches events in order. Handler failures do not stop
	// dispatch; they are returned joined.
	Publish(ctx context.Context, events ...domain.Event) error
}

// EventSink receives integration copies of domain events for delivery
// outside the process, e.g. to a webhook endpoint.
type EventSink interface {
	// Name identifies the sink in logs, e.g. "webhook".
	Name() string

	// Deliver sends a single event. Implementations own retries.
	Deliver(ctx context.Context, event domain.Event) error
}
