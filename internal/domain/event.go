package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact about something that happened in the domain.
// EventName must be stable: it routes the event to its subscribers and must
// not depend on the receiver's field values.
type Event interface {
	EventName() string
	OccurredOn() time.Time
}

// BaseEvent carries the metadata every event shares. Concrete events embed it
// and add EventName.
type BaseEvent struct {
	EventID    uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurred_on"`
}

// NewBaseEvent returns metadata for an event that occurred now.
func NewBaseEvent() BaseEvent {
	return NewBaseEventAt(time.Now())
}

// NewBaseEventAt returns metadata for an event that occurred at t. The time is
// normalized to UTC.
func NewBaseEventAt(t time.Time) BaseEvent {
	return BaseEvent{EventID: uuid.New(), OccurredAt: t.UTC()}
}

// ID returns the unique event identifier.
func (e BaseEvent) ID() uuid.UUID { return e.EventID }

// OccurredOn returns when the event happened, in UTC.
func (e BaseEvent) OccurredOn() time.Time { return e.OccurredAt }
