package domain

// EventSource is implemented by aggregates that record domain events for
// later dispatch.
type EventSource interface {
	PopDomainEvents() []Event
}

// AggregateRoot is an Entity that owns a consistency boundary and records the
// domain events raised by its business methods. Events stay queued until the
// persistence layer drains them with PopDomainEvents.
//
// AggregateRoot is not safe for concurrent use; aggregates are mutated by a
// single request at a time.
type AggregateRoot[ID comparable] struct {
	Entity[ID]
	version int
	events  []Event
}

// NewAggregateRoot returns an AggregateRoot with the given identity and an
// empty event queue.
func NewAggregateRoot[ID comparable](id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{Entity: NewEntity(id)}
}

// RaiseEvent appends e to the event queue. Only the aggregate's own business
// methods should call it.
func (a *AggregateRoot[ID]) RaiseEvent(e Event) {
	a.events = append(a.events, e)
}

// PopDomainEvents returns the queued events in the order they were raised and
// clears the queue. A second call without new events returns an empty slice.
func (a *AggregateRoot[ID]) PopDomainEvents() []Event {
	popped := a.events
	a.events = nil
	if popped == nil {
		return []Event{}
	}
	return popped
}

// PendingEvents reports how many events are queued.
func (a *AggregateRoot[ID]) PendingEvents() int {
	return len(a.events)
}

// Version is the stored revision the aggregate was loaded at, zero for an
// aggregate that was never saved. Repositories compare it on save to reject
// writes based on stale state.
func (a *AggregateRoot[ID]) Version() int {
	return a.version
}

// SetVersion records the stored revision. Only repositories call it, after
// loading or saving the aggregate.
func (a *AggregateRoot[ID]) SetVersion(v int) {
	a.version = v
}
