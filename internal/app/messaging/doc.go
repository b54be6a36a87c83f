// Package messaging implements the request/response mediator used by the
// application layer.
//
// Commands and queries are plain structs embedding Command or Query. Each
// request type has exactly one handler, registered explicitly at composition
// time:
//
//	m := messaging.New(behavior.ExceptionHandling(logger), behavior.Validation(set, logger, 4))
//	messaging.Register(m, messaging.HandlerFunc[CreateProject, result.Of[project.Snapshot]](h.create))
//
//	out, err := messaging.Send[CreateProject, result.Of[project.Snapshot]](ctx, m, cmd)
//
// Handlers report business failures through their result; a non-nil error
// means something unexpected happened. Behaviors wrap every handler in the
// order they were passed to New, the first being outermost. They are composed
// once per request type when the handler is registered.
//
// Domain events raised by aggregates are dispatched by Publisher to the
// handlers subscribed to their event name.
package messaging
