package messaging

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

// Mediator routes requests to their handlers through the configured
// behaviors. Register handlers during composition; Send is safe for
// concurrent use afterwards.
type Mediator struct {
	behaviors []Behavior

	mu     sync.RWMutex
	routes map[reflect.Type]route
}

type route struct {
	name string
	fail func(result.Error) result.Outcome
	run  stage
}

// New creates a Mediator. Behaviors run in the given order around every
// handler; the first is outermost.
func New(behaviors ...Behavior) *Mediator {
	return &Mediator{
		behaviors: slices.Clone(behaviors),
		routes:    make(map[reflect.Type]route),
	}
}

// Register binds h to the request type Req and composes its pipeline. It
// panics if Req already has a handler.
func Register[Req Request, Res result.Response[Res]](m *Mediator, h Handler[Req, Res]) {
	rt := reflect.TypeFor[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.routes[rt]; dup {
		panic(fmt.Sprintf("messaging: handler already registered for %s", rt))
	}

	final := func(ctx context.Context, env Envelope) (result.Outcome, error) {
		res, err := h.Handle(ctx, env.Request.(Req))
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	m.routes[rt] = route{
		name: rt.String(),
		fail: func(err result.Error) result.Outcome {
			var zero Res
			return zero.AsFailure(err)
		},
		run: chain(m.behaviors, final),
	}
}

// Send dispatches req to its handler. Business failures come back as a failed
// Res; the error is non-nil only for faults, including ErrHandlerNotFound.
func Send[Req Request, Res result.Response[Res]](ctx context.Context, m *Mediator, req Req) (Res, error) {
	var zero Res
	rt := reflect.TypeFor[Req]()

	m.mu.RLock()
	r, ok := m.routes[rt]
	m.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrHandlerNotFound, rt)
	}

	env := Envelope{
		Name:    r.name,
		Type:    rt,
		Kind:    req.requestKind(),
		Request: req,
		fail:    r.fail,
	}

	out, err := r.run(ctx, env)
	if err != nil {
		return zero, err
	}
	res, ok := out.(Res)
	if !ok {
		return zero, fmt.Errorf("%w: %s got %T, want %T", ErrUnexpectedReply, r.name, out, zero)
	}
	return res, nil
}

// Registered reports whether a handler exists for Req.
func Registered[Req Request](m *Mediator) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.routes[reflect.TypeFor[Req]()]
	return ok
}
