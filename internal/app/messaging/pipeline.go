package messaging

import (
	"context"
	"reflect"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

// Envelope describes the request travelling through the pipeline.
type Envelope struct {
	// Name is the request's Go type name, e.g. "projects.CreateProject".
	Name string
	// Type is the request's Go type.
	Type reflect.Type
	// Kind tells commands and queries apart.
	Kind Kind
	// Request is the request value itself.
	Request any

	fail func(result.Error) result.Outcome
}

// Fail builds a failed result in the shape the request's handler returns.
// Behaviors use it to short-circuit without knowing the concrete type.
func (e Envelope) Fail(err result.Error) result.Outcome {
	return e.fail(err)
}

// Next invokes the rest of the pipeline.
type Next func(ctx context.Context) (result.Outcome, error)

// Behavior wraps a handler invocation. It may run code around next, skip it
// by returning env.Fail(...), or convert faults.
type Behavior func(ctx context.Context, env Envelope, next Next) (result.Outcome, error)

type stage func(ctx context.Context, env Envelope) (result.Outcome, error)

// chain wraps final with behaviors, the first being outermost.
func chain(behaviors []Behavior, final stage) stage {
	s := final
	for i := len(behaviors) - 1; i >= 0; i-- {
		b, inner := behaviors[i], s
		s = func(ctx context.Context, env Envelope) (result.Outcome, error) {
			return b(ctx, env, func(ctx context.Context) (result.Outcome, error) {
				return inner(ctx, env)
			})
		}
	}
	return s
}
