// Package validation defines the validators run by the validation pipeline
// behavior and the registry that maps command types to them.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Failure is a single rule violation reported by a validator.
type Failure struct {
	// Property names the offending field, e.g. "Name".
	Property string
	// Code is a machine-readable identifier, e.g. "Name.required".
	Code string
	// Message is a human-readable explanation.
	Message string
}

// Validator checks requests of type T. It returns the rule violations it
// found, in a stable order. A non-nil error means the validator itself could
// not run and aborts the request.
type Validator[T any] interface {
	Validate(ctx context.Context, req T) ([]Failure, error)
}

// Func adapts a function to the Validator interface.
type Func[T any] func(ctx context.Context, req T) ([]Failure, error)

// Validate calls f(ctx, req).
func (f Func[T]) Validate(ctx context.Context, req T) ([]Failure, error) {
	return f(ctx, req)
}

// Check is a type-erased validator as stored in a Set.
type Check func(ctx context.Context, req any) ([]Failure, error)

// Set holds the validators registered for each request type, in
// registration order. Register during composition; For is safe for
// concurrent use afterwards.
type Set struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]Check
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{byType: make(map[reflect.Type][]Check)}
}

// Register appends v to the validators for T.
func Register[T any](s *Set, v Validator[T]) {
	rt := reflect.TypeFor[T]()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byType[rt] = append(s.byType[rt], func(ctx context.Context, req any) ([]Failure, error) {
		typed, ok := req.(T)
		if !ok {
			return nil, fmt.Errorf("validator for %s got %T", rt, req)
		}
		return v.Validate(ctx, typed)
	})
}

// For returns the validators registered for t, in registration order.
func (s *Set) For(t reflect.Type) []Check {
	s.mu.RLock()
	defer s.mu.RUnlock()
	checks := s.byType[t]
	return checks[:len(checks):len(checks)]
}
