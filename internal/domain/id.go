package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// TypedID is a strongly typed identifier wrapping a primitive value V. Tag is
// a marker type that keeps identifiers of different entities apart at
// compile time, so a project id can never be passed where a todo id is
// expected:
//
//	type idTag struct{}
//	type ID = domain.TypedID[idTag, uuid.UUID]
//
// The zero TypedID is an uninitialized identifier; NewID never returns one.
type TypedID[Tag any, V comparable] struct {
	value V
}

// NewID wraps value. It panics with ErrZeroID if value is the zero value of V.
func NewID[Tag any, V comparable](value V) TypedID[Tag, V] {
	var zero V
	if value == zero {
		panic(ErrZeroID)
	}
	return TypedID[Tag, V]{value: value}
}

// NewUUIDID returns a TypedID wrapping a fresh random UUID.
func NewUUIDID[Tag any]() TypedID[Tag, uuid.UUID] {
	return NewID[Tag](uuid.New())
}

// ParseUUIDID parses s as a UUID identifier. The nil UUID is rejected with
// ErrZeroID.
func ParseUUIDID[Tag any](s string) (TypedID[Tag, uuid.UUID], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TypedID[Tag, uuid.UUID]{}, fmt.Errorf("parsing id %q: %w", s, err)
	}
	if u == uuid.Nil {
		return TypedID[Tag, uuid.UUID]{}, fmt.Errorf("parsing id %q: %w", s, ErrZeroID)
	}
	return TypedID[Tag, uuid.UUID]{value: u}, nil
}

// Value returns the wrapped primitive.
func (id TypedID[Tag, V]) Value() V { return id.value }

// IsZero reports whether id was never initialized.
func (id TypedID[Tag, V]) IsZero() bool {
	var zero V
	return id.value == zero
}

// String implements fmt.Stringer.
func (id TypedID[Tag, V]) String() string {
	return fmt.Sprint(id.value)
}

// MarshalText implements encoding.TextMarshaler so ids serialize as their
// underlying value.
func (id TypedID[Tag, V]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// EqualityComponents implements ValueObject.
func (id TypedID[Tag, V]) EqualityComponents() []any {
	return []any{id.value}
}
