package domain

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// Enum is embedded by smart enum types to give each member a name and a
// value:
//
//	type Status struct{ domain.Enum[int] }
//
//	var (
//	    StatusPending = Status{domain.NewEnum("pending", 1)}
//	    StatusDone    = Status{domain.NewEnum("done", 2)}
//	    statuses      = domain.NewEnumTable[Status, int](StatusPending, StatusDone)
//	)
type Enum[V comparable] struct {
	name  string
	value V
}

// NewEnum creates an enum member.
func NewEnum[V comparable](name string, value V) Enum[V] {
	return Enum[V]{name: name, value: value}
}

// Name returns the member's name.
func (e Enum[V]) Name() string { return e.name }

// Value returns the member's value.
func (e Enum[V]) Value() V { return e.value }

// String returns the member's name.
func (e Enum[V]) String() string { return e.name }

// IsZero reports whether e is the zero value rather than a declared member.
func (e Enum[V]) IsZero() bool { return e.name == "" }

// MarshalText implements encoding.TextMarshaler. Members serialize by name.
func (e Enum[V]) MarshalText() ([]byte, error) {
	return []byte(e.name), nil
}

// SmartEnum is satisfied by any type embedding Enum[V].
type SmartEnum[V comparable] interface {
	Name() string
	Value() V
}

// EnumTable is the read-only registry of a smart enum's members. Build it
// once in a package-level var; lookups are safe for concurrent use.
type EnumTable[E SmartEnum[V], V comparable] struct {
	members []E
	byName  map[string]E
	byValue map[V]E
}

// NewEnumTable indexes members by case-folded name and by value. It panics if
// two members share a name (ignoring case) or a value.
func NewEnumTable[E SmartEnum[V], V comparable](members ...E) *EnumTable[E, V] {
	t := &EnumTable[E, V]{
		members: slices.Clone(members),
		byName:  make(map[string]E, len(members)),
		byValue: make(map[V]E, len(members)),
	}
	for _, m := range members {
		key := foldName(m.Name())
		if _, dup := t.byName[key]; dup {
			panic(fmt.Sprintf("domain: duplicate enum name %q", m.Name()))
		}
		if _, dup := t.byValue[m.Value()]; dup {
			panic(fmt.Sprintf("domain: duplicate enum value %v", m.Value()))
		}
		t.byName[key] = m
		t.byValue[m.Value()] = m
	}
	return t
}

// Members returns every member in declaration order.
func (t *EnumTable[E, V]) Members() []E {
	return slices.Clone(t.members)
}

// TryFromName looks a member up by name, ignoring case.
func (t *EnumTable[E, V]) TryFromName(name string) (E, bool) {
	m, ok := t.byName[foldName(name)]
	return m, ok
}

// FromName looks a member up by name, ignoring case. It returns an error
// wrapping ErrUnknownEnum when no member matches.
func (t *EnumTable[E, V]) FromName(name string) (E, error) {
	m, ok := t.TryFromName(name)
	if !ok {
		return m, fmt.Errorf("%w: name %q", ErrUnknownEnum, name)
	}
	return m, nil
}

// MustFromName is like FromName but panics when no member matches. Use it
// only with names known at compile time.
func (t *EnumTable[E, V]) MustFromName(name string) E {
	m, err := t.FromName(name)
	if err != nil {
		panic(err)
	}
	return m
}

// TryFromValue looks a member up by value.
func (t *EnumTable[E, V]) TryFromValue(value V) (E, bool) {
	m, ok := t.byValue[value]
	return m, ok
}

// FromValue looks a member up by value. It returns an error wrapping
// ErrUnknownEnum when no member matches.
func (t *EnumTable[E, V]) FromValue(value V) (E, error) {
	m, ok := t.TryFromValue(value)
	if !ok {
		return m, fmt.Errorf("%w: value %v", ErrUnknownEnum, value)
	}
	return m, nil
}

// foldName builds a new Caser per call; a cases.Caser keeps state and must
// not be shared between goroutines.
func foldName(name string) string {
	return cases.Fold().String(name)
}
