package domain_test

import (
	"math"
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
)

type pair struct {
	n int
	s string
}

func (p pair) EqualityComponents() []any { return []any{p.n, p.s} }

type swapped struct {
	n int
	s string
}

func (p swapped) EqualityComponents() []any { return []any{p.s, p.n} }

type tagged struct {
	inner pair
	tags  []string
}

func (t tagged) EqualityComponents() []any { return []any{t.inner, t.tags} }

// refs holds a component that reflect.DeepEqual compares through pointers.
type refs struct {
	c any
}

func (r refs) EqualityComponents() []any { return []any{r.c} }

type withPointer struct {
	n    *int
	tags []string
}

func TestValuesEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b domain.ValueObject
		want bool
	}{
		{name: "same components", a: pair{1, "a"}, b: pair{1, "a"}, want: true},
		{name: "different component", a: pair{1, "a"}, b: pair{1, "b"}, want: false},
		{name: "different type", a: pair{1, "a"}, b: swapped{1, "a"}, want: false},
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "one nil", a: pair{1, "a"}, b: nil, want: false},
		{
			name: "nested and slice components",
			a:    tagged{inner: pair{1, "a"}, tags: []string{"x", "y"}},
			b:    tagged{inner: pair{1, "a"}, tags: []string{"x", "y"}},
			want: true,
		},
		{
			name: "nested differs",
			a:    tagged{inner: pair{1, "a"}, tags: []string{"x"}},
			b:    tagged{inner: pair{2, "a"}, tags: []string{"x"}},
			want: false,
		},
		{
			name: "slice order matters",
			a:    tagged{inner: pair{1, "a"}, tags: []string{"x", "y"}},
			b:    tagged{inner: pair{1, "a"}, tags: []string{"y", "x"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.ValuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ValuesEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashValue(t *testing.T) {
	t.Parallel()

	if domain.HashValue(pair{1, "a"}) != domain.HashValue(pair{1, "a"}) {
		t.Error("equal values must hash equally")
	}

	a := tagged{inner: pair{1, "a"}, tags: []string{"x"}}
	b := tagged{inner: pair{1, "a"}, tags: []string{"x"}}
	if domain.HashValue(a) != domain.HashValue(b) {
		t.Error("equal values with slice components must hash equally")
	}

	// XOR combination ignores component order.
	if domain.HashValue(pair{1, "a"}) != domain.HashValue(swapped{1, "a"}) {
		t.Error("HashValue should be order-insensitive")
	}

	if domain.HashValue(nil) != 0 {
		t.Error("HashValue(nil) should be 0")
	}
}

func TestHashValue_AgreesWithDeepEquality(t *testing.T) {
	t.Parallel()

	a, b, c := 1, 1, 2
	x, y := "x", "x"

	tests := []struct {
		name string
		a, b refs
	}{
		{name: "slice of pointers", a: refs{[]*int{&a}}, b: refs{[]*int{&b}}},
		{name: "nested slices", a: refs{[][]*int{{&a}, nil}}, b: refs{[][]*int{{&b}, nil}}},
		{name: "map with pointer values", a: refs{map[string]*int{"k": &a, "j": &c}}, b: refs{map[string]*int{"j": &c, "k": &b}}},
		{name: "struct holding a pointer", a: refs{withPointer{n: &a, tags: []string{"t"}}}, b: refs{withPointer{n: &b, tags: []string{"t"}}}},
		{name: "pointers to slices", a: refs{[]*[]string{{x}}}, b: refs{[]*[]string{{y}}}},
		{name: "interfaces", a: refs{[]any{&a, "s", 1.5}}, b: refs{[]any{&b, "s", 1.5}}},
		{name: "negative zero", a: refs{[]float64{0}}, b: refs{[]float64{math.Copysign(0, -1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !domain.ValuesEqual(tt.a, tt.b) {
				t.Fatalf("ValuesEqual() = false, want true")
			}
			if ha, hb := domain.HashValue(tt.a), domain.HashValue(tt.b); ha != hb {
				t.Errorf("HashValue() = %d and %d, want equal hashes for equal values", ha, hb)
			}
		})
	}
}

func TestHashValue_DistinguishesPointees(t *testing.T) {
	t.Parallel()

	a, c := 1, 2
	if domain.HashValue(refs{[]*int{&a}}) == domain.HashValue(refs{[]*int{&c}}) {
		t.Error("HashValue() collided for []*int{1} and []*int{2}")
	}
}

func TestHashValue_CyclicComponent(t *testing.T) {
	t.Parallel()

	type node struct {
		next *node
		tags []string
	}
	n := &node{tags: []string{"loop"}}
	n.next = n

	// Must terminate.
	_ = domain.HashValue(refs{[]*node{n}})
}
