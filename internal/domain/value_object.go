package domain

import (
	"hash/maphash"
	"math"
	"reflect"
	"slices"
)

// ValueObject is implemented by domain types defined entirely by their
// attributes. EqualityComponents lists those attributes in a fixed order.
type ValueObject interface {
	EqualityComponents() []any
}

var hashSeed = maphash.MakeSeed()

// ValuesEqual reports whether a and b have the same dynamic type and equal
// equality components, compared position by position. Components that are
// themselves value objects are compared recursively; comparable components
// with ==, everything else with reflect.DeepEqual.
func ValuesEqual(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return slices.EqualFunc(a.EqualityComponents(), b.EqualityComponents(), componentsEqual)
}

// HashValue combines the hashes of v's equality components with XOR. Equal
// values always hash equally; the converse does not hold, and because XOR is
// order-insensitive, values whose components differ only in order collide.
// Hashes are stable only within a single process.
func HashValue(v ValueObject) uint64 {
	if v == nil {
		return 0
	}
	var h uint64
	for _, c := range v.EqualityComponents() {
		h ^= hashComponent(c)
	}
	return h
}

func componentsEqual(x, y any) bool {
	if vx, ok := x.(ValueObject); ok {
		vy, ok := y.(ValueObject)
		return ok && ValuesEqual(vx, vy)
	}
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.ValueOf(x).Comparable() && reflect.ValueOf(y).Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

func hashComponent(c any) uint64 {
	switch v := c.(type) {
	case nil:
		return 0
	case ValueObject:
		return HashValue(v)
	}
	if reflect.ValueOf(c).Comparable() {
		return maphash.Comparable(hashSeed, c)
	}
	return hashDeep(reflect.ValueOf(c), make(map[uintptr]bool))
}

// hashDeep hashes v so that reflect.DeepEqual values hash equally: pointers
// and interfaces hash what they refer to, sequences hash their elements in
// order and maps combine their entries order-independently. visited holds
// the pointers on the current path and cuts cycles.
func hashDeep(v reflect.Value, visited map[uintptr]bool) uint64 {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		ptr := v.Pointer()
		if visited[ptr] {
			return 1
		}
		visited[ptr] = true
		defer delete(visited, ptr)
		return hashDeep(v.Elem(), visited)
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashDeep(v.Elem(), visited)
	case reflect.Slice, reflect.Array:
		h := maphash.Comparable(hashSeed, v.Len())
		for i := range v.Len() {
			h = mix(h, hashDeep(v.Index(i), visited))
		}
		return h
	case reflect.Map:
		var h uint64
		for iter := v.MapRange(); iter.Next(); {
			h ^= mix(hashDeep(iter.Key(), visited), hashDeep(iter.Value(), visited))
		}
		return mix(maphash.Comparable(hashSeed, v.Len()), h)
	case reflect.Struct:
		h := maphash.Comparable(hashSeed, v.NumField())
		for i := range v.NumField() {
			h = mix(h, hashDeep(v.Field(i), visited))
		}
		return h
	case reflect.Bool:
		return maphash.Comparable(hashSeed, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return maphash.Comparable(hashSeed, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return maphash.Comparable(hashSeed, v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return mix(hashFloat(real(c)), hashFloat(imag(c)))
	case reflect.String:
		return maphash.String(hashSeed, v.String())
	case reflect.Chan, reflect.UnsafePointer:
		return maphash.Comparable(hashSeed, v.Pointer())
	default:
		// Funcs are DeepEqual only when both are nil.
		return 0
	}
}

func hashFloat(f float64) uint64 {
	if f == 0 {
		f = 0 // -0 == +0
	}
	return maphash.Comparable(hashSeed, math.Float64bits(f))
}

func mix(h, next uint64) uint64 {
	return maphash.Comparable(hashSeed, [2]uint64{h, next})
}
