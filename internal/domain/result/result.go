package result

import "errors"

// Panic values for programming errors. Callers never need to handle these;
// they indicate a bug at the call site.
var (
	// ErrInvalidResult is raised when a result's success flag disagrees with
	// its error: success with an error other than None, or failure with None.
	ErrInvalidResult = errors.New("result: invalid error for the given success state")

	// ErrFailedValueAccess is raised when reading the value of a failed result.
	ErrFailedValueAccess = errors.New("result: the value of a failed result can't be accessed")
)

// Outcome is the read side shared by Result and Of[T].
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	Err() Error
}

// Response is the set of response shapes a handler may return. Only Result
// and Of[T] satisfy it. AsFailure builds a failure of the same shape and
// ignores the receiver's state, so it may be called on the zero value.
type Response[R any] interface {
	Outcome
	AsFailure(err Error) R
	sealed()
}

// Result is the outcome of an operation that produces no value.
// The zero value is not a valid Result; use Success or Failure.
type Result struct {
	success bool
	err     Error
}

// New creates a Result. It panics with ErrInvalidResult unless success is
// true exactly when err is None.
func New(success bool, err Error) Result {
	if success != err.IsNone() {
		panic(ErrInvalidResult)
	}
	return Result{success: success, err: err}
}

// Success returns a successful Result.
func Success() Result {
	return New(true, None)
}

// Failure returns a failed Result carrying err. It panics if err is None.
func Failure(err Error) Result {
	return New(false, err)
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool { return r.success }

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool { return !r.success }

// Err returns the failure reason, or None on success.
func (r Result) Err() Error { return r.err }

// AsFailure returns a failed Result carrying err.
func (Result) AsFailure(err Error) Result { return Failure(err) }

func (Result) sealed() {}

// Of is the outcome of an operation that produces a value of type T on
// success.
type Of[T any] struct {
	Result
	value T
}

// NewOf creates an Of[T]. It panics with ErrInvalidResult under the same
// rules as New. The value of a failed result is discarded.
func NewOf[T any](value T, success bool, err Error) Of[T] {
	r := New(success, err)
	if !success {
		var zero T
		value = zero
	}
	return Of[T]{Result: r, value: value}
}

// SuccessOf returns a successful Of[T] carrying value.
func SuccessOf[T any](value T) Of[T] {
	return NewOf(value, true, None)
}

// FailureOf returns a failed Of[T] carrying err. It panics if err is None.
func FailureOf[T any](err Error) Of[T] {
	var zero T
	return NewOf(zero, false, err)
}

// FromPtr converts a possibly nil pointer into an Of[T]: nil yields a failure
// carrying NullValue, anything else a success carrying the pointed-to value.
func FromPtr[T any](v *T) Of[T] {
	if v == nil {
		return FailureOf[T](NullValue)
	}
	return SuccessOf(*v)
}

// Value returns the value of a successful result. It panics with
// ErrFailedValueAccess if the result is a failure.
func (r Of[T]) Value() T {
	if !r.success {
		panic(ErrFailedValueAccess)
	}
	return r.value
}

// Get returns the value and true on success, or the zero value and false.
func (r Of[T]) Get() (T, bool) {
	return r.value, r.success
}

// AsFailure returns a failed Of[T] carrying err.
func (Of[T]) AsFailure(err Error) Of[T] { return FailureOf[T](err) }
