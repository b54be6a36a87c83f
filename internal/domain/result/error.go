package result

import (
	"slices"
)

// Kind classifies an Error. The zero value is KindFailure.
type Kind int

const (
	// KindFailure is an unexpected failure. It is the default kind.
	KindFailure Kind = iota
	// KindValidation marks input rejected by rule checks.
	KindValidation
	// KindNotFound marks a missing resource.
	KindNotFound
	// KindProblem marks a business-rule violation the client can correct.
	KindProblem
	// KindConflict marks a state conflict.
	KindConflict
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindProblem:
		return "problem"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

const (
	validationErrorCode        = "General.ValidationError"
	validationErrorDescription = "One or more validation errors occurred."
)

// Error is an immutable code, description and kind triple describing why an
// operation failed. The zero value is None.
//
// Error implements the error interface so it can be logged and wrapped like
// any other Go error, but it is meant to travel inside a Result rather than
// as a second return value.
type Error struct {
	code        string
	description string
	kind        Kind

	// Set only for errors built by NewValidationError.
	aggregate bool
	errors    []Error
}

// None represents the absence of an error. Successful results carry None.
var None = Error{}

// NullValue is the error carried by a result built from a nil pointer.
var NullValue = NewError("General.NullValue", "A null value was provided", KindFailure)

// NewError creates an Error with the given code, description and kind.
func NewError(code, description string, kind Kind) Error {
	return Error{code: code, description: description, kind: kind}
}

// Unexpected creates an Error of kind KindFailure.
func Unexpected(code, description string) Error {
	return NewError(code, description, KindFailure)
}

// NotFound creates an Error of kind KindNotFound.
func NotFound(code, description string) Error {
	return NewError(code, description, KindNotFound)
}

// Problem creates an Error of kind KindProblem.
func Problem(code, description string) Error {
	return NewError(code, description, KindProblem)
}

// Conflict creates an Error of kind KindConflict.
func Conflict(code, description string) Error {
	return NewError(code, description, KindConflict)
}

// Code returns the machine-readable error code, e.g. "Project.NotFound".
func (e Error) Code() string { return e.code }

// Description returns the human-readable description.
func (e Error) Description() string { return e.description }

// Kind returns the error classification.
func (e Error) Kind() Kind { return e.kind }

// IsNone reports whether e is the None sentinel.
func (e Error) IsNone() bool {
	return e.code == "" && e.description == "" && e.kind == KindFailure && !e.aggregate
}

// IsValidationError reports whether e aggregates sub-errors, i.e. it was
// built by NewValidationError or ValidationErrorFromResults.
func (e Error) IsValidationError() bool { return e.aggregate }

// Errors returns a copy of the aggregated sub-errors in their original order.
// It returns nil for errors that are not validation errors.
func (e Error) Errors() []Error {
	if !e.aggregate {
		return nil
	}
	return slices.Clone(e.errors)
}

// Equal reports whether e and other have the same code, description, kind and
// sub-errors.
func (e Error) Equal(other Error) bool {
	if e.code != other.code || e.description != other.description ||
		e.kind != other.kind || e.aggregate != other.aggregate {
		return false
	}
	return slices.EqualFunc(e.errors, other.errors, Error.Equal)
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.IsNone() {
		return "none"
	}
	return e.code + ": " + e.description
}
