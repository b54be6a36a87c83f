package domain

import "errors"

// Sentinel errors for errors.Is() checking.
var (
	// ErrZeroID is the panic value raised when a TypedID is built from the
	// zero value of its underlying type, and the error returned when parsing
	// one from text.
	ErrZeroID = errors.New("typed id: zero value is not a valid identifier")

	// ErrUnknownEnum is returned when a smart enum lookup finds no member.
	ErrUnknownEnum = errors.New("invalid value for input")

	// ErrLengthExceeded is returned by GuardLength.
	ErrLengthExceeded = errors.New("maximum length exceeded")
)
