package result

import "slices"

// NewValidationError wraps field-level errors into a single Error of kind
// KindValidation. The sub-errors keep their order.
func NewValidationError(errs []Error) Error {
	return Error{
		code:        validationErrorCode,
		description: validationErrorDescription,
		kind:        KindValidation,
		aggregate:   true,
		errors:      slices.Clone(errs),
	}
}

// ValidationErrorFromResults builds a validation error from the failed
// entries of results, in their original order. Successes are skipped.
func ValidationErrorFromResults(results []Result) Error {
	errs := make([]Error, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Err())
		}
	}
	return NewValidationError(errs)
}
