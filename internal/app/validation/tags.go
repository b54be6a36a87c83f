package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NewValidate returns a validator.Validate configured the way Struct
// expects. Share one instance; it caches struct metadata.
func NewValidate() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates requests using their `validate` struct tags. Each field
// error becomes a Failure with Code "<Field>.<tag>".
type Struct[T any] struct {
	v *validator.Validate
}

// NewStruct returns a tag-driven validator for T backed by v.
func NewStruct[T any](v *validator.Validate) Struct[T] {
	return Struct[T]{v: v}
}

// Validate implements Validator.
func (s Struct[T]) Validate(ctx context.Context, req T) ([]Failure, error) {
	err := s.v.StructCtx(ctx, req)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validating struct tags: %w", err)
	}

	failures := make([]Failure, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, Failure{
			Property: fe.Field(),
			Code:     fe.Field() + "." + fe.Tag(),
			Message:  message(fe),
		})
	}
	return failures, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag())
	}
}
