package result_test

import (
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	subs := []result.Error{
		result.Problem("Name.required", "Name is required"),
		result.Problem("Title.max", "Title is too long"),
	}
	verr := result.NewValidationError(subs)

	if verr.Code() != "General.ValidationError" {
		t.Errorf("Code() = %q, want General.ValidationError", verr.Code())
	}
	if verr.Description() != "One or more validation errors occurred." {
		t.Errorf("Description() = %q", verr.Description())
	}
	if verr.Kind() != result.KindValidation {
		t.Errorf("Kind() = %v, want validation", verr.Kind())
	}
	if !verr.IsValidationError() {
		t.Error("IsValidationError() = false, want true")
	}

	subs[0] = result.Problem("Mutated", "after construction")
	got := verr.Errors()
	if len(got) != 2 {
		t.Fatalf("Errors() len = %d, want 2", len(got))
	}
	if got[0].Code() != "Name.required" || got[1].Code() != "Title.max" {
		t.Errorf("Errors() codes = [%q %q], want [Name.required Title.max]", got[0].Code(), got[1].Code())
	}

	got[1] = result.None
	if verr.Errors()[1].IsNone() {
		t.Error("Errors() returned a slice aliasing internal state")
	}
}

func TestNewValidationError_Empty(t *testing.T) {
	t.Parallel()

	verr := result.NewValidationError(nil)
	if verr.IsNone() {
		t.Error("empty validation error should not be None")
	}
	if len(verr.Errors()) != 0 {
		t.Errorf("Errors() len = %d, want 0", len(verr.Errors()))
	}
}

func TestValidationErrorFromResults(t *testing.T) {
	t.Parallel()

	first := result.Problem("A", "first")
	second := result.NotFound("B", "second")
	results := []result.Result{
		result.Success(),
		result.Failure(first),
		result.Success(),
		result.Failure(second),
	}

	verr := result.ValidationErrorFromResults(results)
	got := verr.Errors()
	if len(got) != 2 {
		t.Fatalf("Errors() len = %d, want 2", len(got))
	}
	if !got[0].Equal(first) || !got[1].Equal(second) {
		t.Errorf("Errors() = %v, want [%v %v]", got, first, second)
	}

	if n := len(result.ValidationErrorFromResults([]result.Result{result.Success()}).Errors()); n != 0 {
		t.Errorf("all-success Errors() len = %d, want 0", n)
	}
}
