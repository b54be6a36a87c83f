package todo

import "github.com/jsamuelsen11/go-service-common/internal/domain/result"

// MaxProgress is the progress of a finished todo.
const MaxProgress = 100

// ErrProgressOutOfRange is returned for progress values outside 0-100.
var ErrProgressOutOfRange = result.Problem("Todo.ProgressOutOfRange", "Progress must be between 0 and 100")

// Progress is a completion percentage between 0 and 100.
type Progress struct {
	percent int
}

// NewProgress validates percent.
func NewProgress(percent int) result.Of[Progress] {
	if percent < 0 || percent > MaxProgress {
		return result.FailureOf[Progress](ErrProgressOutOfRange)
	}
	return result.SuccessOf(Progress{percent: percent})
}

// Percent returns the completion percentage.
func (p Progress) Percent() int { return p.percent }

// IsComplete reports whether the progress is 100%.
func (p Progress) IsComplete() bool { return p.percent == MaxProgress }

// EqualityComponents implements domain.ValueObject.
func (p Progress) EqualityComponents() []any { return []any{p.percent} }

// AverageProgress returns the average progress percentage across all
// provided todos. Returns 0 if the slice is empty.
func AverageProgress(todos []*Todo) int {
	if len(todos) == 0 {
		return 0
	}
	var total int
	for _, t := range todos {
		total += t.progress.percent
	}
	return total / len(todos)
}
