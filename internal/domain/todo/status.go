package todo

import "github.com/jsamuelsen11/go-service-common/internal/domain"

// Status represents the completion state of a Todo. It is derived from the
// todo's progress and never set directly.
type Status struct{ domain.Enum[int] }

var (
	StatusPending    = Status{domain.NewEnum("pending", 1)}
	StatusInProgress = Status{domain.NewEnum("in_progress", 2)}
	StatusDone       = Status{domain.NewEnum("done", 3)}
)

var statuses = domain.NewEnumTable[Status, int](StatusPending, StatusInProgress, StatusDone)

// Statuses returns the lookup table for Status.
func Statuses() *domain.EnumTable[Status, int] { return statuses }

// ParseStatus looks a status up by name, ignoring case.
func ParseStatus(name string) (Status, error) {
	return statuses.FromName(name)
}

func statusFor(p Progress) Status {
	switch {
	case p.Percent() == 0:
		return StatusPending
	case p.IsComplete():
		return StatusDone
	default:
		return StatusInProgress
	}
}
