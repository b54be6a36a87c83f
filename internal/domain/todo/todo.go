package todo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

const (
	// MaxTitleLength is the exclusive upper bound on title length in runes.
	MaxTitleLength = 200
	// MaxDescriptionLength is the exclusive upper bound on description length in runes.
	MaxDescriptionLength = 1000
)

var (
	ErrAlreadyDone         = result.Problem("Todo.AlreadyDone", "The todo is already done")
	ErrTitleTooLong        = result.Problem("Todo.TitleTooLong", "The todo title is too long")
	ErrDescriptionTooLong  = result.Problem("Todo.DescriptionTooLong", "The todo description is too long")
	ErrCategoryUnspecified = result.Problem("Todo.CategoryUnspecified", "A todo needs a category")
)

type idTag struct{}

// ID identifies a Todo.
type ID = domain.TypedID[idTag, uuid.UUID]

// NewID returns a fresh random ID.
func NewID() ID { return domain.NewUUIDID[idTag]() }

// ParseID parses a textual todo id.
func ParseID(s string) (ID, error) { return domain.ParseUUIDID[idTag](s) }

// Todo is a task item with progress tracking. Todos are owned by a project
// and only change through the project aggregate.
type Todo struct {
	domain.Entity[ID]
	title       string
	description string
	category    Category
	progress    Progress
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a pending todo with zero progress.
func New(title, description string, category Category, now time.Time) result.Of[*Todo] {
	if _, err := domain.GuardLength(title, MaxTitleLength, "title"); err != nil {
		return result.FailureOf[*Todo](ErrTitleTooLong)
	}
	if _, err := domain.GuardLength(description, MaxDescriptionLength, "description"); err != nil {
		return result.FailureOf[*Todo](ErrDescriptionTooLong)
	}
	if category.IsZero() {
		return result.FailureOf[*Todo](ErrCategoryUnspecified)
	}

	now = now.UTC()
	return result.SuccessOf(&Todo{
		Entity:      domain.NewEntity(NewID()),
		title:       title,
		description: description,
		category:    category,
		createdAt:   now,
		updatedAt:   now,
	})
}

func (t *Todo) Title() string { return t.title }
func (t *Todo) Description() string { return t.description }
func (t *Todo) Category() Category { return t.category }
func (t *Todo) Progress() Progress { return t.progress }
func (t *Todo) Status() Status { return statusFor(t.progress) }
func (t *Todo) CreatedAt() time.Time { return t.createdAt }
func (t *Todo) UpdatedAt() time.Time { return t.updatedAt }

// UpdateProgress sets the todo's progress. The status follows: 0% is
// pending, 100% is done, anything between is in progress. A done todo is
// frozen.
func (t *Todo) UpdateProgress(p Progress, now time.Time) result.Result {
	if t.Status() == StatusDone {
		return result.Failure(ErrAlreadyDone)
	}
	t.progress = p
	t.updatedAt = now.UTC()
	return result.Success()
}

// Snapshot is the plain-data form of a Todo used for persistence and
// presentation.
type Snapshot struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	Progress    int       `json:"progress_percent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Snapshot returns the todo's current state.
func (t *Todo) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.ID(),
		Title:       t.title,
		Description: t.description,
		Category:    t.category,
		Status:      t.Status(),
		Progress:    t.progress.percent,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
	}
}

// FromSnapshot rehydrates a todo. The snapshot is trusted; no rules run.
func FromSnapshot(s Snapshot) *Todo {
	return &Todo{
		Entity:      domain.NewEntity(s.ID),
		title:       s.Title,
		description: s.Description,
		category:    s.Category,
		progress:    Progress{percent: s.Progress},
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}
