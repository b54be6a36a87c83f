// Package project holds the project aggregate: a named collection of todos.
package project

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

const (
	// MaxNameLength is the exclusive upper bound on name length in runes.
	MaxNameLength = 100
	// MaxDescriptionLength is the exclusive upper bound on description length in runes.
	MaxDescriptionLength = 500
)

type idTag struct{}

// ID identifies a Project.
type ID = domain.TypedID[idTag, uuid.UUID]

// NewID returns a fresh random ID.
func NewID() ID { return domain.NewUUIDID[idTag]() }

// ParseID parses a textual project id.
func ParseID(s string) (ID, error) { return domain.ParseUUIDID[idTag](s) }

// Project is the aggregate root owning a list of todos. Every state change
// raises a domain event that is published once the project is saved.
type Project struct {
	domain.AggregateRoot[ID]
	name        string
	description string
	todos       []*todo.Todo
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a project and raises Created.
func New(name, description string, now time.Time) result.Of[*Project] {
	if _, err := domain.GuardLength(name, MaxNameLength, "name"); err != nil {
		return result.FailureOf[*Project](ErrNameTooLong)
	}
	if _, err := domain.GuardLength(description, MaxDescriptionLength, "description"); err != nil {
		return result.FailureOf[*Project](ErrDescriptionTooLong)
	}

	now = now.UTC()
	p := &Project{
		AggregateRoot: domain.NewAggregateRoot(NewID()),
		name:          name,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
	}
	p.RaiseEvent(Created{eventHeader: newHeader(p.ID()), Name: name})
	return result.SuccessOf(p)
}

func (p *Project) Name() string { return p.name }

func (p *Project) Description() string { return p.description }

func (p *Project) CreatedAt() time.Time { return p.createdAt }

func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

// Todos returns the project's todos in insertion order.
func (p *Project) Todos() []*todo.Todo { return slices.Clone(p.todos) }

// Todo returns the todo with the given id.
func (p *Project) Todo(id todo.ID) (*todo.Todo, bool) {
	i := p.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return p.todos[i], true
}

// Progress returns the average progress of the project's todos.
func (p *Project) Progress() int { return todo.AverageProgress(p.todos) }

// Rename changes the project's name and raises Renamed.
func (p *Project) Rename(name string, now time.Time) result.Result {
	if name == p.name {
		return result.Failure(ErrNameUnchanged)
	}
	if _, err := domain.GuardLength(name, MaxNameLength, "name"); err != nil {
		return result.Failure(ErrNameTooLong)
	}

	old := p.name
	p.name = name
	p.touch(now)
	p.RaiseEvent(Renamed{eventHeader: newHeader(p.ID()), OldName: old, NewName: name})
	return result.Success()
}

// Delete raises Deleted. Removing the project from storage is the caller's
// job.
func (p *Project) Delete(now time.Time) {
	p.touch(now)
	p.RaiseEvent(Deleted{eventHeader: newHeader(p.ID())})
}

// AddTodo creates a todo inside the project and raises TodoAdded. Titles are
// unique within a project, ignoring case.
func (p *Project) AddTodo(title, description string, category todo.Category, now time.Time) result.Of[*todo.Todo] {
	for _, t := range p.todos {
		if strings.EqualFold(t.Title(), title) {
			return result.FailureOf[*todo.Todo](ErrDuplicateTodo)
		}
	}

	created := todo.New(title, description, category, now)
	if created.IsFailure() {
		return created
	}

	td := created.Value()
	p.todos = append(p.todos, td)
	p.touch(now)
	p.RaiseEvent(TodoAdded{eventHeader: newHeader(p.ID()), TodoID: td.ID(), Title: title})
	return created
}

// UpdateTodoProgress sets a todo's progress and raises TodoCompleted when it
// reaches 100%.
func (p *Project) UpdateTodoProgress(id todo.ID, percent int, now time.Time) result.Of[*todo.Todo] {
	td, ok := p.Todo(id)
	if !ok {
		return result.FailureOf[*todo.Todo](ErrTodoNotFound(id))
	}

	prog := todo.NewProgress(percent)
	if prog.IsFailure() {
		return result.FailureOf[*todo.Todo](prog.Err())
	}
	if r := td.UpdateProgress(prog.Value(), now); r.IsFailure() {
		return result.FailureOf[*todo.Todo](r.Err())
	}

	p.touch(now)
	if td.Status() == todo.StatusDone {
		p.RaiseEvent(TodoCompleted{eventHeader: newHeader(p.ID()), TodoID: id})
	}
	return result.SuccessOf(td)
}

// RemoveTodo removes a todo and raises TodoRemoved.
func (p *Project) RemoveTodo(id todo.ID, now time.Time) result.Result {
	i := p.indexOf(id)
	if i < 0 {
		return result.Failure(ErrTodoNotFound(id))
	}

	p.todos = slices.Delete(p.todos, i, i+1)
	p.touch(now)
	p.RaiseEvent(TodoRemoved{eventHeader: newHeader(p.ID()), TodoID: id})
	return result.Success()
}

func (p *Project) indexOf(id todo.ID) int {
	return slices.IndexFunc(p.todos, func(t *todo.Todo) bool { return t.ID() == id })
}

func (p *Project) touch(now time.Time) {
	p.updatedAt = now.UTC()
}

// Snapshot is the plain-data form of a Project used for persistence and
// presentation.
type Snapshot struct {
	ID          ID              `json:"id"`
	Version     int             `json:"version"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Todos       []todo.Snapshot `json:"todos"`
	Progress    int             `json:"progress_percent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Snapshot returns the project's current state. Pending events are not part
// of it.
func (p *Project) Snapshot() Snapshot {
	todos := make([]todo.Snapshot, 0, len(p.todos))
	for _, t := range p.todos {
		todos = append(todos, t.Snapshot())
	}
	return Snapshot{
		ID:          p.ID(),
		Version:     p.Version(),
		Name:        p.name,
		Description: p.description,
		Todos:       todos,
		Progress:    p.Progress(),
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}

// FromSnapshot rehydrates a project at the snapshot's version with an empty
// event queue.
func FromSnapshot(s Snapshot) *Project {
	todos := make([]*todo.Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		todos = append(todos, todo.FromSnapshot(t))
	}
	root := domain.NewAggregateRoot(s.ID)
	root.SetVersion(s.Version)
	return &Project{
		AggregateRoot: root,
		name:          s.Name,
		description:   s.Description,
		todos:         todos,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}
