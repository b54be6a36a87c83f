package project

import (
	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

// Event names. Subscribers and webhook consumers route on these.
const (
	EventCreated       = "project.created"
	EventRenamed       = "project.renamed"
	EventDeleted       = "project.deleted"
	EventTodoAdded     = "project.todo_added"
	EventTodoCompleted = "project.todo_completed"
	EventTodoRemoved   = "project.todo_removed"
)

type eventHeader struct {
	domain.BaseEvent
	ProjectID ID `json:"project_id"`
}

func newHeader(id ID) eventHeader {
	return eventHeader{BaseEvent: domain.NewBaseEvent(), ProjectID: id}
}

// AggregateID returns the id of the project that raised the event.
func (h eventHeader) AggregateID() string { return h.ProjectID.String() }

// Created is raised when a project is created.
type Created struct {
	eventHeader
	Name string `json:"name"`
}

func (Created) EventName() string { return EventCreated }

// Renamed is raised when a project's name changes.
type Renamed struct {
	eventHeader
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

func (Renamed) EventName() string { return EventRenamed }

// Deleted is raised when a project is deleted.
type Deleted struct {
	eventHeader
}

func (Deleted) EventName() string { return EventDeleted }

// TodoAdded is raised when a todo is added to a project.
type TodoAdded struct {
	eventHeader
	TodoID todo.ID `json:"todo_id"`
	Title  string  `json:"title"`
}

func (TodoAdded) EventName() string { return EventTodoAdded }

// TodoCompleted is raised when a todo reaches 100% progress.
type TodoCompleted struct {
	eventHeader
	TodoID todo.ID `json:"todo_id"`
}

func (TodoCompleted) EventName() string { return EventTodoCompleted }

// TodoRemoved is raised when a todo is removed from a project.
type TodoRemoved struct {
	eventHeader
	TodoID todo.ID `json:"todo_id"`
}

func (TodoRemoved) EventName() string { return EventTodoRemoved }
