// Package projects is the application layer of the reference projects
// module: the commands and queries it accepts, their handlers and validators,
// and the subscribers reacting to project events.
package projects

import (
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
)

// CreateProject creates an empty project.
type CreateProject struct {
	messaging.Command
	Name        string `json:"name" validate:"required,max=99"`
	Description string `json:"description" validate:"max=499"`
}

// RenameProject changes a project's name.
type RenameProject struct {
	messaging.Command
	ProjectID string `json:"-" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,max=99"`
}

// DeleteProject removes a project and its todos.
type DeleteProject struct {
	messaging.Command
	ProjectID string `validate:"required,uuid"`
}

// AddTodo adds a todo to a project.
type AddTodo struct {
	messaging.Command
	ProjectID   string `json:"-" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=199"`
	Description string `json:"description" validate:"max=999"`
	Category    string `json:"category" validate:"required"`
}

// UpdateTodoProgress sets the progress of a todo, in percent.
type UpdateTodoProgress struct {
	messaging.Command
	ProjectID string `json:"-" validate:"required,uuid"`
	TodoID    string `json:"-" validate:"required,uuid"`
	Progress  int    `json:"progress_percent"`
}

// RemoveTodo removes a todo from a project.
type RemoveTodo struct {
	messaging.Command
	ProjectID string `validate:"required,uuid"`
	TodoID    string `validate:"required,uuid"`
}

// GetProject returns one project. Status and Category optionally restrict
// the todos included, by enum name.
type GetProject struct {
	messaging.Query
	ProjectID string
	Status    string
	Category  string
}

// ListProjects returns every project.
type ListProjects struct {
	messaging.Query
}
