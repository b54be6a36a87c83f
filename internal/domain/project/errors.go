package project

import (
	"fmt"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

var (
	ErrNameTooLong        = result.Problem("Project.NameTooLong", "The project name is too long")
	ErrDescriptionTooLong = result.Problem("Project.DescriptionTooLong", "The project description is too long")
	ErrNameUnchanged      = result.Problem("Project.NameUnchanged", "The new name equals the current name")
	ErrNameTaken          = result.Conflict("Project.NameTaken", "A project with this name already exists")
	ErrDuplicateTodo      = result.Conflict("Project.DuplicateTodo", "The project already has a todo with this title")
	ErrConcurrentUpdate   = result.Conflict("Project.ConcurrentUpdate", "The project was changed by another request; reload it and retry")
)

// ErrNotFound reports a missing project.
func ErrNotFound(id ID) result.Error {
	return result.NotFound("Project.NotFound", fmt.Sprintf("The project with id '%s' was not found", id))
}

// ErrTodoNotFound reports a todo missing from a project.
func ErrTodoNotFound(id todo.ID) result.Error {
	return result.NotFound("Project.TodoNotFound", fmt.Sprintf("The todo with id '%s' was not found", id))
}
