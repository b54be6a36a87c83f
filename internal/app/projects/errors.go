package projects

import (
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

var (
	ErrInvalidProjectID = result.Problem("Project.InvalidId", "The project id is not a valid identifier")
	ErrInvalidTodoID    = result.Problem("Todo.InvalidId", "The todo id is not a valid identifier")
	ErrUnknownStatus    = result.Problem("Todo.UnknownStatus", "The status filter is not a known status")
	ErrUnknownCategory  = result.Problem("Todo.UnknownCategory", "The category is not a known category")
)
