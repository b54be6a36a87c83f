package projects

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-service-common/internal/app/validation"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

// RegisterValidators adds the module's validators to set. Struct tags cover
// required fields, lengths and id formats; category names and progress
// bounds have hand-written rules.
func RegisterValidators(set *validation.Set, v *validator.Validate) {
	validation.Register[CreateProject](set, validation.NewStruct[CreateProject](v))
	validation.Register[RenameProject](set, validation.NewStruct[RenameProject](v))
	validation.Register[DeleteProject](set, validation.NewStruct[DeleteProject](v))
	validation.Register[AddTodo](set, validation.NewStruct[AddTodo](v))
	validation.Register[AddTodo](set, validation.Func[AddTodo](validateCategory))
	validation.Register[UpdateTodoProgress](set, validation.NewStruct[UpdateTodoProgress](v))
	validation.Register[UpdateTodoProgress](set, validation.Func[UpdateTodoProgress](validateProgress))
	validation.Register[RemoveTodo](set, validation.NewStruct[RemoveTodo](v))
}

// validateCategory leaves empty categories to the required tag.
func validateCategory(_ context.Context, cmd AddTodo) ([]validation.Failure, error) {
	if cmd.Category == "" {
		return nil, nil
	}
	if _, ok := todo.Categories().TryFromName(cmd.Category); ok {
		return nil, nil
	}

	names := make([]string, 0, 3)
	for _, c := range todo.Categories().Members() {
		names = append(names, c.Name())
	}
	return []validation.Failure{{
		Property: "Category",
		Code:     ErrUnknownCategory.Code(),
		Message:  fmt.Sprintf("Category must be one of %v", names),
	}}, nil
}

func validateProgress(_ context.Context, cmd UpdateTodoProgress) ([]validation.Failure, error) {
	if cmd.Progress >= 0 && cmd.Progress <= todo.MaxProgress {
		return nil, nil
	}
	return []validation.Failure{{
		Property: "Progress",
		Code:     todo.ErrProgressOutOfRange.Code(),
		Message:  todo.ErrProgressOutOfRange.Description(),
	}}, nil
}
