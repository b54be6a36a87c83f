package projects

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/validation"
	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

// Register binds every command and query of the module to h and adds their
// validators to set.
func Register(m *messaging.Mediator, set *validation.Set, v *validator.Validate, h *Handlers) {
	messaging.Register[CreateProject, result.Of[project.Snapshot]](m, messaging.HandlerFunc[CreateProject, result.Of[project.Snapshot]](h.CreateProject))
	messaging.Register[RenameProject, result.Result](m, messaging.HandlerFunc[RenameProject, result.Result](h.RenameProject))
	messaging.Register[DeleteProject, result.Result](m, messaging.HandlerFunc[DeleteProject, result.Result](h.DeleteProject))
	messaging.Register[AddTodo, result.Of[todo.Snapshot]](m, messaging.HandlerFunc[AddTodo, result.Of[todo.Snapshot]](h.AddTodo))
	messaging.Register[UpdateTodoProgress, result.Of[todo.Snapshot]](m, messaging.HandlerFunc[UpdateTodoProgress, result.Of[todo.Snapshot]](h.UpdateTodoProgress))
	messaging.Register[RemoveTodo, result.Result](m, messaging.HandlerFunc[RemoveTodo, result.Result](h.RemoveTodo))
	messaging.Register[GetProject, result.Of[project.Snapshot]](m, messaging.HandlerFunc[GetProject, result.Of[project.Snapshot]](h.GetProject))
	messaging.Register[ListProjects, result.Of[[]project.Snapshot]](m, messaging.HandlerFunc[ListProjects, result.Of[[]project.Snapshot]](h.ListProjects))

	RegisterValidators(set, v)
}

// Subscribe attaches the module's event handlers to p. Every event is logged
// and, for each sink, forwarded.
func Subscribe(p *messaging.Publisher, logger *slog.Logger, sinks ...ports.EventSink) {
	messaging.SubscribeAll(p, messaging.EventHandler[domain.Event](LogEvent(logger)))
	messaging.Subscribe[project.TodoCompleted](p, LogCompletion(logger))
	for _, sink := range sinks {
		messaging.SubscribeAll(p, messaging.EventHandler[domain.Event](Forward(sink)))
	}
}
