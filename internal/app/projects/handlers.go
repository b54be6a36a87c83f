package projects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-service-common/internal/app/uow"
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

// Handlers implements every command and query of the module against a
// ProjectRepository. Each command commits through a unit of work so the
// project's events are published only after it is stored.
type Handlers struct {
	repo      ports.ProjectRepository
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures Handlers.
type Option func(*Handlers)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handlers) { h.now = now }
}

// NewHandlers creates Handlers. Events raised by commands are dispatched
// through publisher. A nil logger discards output.
func NewHandlers(repo ports.ProjectRepository, publisher ports.EventPublisher, logger *slog.Logger, opts ...Option) *Handlers {
	h := &Handlers{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CreateProject handles CreateProject. Names are unique, ignoring case.
func (h *Handlers) CreateProject(ctx context.Context, cmd CreateProject) (result.Of[project.Snapshot], error) {
	taken, err := h.repo.NameTaken(ctx, cmd.Name, project.ID{})
	if err != nil {
		return result.Of[project.Snapshot]{}, h.fault(ctx, "CreateProject", err)
	}
	if taken {
		return result.FailureOf[project.Snapshot](project.ErrNameTaken), nil
	}

	created := project.New(cmd.Name, cmd.Description, h.now())
	if created.IsFailure() {
		return result.FailureOf[project.Snapshot](created.Err()), nil
	}

	p := created.Value()
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Save(ctx, p) })
	if err != nil {
		return result.Of[project.Snapshot]{}, h.fault(ctx, "CreateProject", err, slog.String("project_id", p.ID().String()))
	}
	if !failure.IsNone() {
		return result.FailureOf[project.Snapshot](failure), nil
	}

	h.log(ctx).InfoContext(ctx, "project created", slog.String("project_id", p.ID().String()))
	return result.SuccessOf(p.Snapshot()), nil
}

// RenameProject handles RenameProject.
func (h *Handlers) RenameProject(ctx context.Context, cmd RenameProject) (result.Result, error) {
	loaded, err := h.load(ctx, cmd.ProjectID)
	if err != nil || loaded.IsFailure() {
		return loaded.Result, err
	}
	p := loaded.Value()

	taken, err := h.repo.NameTaken(ctx, cmd.Name, p.ID())
	if err != nil {
		return result.Result{}, h.fault(ctx, "RenameProject", err, slog.String("project_id", cmd.ProjectID))
	}
	if taken {
		return result.Failure(project.ErrNameTaken), nil
	}

	if r := p.Rename(cmd.Name, h.now()); r.IsFailure() {
		return r, nil
	}
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Save(ctx, p) })
	if err != nil {
		return result.Result{}, h.fault(ctx, "RenameProject", err, slog.String("project_id", cmd.ProjectID))
	}
	return outcome(failure), nil
}

// DeleteProject handles DeleteProject.
func (h *Handlers) DeleteProject(ctx context.Context, cmd DeleteProject) (result.Result, error) {
	loaded, err := h.load(ctx, cmd.ProjectID)
	if err != nil || loaded.IsFailure() {
		return loaded.Result, err
	}
	p := loaded.Value()

	p.Delete(h.now())
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Delete(ctx, p.ID()) })
	if err != nil {
		return result.Result{}, h.fault(ctx, "DeleteProject", err, slog.String("project_id", cmd.ProjectID))
	}
	return outcome(failure), nil
}

// AddTodo handles AddTodo.
func (h *Handlers) AddTodo(ctx context.Context, cmd AddTodo) (result.Of[todo.Snapshot], error) {
	category, ok := todo.Categories().TryFromName(cmd.Category)
	if !ok {
		return result.FailureOf[todo.Snapshot](ErrUnknownCategory), nil
	}

	loaded, err := h.load(ctx, cmd.ProjectID)
	if err != nil {
		return result.Of[todo.Snapshot]{}, err
	}
	if loaded.IsFailure() {
		return result.FailureOf[todo.Snapshot](loaded.Err()), nil
	}
	p := loaded.Value()

	added := p.AddTodo(cmd.Title, cmd.Description, category, h.now())
	if added.IsFailure() {
		return result.FailureOf[todo.Snapshot](added.Err()), nil
	}
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Save(ctx, p) })
	if err != nil {
		return result.Of[todo.Snapshot]{}, h.fault(ctx, "AddTodo", err, slog.String("project_id", cmd.ProjectID))
	}
	if !failure.IsNone() {
		return result.FailureOf[todo.Snapshot](failure), nil
	}
	return result.SuccessOf(added.Value().Snapshot()), nil
}

// UpdateTodoProgress handles UpdateTodoProgress.
func (h *Handlers) UpdateTodoProgress(ctx context.Context, cmd UpdateTodoProgress) (result.Of[todo.Snapshot], error) {
	todoID, err := todo.ParseID(cmd.TodoID)
	if err != nil {
		return result.FailureOf[todo.Snapshot](ErrInvalidTodoID), nil
	}

	loaded, err := h.load(ctx, cmd.ProjectID)
	if err != nil {
		return result.Of[todo.Snapshot]{}, err
	}
	if loaded.IsFailure() {
		return result.FailureOf[todo.Snapshot](loaded.Err()), nil
	}
	p := loaded.Value()

	updated := p.UpdateTodoProgress(todoID, cmd.Progress, h.now())
	if updated.IsFailure() {
		return result.FailureOf[todo.Snapshot](updated.Err()), nil
	}
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Save(ctx, p) })
	if err != nil {
		return result.Of[todo.Snapshot]{}, h.fault(ctx, "UpdateTodoProgress", err,
			slog.String("project_id", cmd.ProjectID),
			slog.String("todo_id", cmd.TodoID),
		)
	}
	if !failure.IsNone() {
		return result.FailureOf[todo.Snapshot](failure), nil
	}
	return result.SuccessOf(updated.Value().Snapshot()), nil
}

// RemoveTodo handles RemoveTodo.
func (h *Handlers) RemoveTodo(ctx context.Context, cmd RemoveTodo) (result.Result, error) {
	todoID, err := todo.ParseID(cmd.TodoID)
	if err != nil {
		return result.Failure(ErrInvalidTodoID), nil
	}

	loaded, err := h.load(ctx, cmd.ProjectID)
	if err != nil || loaded.IsFailure() {
		return loaded.Result, err
	}
	p := loaded.Value()

	if r := p.RemoveTodo(todoID, h.now()); r.IsFailure() {
		return r, nil
	}
	failure, err := h.commit(ctx, p, func(ctx context.Context) error { return h.repo.Save(ctx, p) })
	if err != nil {
		return result.Result{}, h.fault(ctx, "RemoveTodo", err,
			slog.String("project_id", cmd.ProjectID),
			slog.String("todo_id", cmd.TodoID),
		)
	}
	return outcome(failure), nil
}

// GetProject handles GetProject.
func (h *Handlers) GetProject(ctx context.Context, q GetProject) (result.Of[project.Snapshot], error) {
	filter, failure := parseFilter(q.Status, q.Category)
	if !failure.IsNone() {
		return result.FailureOf[project.Snapshot](failure), nil
	}

	loaded, err := h.load(ctx, q.ProjectID)
	if err != nil {
		return result.Of[project.Snapshot]{}, err
	}
	if loaded.IsFailure() {
		return result.FailureOf[project.Snapshot](loaded.Err()), nil
	}

	snap := loaded.Value().Snapshot()
	if filter != (todo.Filter{}) {
		snap.Todos = snap.Todos[:0]
		for _, t := range filter.Apply(loaded.Value().Todos()) {
			snap.Todos = append(snap.Todos, t.Snapshot())
		}
	}
	return result.SuccessOf(snap), nil
}

// ListProjects handles ListProjects.
func (h *Handlers) ListProjects(ctx context.Context, _ ListProjects) (result.Of[[]project.Snapshot], error) {
	all, err := h.repo.List(ctx)
	if err != nil {
		return result.Of[[]project.Snapshot]{}, h.fault(ctx, "ListProjects", err)
	}

	out := make([]project.Snapshot, 0, len(all))
	for _, p := range all {
		out = append(out, p.Snapshot())
	}
	return result.SuccessOf(out), nil
}

// load fetches a project by its textual id. Unknown or malformed ids are
// failures; repository errors are faults.
func (h *Handlers) load(ctx context.Context, rawID string) (result.Of[*project.Project], error) {
	id, err := project.ParseID(rawID)
	if err != nil {
		return result.FailureOf[*project.Project](ErrInvalidProjectID), nil
	}

	p, err := h.repo.Get(ctx, id)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return result.FailureOf[*project.Project](project.ErrNotFound(id)), nil
	case err != nil:
		return result.Of[*project.Project]{}, h.fault(ctx, "LoadProject", err, slog.String("project_id", rawID))
	}
	return result.SuccessOf(p), nil
}

// commit saves p and publishes its events. Writes rejected because another
// request changed the store first come back as a failure: a stale version,
// a name claimed in the meantime, or a project deleted in the meantime. A
// publish failure is logged and swallowed because the project is already
// stored.
func (h *Handlers) commit(ctx context.Context, p *project.Project, save uow.Step) (result.Error, error) {
	u := uow.New(h.publisher)
	if err := u.Track(p, save, uow.Named("project "+p.ID().String())); err != nil {
		return result.None, err
	}

	ctx = logging.WithLogger(ctx, h.log(ctx).With(slog.String("project_id", p.ID().String())))
	err := u.Commit(ctx)
	switch {
	case err == nil:
		return result.None, nil
	case errors.Is(err, uow.ErrPublishFailed):
		h.log(ctx).WarnContext(ctx, "project saved but event handling failed",
			slog.String("operation", "Commit"),
			slog.Any("error", err),
		)
		return result.None, nil
	case errors.Is(err, ports.ErrConflict):
		return project.ErrConcurrentUpdate, nil
	case errors.Is(err, ports.ErrNameTaken):
		return project.ErrNameTaken, nil
	case errors.Is(err, ports.ErrNotFound):
		return project.ErrNotFound(p.ID()), nil
	}
	return result.None, err
}

func outcome(failure result.Error) result.Result {
	if failure.IsNone() {
		return result.Success()
	}
	return result.Failure(failure)
}

func (h *Handlers) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, h.logger)
}

func (h *Handlers) fault(ctx context.Context, operation string, err error, attrs ...any) error {
	args := append([]any{slog.String("operation", operation)}, attrs...)
	args = append(args, slog.Any("error", err))
	h.log(ctx).ErrorContext(ctx, "project operation failed", args...)
	return fmt.Errorf("%s: %w", operation, err)
}

func parseFilter(status, category string) (todo.Filter, result.Error) {
	var f todo.Filter
	if status != "" {
		s, ok := todo.Statuses().TryFromName(status)
		if !ok {
			return f, ErrUnknownStatus
		}
		f.Status = s
	}
	if category != "" {
		c, ok := todo.Categories().TryFromName(category)
		if !ok {
			return f, ErrUnknownCategory
		}
		f.Category = c
	}
	return f, result.None
}
