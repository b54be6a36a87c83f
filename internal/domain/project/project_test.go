package project_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

var now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newProject(t *testing.T) *project.Project {
	t.Helper()
	r := project.New("Sprint 1", "First sprint tasks", now)
	if r.IsFailure() {
		t.Fatalf("New() failed: %v", r.Err())
	}
	p := r.Value()
	p.PopDomainEvents()
	return p
}

func eventNames(events []domain.Event) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.EventName())
	}
	return names
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("raises created", func(t *testing.T) {
		t.Parallel()

		r := project.New("Sprint 1", "First sprint tasks", now)
		if r.IsFailure() {
			t.Fatalf("New() err = %v", r.Err())
		}
		p := r.Value()
		events := p.PopDomainEvents()
		if len(events) != 1 {
			t.Fatalf("events = %v, want one created event", eventNames(events))
		}
		created, ok := events[0].(project.Created)
		if !ok {
			t.Fatalf("event type = %T, want project.Created", events[0])
		}
		if created.ProjectID != p.ID() || created.Name != "Sprint 1" {
			t.Errorf("Created = %+v, want project %v named Sprint 1", created, p.ID())
		}
		if created.AggregateID() != p.ID().String() {
			t.Errorf("AggregateID() = %q, want %q", created.AggregateID(), p.ID().String())
		}
	})

	t.Run("rejects long name", func(t *testing.T) {
		t.Parallel()

		r := project.New(strings.Repeat("n", project.MaxNameLength), "", now)
		if !r.Err().Equal(project.ErrNameTooLong) {
			t.Errorf("New() err = %v, want ErrNameTooLong", r.Err())
		}
	})

	t.Run("rejects long description", func(t *testing.T) {
		t.Parallel()

		r := project.New("ok", strings.Repeat("d", project.MaxDescriptionLength), now)
		if !r.Err().Equal(project.ErrDescriptionTooLong) {
			t.Errorf("New() err = %v, want ErrDescriptionTooLong", r.Err())
		}
	})
}

func TestProject_Rename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		newName string
		wantErr result.Error
	}{
		{name: "renames", newName: "Sprint 2"},
		{name: "same name is a problem", newName: "Sprint 1", wantErr: project.ErrNameUnchanged},
		{name: "too long", newName: strings.Repeat("x", project.MaxNameLength+1), wantErr: project.ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newProject(t)
			r := p.Rename(tt.newName, now.Add(time.Hour))
			events := p.PopDomainEvents()

			if !tt.wantErr.IsNone() {
				if !r.Err().Equal(tt.wantErr) {
					t.Errorf("Rename() err = %v, want %v", r.Err(), tt.wantErr)
				}
				if len(events) != 0 {
					t.Errorf("failed Rename() raised %v", eventNames(events))
				}
				return
			}

			if r.IsFailure() {
				t.Fatalf("Rename() err = %v", r.Err())
			}
			if p.Name() != tt.newName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.newName)
			}
			if len(events) != 1 {
				t.Fatalf("events = %v, want one renamed event", eventNames(events))
			}
			renamed, ok := events[0].(project.Renamed)
			if !ok || renamed.OldName != "Sprint 1" || renamed.NewName != tt.newName {
				t.Errorf("events = %+v, want one Renamed(Sprint 1 -> %s)", events, tt.newName)
			}
			if !p.UpdatedAt().Equal(now.Add(time.Hour)) {
				t.Errorf("UpdatedAt() = %v, want %v", p.UpdatedAt(), now.Add(time.Hour))
			}
		})
	}
}

func TestProject_TodoLifecycle(t *testing.T) {
	t.Parallel()

	p := newProject(t)

	added := p.AddTodo("Write docs", "README", todo.CategoryWork, now)
	if added.IsFailure() {
		t.Fatalf("AddTodo() err = %v", added.Err())
	}
	td := added.Value()

	dup := p.AddTodo("write DOCS", "", todo.CategoryWork, now)
	if !dup.Err().Equal(project.ErrDuplicateTodo) {
		t.Errorf("duplicate AddTodo() err = %v, want ErrDuplicateTodo", dup.Err())
	}

	if r := p.UpdateTodoProgress(td.ID(), 50, now); r.IsFailure() {
		t.Fatalf("UpdateTodoProgress(50) err = %v", r.Err())
	}
	if got := p.Progress(); got != 50 {
		t.Errorf("Progress() = %d, want 50", got)
	}
	if r := p.UpdateTodoProgress(td.ID(), 100, now); r.IsFailure() || r.Value().Status() != todo.StatusDone {
		t.Fatalf("UpdateTodoProgress(100) = %v, want done", r.Err())
	}
	if r := p.UpdateTodoProgress(td.ID(), 10, now); !r.Err().Equal(todo.ErrAlreadyDone) {
		t.Errorf("UpdateTodoProgress on done todo err = %v, want ErrAlreadyDone", r.Err())
	}
	if r := p.UpdateTodoProgress(td.ID(), 101, now); !r.Err().Equal(todo.ErrProgressOutOfRange) {
		t.Errorf("UpdateTodoProgress(101) err = %v, want ErrProgressOutOfRange", r.Err())
	}

	if r := p.RemoveTodo(td.ID(), now); r.IsFailure() {
		t.Fatalf("RemoveTodo() err = %v", r.Err())
	}
	if r := p.RemoveTodo(td.ID(), now); r.Err().Kind() != result.KindNotFound {
		t.Errorf("second RemoveTodo() kind = %v, want not_found", r.Err().Kind())
	}
	if len(p.Todos()) != 0 {
		t.Errorf("Todos() len = %d, want 0", len(p.Todos()))
	}

	got := eventNames(p.PopDomainEvents())
	want := []string{project.EventTodoAdded, project.EventTodoCompleted, project.EventTodoRemoved}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestProject_UpdateTodoProgress_UnknownTodo(t *testing.T) {
	t.Parallel()

	p := newProject(t)
	r := p.UpdateTodoProgress(todo.NewID(), 10, now)
	if r.Err().Kind() != result.KindNotFound || r.Err().Code() != "Project.TodoNotFound" {
		t.Errorf("err = %v, want Project.TodoNotFound", r.Err())
	}
}

func TestProject_Delete(t *testing.T) {
	t.Parallel()

	p := newProject(t)
	p.Delete(now)
	events := p.PopDomainEvents()
	if len(events) != 1 || events[0].EventName() != project.EventDeleted {
		t.Errorf("events = %v, want [project.deleted]", eventNames(events))
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	p := newProject(t)
	p.AddTodo("A", "", todo.CategoryPersonal, now)
	p.AddTodo("B", "", todo.CategoryOther, now)

	p.SetVersion(3)

	s := p.Snapshot()
	if len(s.Todos) != 2 || s.Todos[0].Title != "A" || s.Todos[1].Title != "B" {
		t.Fatalf("Snapshot().Todos = %+v, want [A B]", s.Todos)
	}

	back := project.FromSnapshot(s)
	if back.Version() != 3 {
		t.Errorf("FromSnapshot().Version() = %d, want 3", back.Version())
	}
	if back.ID() != p.ID() || back.Name() != p.Name() || len(back.Todos()) != 2 {
		t.Errorf("FromSnapshot() = %+v, want %+v", back.Snapshot(), s)
	}
	if back.PendingEvents() != 0 {
		t.Errorf("rehydrated project has %d pending events, want 0", back.PendingEvents())
	}
}

func TestErrNotFound(t *testing.T) {
	t.Parallel()

	id := project.NewID()
	err := project.ErrNotFound(id)
	if err.Kind() != result.KindNotFound || !strings.Contains(err.Description(), id.String()) {
		t.Errorf("ErrNotFound() = %v", err)
	}
}
