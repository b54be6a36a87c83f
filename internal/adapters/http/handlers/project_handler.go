// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/projects"
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/domain/todo"
)

// ProjectHandler translates project HTTP requests into commands and queries
// sent through the mediator.
type ProjectHandler struct {
	mediator *messaging.Mediator
}

// NewProjectHandler creates a ProjectHandler dispatching through m.
func NewProjectHandler(m *messaging.Mediator) *ProjectHandler {
	return &ProjectHandler{mediator: m}
}

// MapEndpoint registers the project routes on r.
func (h *ProjectHandler) MapEndpoint(r chi.Router) {
	r.Get("/projects", h.ListProjects)
	r.Post("/projects", h.CreateProject)
	r.Get("/projects/{id}", h.GetProject)
	r.Patch("/projects/{id}", h.RenameProject)
	r.Delete("/projects/{id}", h.DeleteProject)

	r.Post("/projects/{id}/todos", h.AddTodo)
	r.Patch("/projects/{id}/todos/{todoId}", h.UpdateTodoProgress)
	r.Delete("/projects/{id}/todos/{todoId}", h.RemoveTodo)
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	send(w, r, h.mediator, projects.ListProjects{}, http.StatusOK,
		func(res result.Of[[]project.Snapshot]) any {
			return dto.ToProjectListResponse(res.Value())
		})
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var cmd projects.CreateProject
	if !decodeJSONBody(w, r, &cmd) {
		return
	}
	send(w, r, h.mediator, cmd, http.StatusCreated, value[project.Snapshot])
}

// GetProject handles GET /api/v1/projects/{id}. The status and category
// query parameters filter the returned todos.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	q := projects.GetProject{
		ProjectID: chi.URLParam(r, "id"),
		Status:    r.URL.Query().Get("status"),
		Category:  r.URL.Query().Get("category"),
	}
	send(w, r, h.mediator, q, http.StatusOK, value[project.Snapshot])
}

// RenameProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) RenameProject(w http.ResponseWriter, r *http.Request) {
	var cmd projects.RenameProject
	if !decodeJSONBody(w, r, &cmd) {
		return
	}
	cmd.ProjectID = chi.URLParam(r, "id")
	send[projects.RenameProject, result.Result](w, r, h.mediator, cmd, http.StatusNoContent, nil)
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	cmd := projects.DeleteProject{ProjectID: chi.URLParam(r, "id")}
	send[projects.DeleteProject, result.Result](w, r, h.mediator, cmd, http.StatusNoContent, nil)
}

// AddTodo handles POST /api/v1/projects/{id}/todos.
func (h *ProjectHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	var cmd projects.AddTodo
	if !decodeJSONBody(w, r, &cmd) {
		return
	}
	cmd.ProjectID = chi.URLParam(r, "id")
	send(w, r, h.mediator, cmd, http.StatusCreated, value[todo.Snapshot])
}

// UpdateTodoProgress handles PATCH /api/v1/projects/{id}/todos/{todoId}.
func (h *ProjectHandler) UpdateTodoProgress(w http.ResponseWriter, r *http.Request) {
	var cmd projects.UpdateTodoProgress
	if !decodeJSONBody(w, r, &cmd) {
		return
	}
	cmd.ProjectID = chi.URLParam(r, "id")
	cmd.TodoID = chi.URLParam(r, "todoId")
	send(w, r, h.mediator, cmd, http.StatusOK, value[todo.Snapshot])
}

// RemoveTodo handles DELETE /api/v1/projects/{id}/todos/{todoId}.
func (h *ProjectHandler) RemoveTodo(w http.ResponseWriter, r *http.Request) {
	cmd := projects.RemoveTodo{
		ProjectID: chi.URLParam(r, "id"),
		TodoID:    chi.URLParam(r, "todoId"),
	}
	send[projects.RemoveTodo, result.Result](w, r, h.mediator, cmd, http.StatusNoContent, nil)
}
