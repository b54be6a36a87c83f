package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-service-common/internal/adapters/memory"
	"github.com/jsamuelsen11/go-service-common/internal/app/behavior"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/projects"
	"github.com/jsamuelsen11/go-service-common/internal/app/validation"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// newAPI wires the project endpoints to the real pipeline over an in-memory
// store.
func newAPI(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	set := validation.NewSet()
	m := messaging.New(
		behavior.ExceptionHandling(logger),
		behavior.Validation(set, logger, 2),
	)
	h := projects.NewHandlers(memory.NewProjectStore(), messaging.NewPublisher(logger), logger,
		projects.WithClock(func() time.Time { return testTime }))
	projects.Register(m, set, validation.NewValidate(), h)

	return mount(handlers.NewProjectHandler(m))
}

func mount(h *handlers.ProjectHandler) http.Handler {
	r := chi.NewRouter()
	h.MapEndpoint(r)
	return r
}

func do(t *testing.T, api http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequestWithContext(context.Background(), method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// projectBody is the decoded form of a project snapshot.
type projectBody struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Progress int        `json:"progress_percent"`
	Todos    []todoBody `json:"todos"`
}

type todoBody struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Progress int    `json:"progress_percent"`
}

type problemBody struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	Errors   []struct {
		Code string `json:"code"`
	} `json:"errors"`
}

func createProject(t *testing.T, api http.Handler, name string) projectBody {
	t.Helper()
	rec := do(t, api, http.MethodPost, "/projects", jsonBody(t, map[string]string{"name": name}))
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[projectBody](t, rec)
}

func addTodo(t *testing.T, api http.Handler, projectID, title, category string) todoBody {
	t.Helper()
	rec := do(t, api, http.MethodPost, "/projects/"+projectID+"/todos",
		jsonBody(t, map[string]string{"title": title, "category": category}))
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[todoBody](t, rec)
}
