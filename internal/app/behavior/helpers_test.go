package behavior_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

type createWidget struct {
	messaging.Command
	Name string
}

type findWidget struct {
	messaging.Query
	Name string
}

// spyHandler counts invocations and answers with a fixed reply.
type spyHandler struct {
	mu    sync.Mutex
	calls int
	reply func(ctx context.Context) (result.Result, error)
}

func (h *spyHandler) Handle(ctx context.Context, _ createWidget) (result.Result, error) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	if h.reply == nil {
		return result.Success(), nil
	}
	return h.reply(ctx)
}

func (h *spyHandler) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func okWidgetQuery() messaging.HandlerFunc[findWidget, result.Of[string]] {
	return func(_ context.Context, req findWidget) (result.Of[string], error) {
		return result.SuccessOf(req.Name), nil
	}
}

// logBuffer captures JSON log lines for inspection.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()

	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func newTestLogger() (*slog.Logger, *logBuffer) {
	buf := &logBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func findEntry(entries []map[string]any, msg string) (map[string]any, bool) {
	for _, e := range entries {
		if e["msg"] == msg {
			return e, true
		}
	}
	return nil, false
}
