package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{name: "authorization", header: "Authorization", values: []string{"Bearer secret"}, want: "[REDACTED]"},
		{name: "api key", header: "X-Api-Key", values: []string{"k-123"}, want: "[REDACTED]"},
		{name: "cookie", header: "Cookie", values: []string{"session=abc"}, want: "[REDACTED]"},
		{name: "webhook signature", header: "X-Webhook-Signature", values: []string{"sha256=ab"}, want: "[REDACTED]"},
		{name: "non canonical key", header: "authorization", values: []string{"Basic x"}, want: "[REDACTED]"},
		{name: "plain", header: "Content-Type", values: []string{"application/json"}, want: "application/json"},
		{name: "multi value", header: "Accept", values: []string{"text/html", "application/json"}, want: "text/html,application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Set the map directly so non-canonical keys survive.
			v := middleware.RedactHeaders(http.Header{tt.header: tt.values})
			attrs := v.Group()

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.header)
			}
			if got := attrs[0].Value.String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestRedactHeaders_SortedKeys(t *testing.T) {
	t.Parallel()

	v := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"r"},
		"Accept":        {"*/*"},
		"Authorization": {"secret"},
	})

	want := []string{"Accept", "Authorization", "X-Request-Id"}
	attrs := v.Group()
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, a := range attrs {
		if a.Key != want[i] {
			t.Errorf("attrs[%d].Key = %q, want %q", i, a.Key, want[i])
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if n := len(middleware.RedactHeaders(http.Header{}).Group()); n != 0 {
		t.Errorf("len(attrs) = %d, want 0", n)
	}
}
