package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a sorted slog group, replacing the values
// of headers logging.IsSensitiveHeader reports. Multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) slog.Value {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		if logging.IsSensitiveHeader(k) {
			attrs = append(attrs, slog.String(k, redacted))
			continue
		}
		attrs = append(attrs, slog.String(k, strings.Join(headers[k], ",")))
	}
	return slog.GroupValue(attrs...)
}
