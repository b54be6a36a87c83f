package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and writes the generic 500 problem response; the panic value never reaches
// the client. If the response headers have already been written, only the
// log entry is emitted. http.ErrAbortHandler is re-raised so the server can
// abort the connection.
//
// The request-scoped logger from the Logging middleware is preferred when
// present.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logging.FromContextOr(r.Context(), logger).ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteFault(rw, r)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
