package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

// ErrInvalidBody is reported when a request body is not valid JSON.
var ErrInvalidBody = result.Problem("Body.InvalidJson", "The request body is not valid JSON")

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 validation problem and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteProblem(w, r, result.Failure(result.NewValidationError([]result.Error{ErrInvalidBody})))
		return false
	}
	return true
}

// send dispatches req through the mediator and writes the response. Faults
// become a generic 500, business failures become problem details, and on
// success body renders the payload. A nil body writes status with no
// content.
func send[Req messaging.Request, Res result.Response[Res]](
	w http.ResponseWriter,
	r *http.Request,
	m *messaging.Mediator,
	req Req,
	status int,
	body func(Res) any,
) {
	ctx := r.Context()

	res, err := messaging.Send[Req, Res](ctx, m, req)
	if err != nil {
		logFault(ctx, r, err)
		dto.WriteFault(w, r)
		return
	}
	if res.IsFailure() {
		dto.WriteProblem(w, r, res)
		return
	}
	if body == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, body(res))
}

func logFault(ctx context.Context, r *http.Request, err error) {
	logging.FromContext(ctx).ErrorContext(ctx, "request failed with a fault",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
}

// value renders the payload of a successful Of[T].
func value[T any](res result.Of[T]) any {
	return res.Value()
}
