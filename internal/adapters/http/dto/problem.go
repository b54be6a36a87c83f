// Package dto holds the HTTP wire shapes of the API: RFC 9457 problem
// details for failures and the list envelopes returned by queries.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

// ErrProblemFromSuccess is the panic value when Problem is given a
// successful outcome.
var ErrProblemFromSuccess = errors.New("dto: can't convert a successful result to a problem")

// ContentTypeProblem is the media type of problem responses.
const ContentTypeProblem = "application/problem+json"

const (
	typeBadRequest = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	typeNotFound   = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	typeConflict   = "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	typeServer     = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	typeTimeout    = "https://tools.ietf.org/html/rfc7231#section-6.6.5"

	faultTitle  = "Server failure"
	faultDetail = "An unexpected error occurred"
)

// ProblemDetails is an RFC 9457 problem response. Errors is set only for
// validation failures.
type ProblemDetails struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one entry of the errors extension.
type ErrorDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Problem converts a failed outcome into problem details. Failures of kind
// KindFailure are reported generically so internal descriptions never reach
// the client. It panics with ErrProblemFromSuccess for a successful outcome.
func Problem(outcome result.Outcome) ProblemDetails {
	if outcome.IsSuccess() {
		panic(ErrProblemFromSuccess)
	}

	e := outcome.Err()
	if e.Kind() == result.KindFailure {
		return Fault()
	}

	p := ProblemDetails{
		Type:   problemType(e.Kind()),
		Title:  e.Code(),
		Status: StatusCode(e.Kind()),
		Detail: e.Description(),
	}
	if e.IsValidationError() {
		subs := e.Errors()
		p.Errors = make([]ErrorDetail, 0, len(subs))
		for _, sub := range subs {
			p.Errors = append(p.Errors, ErrorDetail{
				Code:        sub.Code(),
				Description: sub.Description(),
				Type:        sub.Kind().String(),
			})
		}
	}
	return p
}

// Fault returns the problem details reported for unexpected failures.
func Fault() ProblemDetails {
	return ProblemDetails{
		Type:   typeServer,
		Title:  faultTitle,
		Status: http.StatusInternalServerError,
		Detail: faultDetail,
	}
}

// Timeout returns the problem details reported when a request runs past its
// deadline.
func Timeout() ProblemDetails {
	return ProblemDetails{
		Type:   typeTimeout,
		Title:  "Request timeout",
		Status: http.StatusGatewayTimeout,
		Detail: "The request did not complete in time",
	}
}

// StatusCode returns the HTTP status for an error kind.
func StatusCode(kind result.Kind) int {
	switch kind {
	case result.KindValidation, result.KindProblem:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func problemType(kind result.Kind) string {
	switch kind {
	case result.KindValidation, result.KindProblem:
		return typeBadRequest
	case result.KindNotFound:
		return typeNotFound
	case result.KindConflict:
		return typeConflict
	default:
		return typeServer
	}
}

// WriteProblem writes the problem details for a failed outcome with the
// request URI as instance.
func WriteProblem(w http.ResponseWriter, r *http.Request, outcome result.Outcome) {
	writeProblem(w, r, Problem(outcome))
}

// WriteFault writes the generic 500 problem used for Go errors and
// recovered panics.
func WriteFault(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, r, Fault())
}

// WriteTimeout writes the 504 problem used when a request exceeds its
// deadline.
func WriteTimeout(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, r, Timeout())
}

func writeProblem(w http.ResponseWriter, r *http.Request, p ProblemDetails) {
	p.Instance = r.RequestURI
	if p.Instance == "" && r.URL != nil {
		p.Instance = r.URL.RequestURI()
	}

	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response",
			slog.Any("error", err),
		)
	}
}
