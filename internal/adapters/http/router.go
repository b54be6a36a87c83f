// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/handlers"
)

// APIPrefix is the path all endpoints are mounted under.
const APIPrefix = "/api/v1"

// Endpoint is a group of routes a module contributes to the API.
type Endpoint interface {
	MapEndpoint(r chi.Router)
}

// MapEndpoints registers every endpoint on r in order.
func MapEndpoints(r chi.Router, endpoints ...Endpoint) {
	for _, ep := range endpoints {
		ep.MapEndpoint(r)
	}
}

// NewRouter creates an HTTP handler with health routes at the root and the
// given endpoints under APIPrefix. Middleware is applied globally in the
// order given.
func NewRouter(
	health *handlers.HealthHandler,
	endpoints []Endpoint,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the API prefix).
	health.MapEndpoint(r)

	r.Route(APIPrefix, func(r chi.Router) {
		MapEndpoints(r, endpoints...)
	})

	return r
}
