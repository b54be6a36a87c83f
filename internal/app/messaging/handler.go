package messaging

import (
	"context"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

// Handler handles one request type. Res is either result.Result or
// result.Of[T]; business failures are returned as failed results and the
// error is reserved for faults.
type Handler[Req Request, Res result.Response[Res]] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[Req Request, Res result.Response[Res]] func(ctx context.Context, req Req) (Res, error)

// Handle calls f(ctx, req).
func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}
