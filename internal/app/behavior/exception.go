package behavior

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

// ExceptionHandling returns a behavior that turns faults from the rest of the
// pipeline into *messaging.ApplicationError. Panics are recovered and carried
// as *messaging.PanicError. Business failures pass through untouched.
func ExceptionHandling(logger *slog.Logger) messaging.Behavior {
	return func(ctx context.Context, env messaging.Envelope, next messaging.Next) (out result.Outcome, err error) {
		defer func() {
			if v := recover(); v != nil {
				out, err = nil, &messaging.PanicError{Value: v, Stack: debug.Stack()}
			}
			if err == nil {
				return
			}

			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "unhandled error while handling request",
				slog.String("operation", "ExceptionHandling"),
				slog.String("request", env.Name),
				slog.Any("error", err),
			)
			out, err = nil, messaging.NewApplicationError(env.Name, err)
		}()

		return next(ctx)
	}
}
