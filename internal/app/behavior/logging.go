package behavior

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

// Logging returns a behavior that logs the start and completion of every
// request and hands the enriched logger to the rest of the pipeline through
// the context. Failed outcomes log at warn with the error code; faults are left
// to ExceptionHandling.
func Logging(logger *slog.Logger) messaging.Behavior {
	return func(ctx context.Context, env messaging.Envelope, next messaging.Next) (result.Outcome, error) {
		log := logging.FromContextOr(ctx, logger).With(
			slog.String("request", env.Name),
			slog.String("request_kind", env.Kind.String()),
		)
		ctx = logging.WithLogger(ctx, log)
		start := time.Now()

		log.DebugContext(ctx, "handling request")
		out, err := next(ctx)

		duration := slog.Duration("duration", time.Since(start))
		switch {
		case err != nil:
			log.DebugContext(ctx, "request aborted", duration)
		case out.IsFailure():
			log.WarnContext(ctx, "request failed", duration,
				slog.String("error_code", out.Err().Code()),
				slog.String("error_kind", out.Err().Kind().String()),
			)
		default:
			log.InfoContext(ctx, "request completed", duration)
		}

		return out, err
	}
}
