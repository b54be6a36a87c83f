package behavior

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-service-common/internal/app/fanout"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/validation"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

// Validation returns a behavior that runs every validator registered in set
// for the incoming command, at most maxConcurrency at a time. When any
// validator reports failures the handler is skipped and the request fails
// with a single validation error listing all of them. Queries are not
// validated.
//
// A validator returning a Go error aborts the request with that error.
func Validation(set *validation.Set, logger *slog.Logger, maxConcurrency int) messaging.Behavior {
	return func(ctx context.Context, env messaging.Envelope, next messaging.Next) (result.Outcome, error) {
		if env.Kind != messaging.KindCommand {
			return next(ctx)
		}

		checks := set.For(env.Type)
		if len(checks) == 0 {
			return next(ctx)
		}

		reports, err := fanout.All(ctx, maxConcurrency, checks,
			func(ctx context.Context, check validation.Check) ([]validation.Failure, error) {
				return check(ctx, env.Request)
			})
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", env.Name, err)
		}

		var errs []result.Error
		for _, failures := range reports {
			for _, f := range failures {
				errs = append(errs, result.Problem(f.Code, f.Message))
			}
		}
		if len(errs) == 0 {
			return next(ctx)
		}

		logging.FromContextOr(ctx, logger).WarnContext(ctx, "validation failed",
			slog.Int("validation_count", len(errs)),
			slog.String("request", env.Name),
		)
		return env.Fail(result.NewValidationError(errs)), nil
	}
}
