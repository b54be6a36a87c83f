package behavior

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-service-common/internal/app/behavior"

// Outcome labels recorded on spans and metrics.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeFault   = "fault"
)

// Telemetry returns a behavior that wraps each request in a span and records
// the pipeline duration and count metrics. If metrics is nil only the span
// is recorded.
func Telemetry(metrics *telemetry.Metrics) messaging.Behavior {
	return func(ctx context.Context, env messaging.Envelope, next messaging.Next) (result.Outcome, error) {
		start := time.Now()

		tracer := otel.GetTracerProvider().Tracer(tracerName)
		ctx, span := tracer.Start(ctx, env.Name,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				telemetry.AttrRequest.String(env.Name),
				telemetry.AttrRequestKind.String(env.Kind.String()),
			),
		)
		defer span.End()

		out, err := next(ctx)

		outcome := outcomeOf(out, err)
		span.SetAttributes(telemetry.AttrOutcome.String(outcome))
		switch outcome {
		case outcomeFault:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case outcomeFailure:
			span.SetAttributes(attribute.String("error.code", out.Err().Code()))
		}

		recordPipelineMetrics(ctx, metrics, env, start, outcome)
		return out, err
	}
}

func outcomeOf(out result.Outcome, err error) string {
	switch {
	case err != nil:
		return outcomeFault
	case out.IsFailure():
		return outcomeFailure
	default:
		return outcomeSuccess
	}
}

// recordPipelineMetrics is safe to call with nil metrics.
func recordPipelineMetrics(ctx context.Context, metrics *telemetry.Metrics, env messaging.Envelope, start time.Time, outcome string) {
	if metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrRequest.String(env.Name),
		telemetry.AttrRequestKind.String(env.Kind.String()),
		telemetry.AttrOutcome.String(outcome),
	)

	metrics.PipelineRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.PipelineRequestTotal.Add(ctx, 1, attrs)
}
