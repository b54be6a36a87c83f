// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server and the optional gRPC health
// listener, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/grpcserver"
	adapthttp "github.com/jsamuelsen11/go-service-common/internal/adapters/http"
	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-service-common/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-service-common/internal/adapters/memory"
	"github.com/jsamuelsen11/go-service-common/internal/adapters/webhook"

	"github.com/jsamuelsen11/go-service-common/internal/app/behavior"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/projects"
	"github.com/jsamuelsen11/go-service-common/internal/app/validation"
	"github.com/jsamuelsen11/go-service-common/internal/platform/config"
	"github.com/jsamuelsen11/go-service-common/internal/platform/health"
	"github.com/jsamuelsen11/go-service-common/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-common/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-service-common/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	var loadOpts []config.Option
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		loadOpts = append(loadOpts, config.WithConfigDir(dir))
	}
	cfg, err := config.Load(profile, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Debug("configuration loaded",
		slog.String("profile", profile),
		slog.Any("server", cfg.Server),
		slog.Any("pipeline", cfg.Pipeline),
		slog.Any("webhook", cfg.Webhook),
		slog.Any("grpc", cfg.GRPC),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memory.ProjectStore](injector))
	if cfg.Webhook.Enabled {
		registry.Register(do.MustInvoke[*webhook.Sink](injector))
	}

	// Serve until SIGINT/SIGTERM, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(gctx) })
	if cfg.GRPC.Enabled {
		grpcServer := do.MustInvoke[*grpcserver.Server](injector)
		g.Go(func() error { return grpcServer.Run(gctx) })
	}
	if err := g.Wait(); err != nil {
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("servers stopped")

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*memory.ProjectStore, error) {
		return memory.NewProjectStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Sink, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Webhook.Client, "webhook", metrics, logger)
		return webhook.New(client, cfg.Webhook.Path, webhook.WithSecret(cfg.Webhook.Secret)), nil
	})

	do.Provide(injector, func(i do.Injector) (*messaging.Publisher, error) {
		publisher := messaging.NewPublisher(logger)
		var sinks []ports.EventSink
		if cfg.Webhook.Enabled {
			sinks = append(sinks, do.MustInvoke[*webhook.Sink](i))
		}
		projects.Subscribe(publisher, logger, sinks...)
		return publisher, nil
	})

	do.Provide(injector, func(i do.Injector) (*messaging.Mediator, error) {
		store := do.MustInvoke[*memory.ProjectStore](i)
		publisher := do.MustInvoke[*messaging.Publisher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		set := validation.NewSet()
		m := messaging.New(
			behavior.ExceptionHandling(logger),
			behavior.Telemetry(metrics),
			behavior.Logging(logger),
			behavior.Validation(set, logger, cfg.Pipeline.ValidationConcurrency),
		)
		projects.Register(m, set, validation.NewValidate(), projects.NewHandlers(store, publisher, logger))
		return m, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[*messaging.Mediator](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(healthH, []adapthttp.Endpoint{projH},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*grpcserver.Server, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return grpcserver.NewServer(cfg.GRPC, registry, cfg.Telemetry.ServiceName, cfg.Server.ShutdownTimeout, logger), nil
	})
}
