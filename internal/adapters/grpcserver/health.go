package grpcserver

import (
	"context"
	"fmt"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/grpcstatus"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

// healthService answers grpc.health.v1 checks from the readiness registry.
// The empty service name covers every checker; any other name selects the
// checker registered under it.
type healthService struct {
	healthpb.UnimplementedHealthServer

	registry ports.HealthRegistry
	domain   string
}

func errUnknownService(name string) result.Error {
	return result.NotFound("Health.UnknownService", fmt.Sprintf("No health checker is registered as %q", name))
}

func (h *healthService) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	checks := h.registry.CheckAll(ctx)

	name := req.GetService()
	if name == "" {
		for _, err := range checks {
			if err != nil {
				return notServing(), nil
			}
		}
		return serving(), nil
	}

	err, ok := checks[name]
	if !ok {
		return nil, grpcstatus.Err(result.Failure(errUnknownService(name)), h.domain)
	}
	if err != nil {
		return notServing(), nil
	}
	return serving(), nil
}

func serving() *healthpb.HealthCheckResponse {
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}
}

func notServing() *healthpb.HealthCheckResponse {
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}
}
