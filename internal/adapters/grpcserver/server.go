// Package grpcserver runs the service's gRPC listener. It serves the
// standard grpc.health.v1 service backed by the readiness registry, and
// every unary call passes through grpcstatus so faults never leak.
package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/jsamuelsen11/go-service-common/internal/adapters/grpcstatus"
	"github.com/jsamuelsen11/go-service-common/internal/platform/config"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps grpc.Server with an explicit listen step and graceful
// shutdown, mirroring the HTTP server.
type Server struct {
	srv             *grpc.Server
	addr            string
	logger          *slog.Logger
	shutdownTimeout time.Duration

	mu sync.Mutex
	ln net.Listener
}

// NewServer creates a gRPC server. domain names the ErrorInfo domain of
// failure statuses. A non-positive shutdownTimeout uses ten seconds.
func NewServer(cfg config.GRPCConfig, registry ports.HealthRegistry, domain string, shutdownTimeout time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcstatus.UnaryServerInterceptor(logger)))
	healthpb.RegisterHealthServer(srv, &healthService{registry: registry, domain: domain})

	return &Server{
		srv:             srv,
		addr:            net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Listen binds the configured address. It is a no-op once bound.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Run serves until ctx is canceled, then stops gracefully. Calls still
// running after the shutdown timeout are canceled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting gRPC server", slog.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errc <- fmt.Errorf("grpc server error: %w", err)
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down gRPC server")
	stopped := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn("gRPC graceful stop timed out, forcing")
		s.srv.Stop()
		<-stopped
	}
	return <-errc
}
