package grpcstatus

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor logs handler errors that carry no status and
// replaces them with a generic Internal status. Status errors pass through
// unchanged.
func UnaryServerInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := status.FromError(err); !ok {
			logger.ErrorContext(ctx, "unhandled gRPC fault",
				slog.String("method", info.FullMethod),
				slog.Any("error", err),
			)
		}
		return nil, FromError(err).Err()
	}
}
