package grpc

import (
	"context"
	"time"

	catalogpb "catalog_service/proto"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewServer returns a gRPC server with the catalog service registered and
// every unary call logged.
func NewServer(handler catalogpb.CatalogServiceServer, logger *logrus.Logger) *grpc.Server {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	catalogpb.RegisterCatalogServiceServer(server, handler)
	return server
}

func loggingInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		entry := logger.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    status.Code(err).String(),
			"latency": time.Since(start).String(),
		})
		if err != nil {
			entry.Warn("gRPC call failed")
		} else {
			entry.Info("gRPC call completed")
		}
		return resp, err
	}
}
