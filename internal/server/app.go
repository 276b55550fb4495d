package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/nainya/docstore/proto"
)

// DefaultMaxMsgBytes bounds request and response size.
const DefaultMaxMsgBytes = 100 * 1024 * 1024

// App hosts the document store gRPC API and the standard health service.
type App struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	srv        *Server
}

// NewApp registers srv on a new gRPC server that will serve on lis.
// maxMsgBytes <= 0 selects DefaultMaxMsgBytes.
func NewApp(lis net.Listener, srv *Server, maxMsgBytes int) *App {
	if maxMsgBytes <= 0 {
		maxMsgBytes = DefaultMaxMsgBytes
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(GrpcMetricsInterceptor(srv.metrics, srv.log)),
		grpc.MaxRecvMsgSize(maxMsgBytes),
		grpc.MaxSendMsgSize(maxMsgBytes),
	)
	pb.RegisterDocumentStoreServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pb.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// grpcurl/grpcui discovery
	reflection.Register(grpcServer)

	return &App{
		grpcServer: grpcServer,
		health:     healthServer,
		listener:   lis,
		srv:        srv,
	}
}

// Addr returns the listen address.
func (a *App) Addr() string {
	return a.listener.Addr().String()
}

// Serve runs the gRPC server until ctx is cancelled, then drains in-flight calls.
func (a *App) Serve(ctx context.Context) error {
	a.srv.log.LogServerReady(a.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.grpcServer.Serve(a.listener)
	}()

	select {
	case <-ctx.Done():
		a.srv.log.LogServerShutdown()
		a.health.Shutdown()
		a.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Stop terminates the server immediately.
func (a *App) Stop() {
	a.health.Shutdown()
	a.grpcServer.Stop()
}
