package server

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	myGRPC "github.com/MKhiriev/ucn-accounts/internal/handler/grpc"
	"github.com/MKhiriev/ucn-accounts/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.listener = listener
	return nil
}

func (g *grpcServer) serve() error {
	if g.listener == nil {
		return errNotListening
	}

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server is listening")
	g.handler.SetServing(true)
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// shutdown flips the health status first so that probes stop routing
// traffic before in-flight calls are drained.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
