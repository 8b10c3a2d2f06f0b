package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/handler"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Err(err).Str("transport", t.name()).Msg("shutdown failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *server) listen() error {
	for _, t := range s.transports {
		if err := t.listen(); err != nil {
			return fmt.Errorf("%s listen: %w", t.name(), err)
		}
	}
	return nil
}

// serve blocks until ctx is done or one of the transports fails; in both
// cases every transport is shut down before it returns.
func (s *server) serve(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		g.Go(func() error {
			if err := t.serve(); err != nil {
				return fmt.Errorf("%s serve: %w", t.name(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
