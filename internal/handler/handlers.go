package handler

import (
	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/handler/grpc"
	"github.com/MKhiriev/ucn-accounts/internal/handler/http"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
