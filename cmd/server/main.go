package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucn-accounts/internal/adapter"
	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/handler"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/server"
	"github.com/MKhiriev/ucn-accounts/internal/service"
	"github.com/MKhiriev/ucn-accounts/internal/store"
	"github.com/MKhiriev/ucn-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("ucn-accounts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Strs("allowed_email_domains", cfg.App.AllowedEmailDomains).
		Str("github_owner", cfg.Adapter.GitHub.Owner).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	gitHub, err := adapter.NewGitHubAdapter(cfg.Adapter.GitHub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating GitHub adapter")
	}

	m := metrics.New()

	services, err := service.NewServices(storages, gitHub, *cfg, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
