package service

import (
	"fmt"

	"github.com/MKhiriev/ucn-accounts/internal/adapter"
	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/crypto"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/store"
	"github.com/MKhiriev/ucn-accounts/internal/validators"
	"github.com/MKhiriev/ucn-accounts/models"
)

type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	RepositoryService RepositoryService
	AppInfoService    AppInfoService
}

// NewServices builds the hasher and validators from cfg and wires every
// service to storages and the GitHub adapter.
func NewServices(
	storages *store.Storages,
	gitHub adapter.GitHubAdapter,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	emailValidator, err := validators.NewEmailValidator(cfg.App.AllowedEmailDomains)
	if err != nil {
		return nil, fmt.Errorf("error creating email validator: %w", err)
	}
	userValidator := validators.NewUserValidator(emailValidator)

	appInfoService, err := NewAppInfoService(buildInfo, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, hasher, userValidator, cfg.App, m, logger),
		ProfileService:    NewProfileService(storages.UserRepository, hasher, userValidator, m, logger),
		RepositoryService: NewRepositoryService(gitHub, cfg.Adapter.GitHub, m, logger),
		AppInfoService:    appInfoService,
	}, nil
}
