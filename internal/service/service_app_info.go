package service

import (
	"context"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/models"
)

// appInfoService answers from values fixed at startup.
type appInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

// NewAppInfoService prefers the version injected at link time and falls back
// to the configured APP_VERSION. Returns [ErrVersionIsNotSpecified] when
// neither is set.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App) (AppInfoService, error) {
	version := cfg.Version
	if buildInfo.HasVersion() {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:   version,
		buildInfo: buildInfo,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.BuildInfoResponse {
	return models.BuildInfoResponse{
		Version: s.version,
		Date:    s.buildInfo.BuildDate(),
		Commit:  s.buildInfo.BuildCommit(),
	}
}
