package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_ConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), config.App{Version: "1.0.0"})

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_BuildVersionWins(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v2.1.0", "2026-10-14", "abc123")

	svc, err := NewAppInfoService(buildInfo, config.App{Version: "1.0.0"})

	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, models.BuildInfoResponse{Version: "v2.1.0", Date: "2026-10-14", Commit: "abc123"},
		svc.GetBuildInfo(context.Background()))
}

func TestNewAppInfoService_NoVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), config.App{})

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetBuildInfo_MissingMetadata(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), config.App{Version: "0.0.1"})
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "0.0.1", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), config.App{Version: "1.0.0"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
