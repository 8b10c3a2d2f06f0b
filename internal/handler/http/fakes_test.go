package http

import (
	"context"

	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/service"
	"github.com/MKhiriev/ucn-accounts/models"
)

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	editProfileFn   func(ctx context.Context, id string, req models.EditProfileRequest) (models.UserProfile, error)
	resetPasswordFn func(ctx context.Context, id string, req models.ResetPasswordRequest) error
}

func (m *mockProfileService) EditProfile(ctx context.Context, id string, req models.EditProfileRequest) (models.UserProfile, error) {
	return m.editProfileFn(ctx, id, req)
}

func (m *mockProfileService) ResetPassword(ctx context.Context, id string, req models.ResetPasswordRequest) error {
	return m.resetPasswordFn(ctx, id, req)
}

type mockRepositoryService struct {
	listRepositoriesFn func(ctx context.Context) ([]models.Repository, error)
	listCommitsFn      func(ctx context.Context, repoName string) ([]models.Commit, error)
}

func (m *mockRepositoryService) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	return m.listRepositoriesFn(ctx)
}

func (m *mockRepositoryService) ListCommits(ctx context.Context, repoName string) ([]models.Commit, error) {
	return m.listCommitsFn(ctx, repoName)
}

type mockAppInfoService struct {
	version   string
	buildInfo models.BuildInfoResponse
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.BuildInfoResponse {
	return m.buildInfo
}

// tokenFor makes ParseToken accept "token-<id>" for the given id.
func tokenFor(id string) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "token-"+id {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: id, SignedString: tokenString}, nil
	}
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newRouterHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return &Handler{services: services, metrics: metrics.New(), logger: logger.Nop()}
}
