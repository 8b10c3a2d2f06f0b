package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/mock"
	"github.com/MKhiriev/ucn-accounts/internal/store"
	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newMemoryServices wires the real hasher and validators to the in-memory
// store.
func newMemoryServices(t *testing.T) (*Services, store.UserRepository) {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:        "scenario-key",
			TokenIssuer:         "ucn-accounts",
			TokenDuration:       24 * time.Hour,
			PasswordHashCost:    bcrypt.MinCost,
			AllowedEmailDomains: config.DefaultAllowedEmailDomains,
			Version:             "test",
		},
		Adapter: config.Adapter{GitHub: config.GitHub{MaxConcurrency: 1}},
	}

	repo := store.NewMemoryUserRepository()
	gitHub := mock.NewMockGitHubAdapter(gomock.NewController(t))

	services, err := NewServices(&store.Storages{UserRepository: repo}, gitHub, cfg,
		models.NewAppBuildInfo("", "", ""), metrics.New(), logger.Nop())
	require.NoError(t, err)
	return services, repo
}

func TestServices_AccountLifecycle(t *testing.T) {
	services, repo := newMemoryServices(t)
	ctx := context.Background()
	auth, profiles := services.AuthService, services.ProfileService

	juan := models.RegisterRequest{
		Email:     "juan@ucn.cl",
		RUT:       "12345678-5",
		BirthDate: models.NewDate(2000, time.January, 1),
		Name:      "Juan",
	}

	registered, err := auth.RegisterUser(ctx, juan)
	require.NoError(t, err)
	require.NotEmpty(t, registered.User.ID)
	assert.Equal(t, "juan@ucn.cl", registered.User.Email)

	token, err := auth.ParseToken(ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, token.UserID)

	stored, err := repo.FindUserByID(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "123456785", stored.PasswordHash)

	_, err = auth.RegisterUser(ctx, juan)
	assert.ErrorIs(t, err, ErrConflict, "identical sign-up must conflict")

	wrongDigit := juan
	wrongDigit.Email = "otro@ucn.cl"
	wrongDigit.RUT = "12345678-9"
	_, err = auth.RegisterUser(ctx, wrongDigit)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = repo.FindUser(ctx, models.UserFilter{Email: "otro@ucn.cl"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound, "no record for a rejected sign-up")

	loggedIn, err := auth.Login(ctx, models.LoginRequest{Email: "juan@ucn.cl", Password: "123456785"})
	require.NoError(t, err)
	assert.Equal(t, registered.User, loggedIn.User)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "juan@ucn.cl", Password: "12.345.678-5"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	ana, err := auth.RegisterUser(ctx, models.RegisterRequest{
		Email:     "ana@alumnos.ucn.cl",
		RUT:       "11.111.111-1",
		BirthDate: models.NewDate(1999, time.June, 15),
		Name:      "Ana",
	})
	require.NoError(t, err)

	_, err = profiles.EditProfile(ctx, ana.User.ID, models.EditProfileRequest{Email: "juan@ucn.cl"})
	assert.ErrorIs(t, err, ErrConflict)
	unchanged, err := repo.FindUserByID(ctx, ana.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@alumnos.ucn.cl", unchanged.Email)

	edited, err := profiles.EditProfile(ctx, ana.User.ID, models.EditProfileRequest{Email: "ana@ce.ucn.cl", Name: "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "ana@ce.ucn.cl", edited.Email)
	assert.Equal(t, "Ana María", edited.Name)
	assert.Equal(t, "11.111.111-1", edited.RUT)

	require.NoError(t, profiles.ResetPassword(ctx, ana.User.ID, models.ResetPasswordRequest{Password: "s3cret"}))
	_, err = auth.Login(ctx, models.LoginRequest{Email: "ana@ce.ucn.cl", Password: "111111111"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, models.LoginRequest{Email: "ana@ce.ucn.cl", Password: "s3cret"})
	assert.NoError(t, err)

	err = profiles.ResetPassword(ctx, "missing-id", models.ResetPasswordRequest{Password: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewServices_InvalidConfig(t *testing.T) {
	base := config.StructuredConfig{
		App: config.App{
			PasswordHashCost:    bcrypt.MinCost,
			AllowedEmailDomains: config.DefaultAllowedEmailDomains,
			Version:             "test",
		},
	}
	storages := &store.Storages{UserRepository: store.NewMemoryUserRepository()}
	noBuild := models.NewAppBuildInfo("", "", "")

	badCost := base
	badCost.App.PasswordHashCost = 99
	_, err := NewServices(storages, nil, badCost, noBuild, nil, logger.Nop())
	assert.Error(t, err)

	noDomains := base
	noDomains.App.AllowedEmailDomains = nil
	_, err = NewServices(storages, nil, noDomains, noBuild, nil, logger.Nop())
	assert.Error(t, err)

	noVersion := base
	noVersion.App.Version = ""
	_, err = NewServices(storages, nil, noVersion, noBuild, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "validation", KindName(ErrInvalidRUT))
	assert.Equal(t, "conflict", KindName(ErrUserAlreadyExists))
	assert.Equal(t, "auth", KindName(ErrInvalidCredentials))
	assert.Equal(t, "not_found", KindName(ErrUserNotFound))
	assert.Equal(t, "forbidden", KindName(ErrAccessDenied))
	assert.Equal(t, "upstream", KindName(ErrGitHubUnavailable))
	assert.Equal(t, "internal", KindName(ErrTokenCreationFailed))
}
