// Package service implements the account flows of the ucn-accounts server
// (sign-up, sign-in, profile edit and password reset) and the GitHub
// repository proxy.
//
// Every flow returns either its value or an [*Error] whose kind is one of
// [ErrValidation], [ErrConflict], [ErrAuth], [ErrNotFound], [ErrForbidden]
// or [ErrUpstream]. Any other error is an internal failure.
package service

import (
	"context"

	"github.com/MKhiriev/ucn-accounts/models"
)

// AuthService registers and authenticates users and manages bearer tokens.
type AuthService interface {
	// RegisterUser creates an account whose initial password is the RUT
	// without punctuation and returns its projection with a fresh token.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login checks the e-mail and password and returns the projection with
	// a fresh token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService changes the data of an existing account.
type ProfileService interface {
	// EditProfile applies the non-empty fields of req to the user with the
	// given id and returns the updated projection.
	EditProfile(ctx context.Context, id string, req models.EditProfileRequest) (models.UserProfile, error)

	// ResetPassword replaces the password of the user with the given id.
	ResetPassword(ctx context.Context, id string, req models.ResetPasswordRequest) error
}

// RepositoryService serves the repository data of the configured GitHub owner.
type RepositoryService interface {
	ListRepositories(ctx context.Context) ([]models.Repository, error)
	ListCommits(ctx context.Context, repoName string) ([]models.Commit, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
}
