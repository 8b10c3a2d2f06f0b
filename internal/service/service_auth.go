package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/crypto"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/store"
	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/internal/validators"
	"github.com/MKhiriev/ucn-accounts/models"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, sign-in and the JWT token lifecycle on top of a
// UserRepository and a PasswordHasher.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the stored password hashes.
	hasher crypto.PasswordHasher

	// validator enforces the sign-up rules (presence, RUT, e-mail domain).
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given collaborators
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		metrics:        m,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The request is validated in order: missing fields, RUT check digit, e-mail
// domain. The initial password is the RUT without "." and "-". A user
// holding both the same e-mail and RUT, or a unique-index clash on write,
// yields ErrUserAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("sign-up request rejected")
		return models.AuthResponse{}, mapValidationError(err)
	}

	// TODO: replace the RUT-derived initial password with a one-time
	// password sent to the institutional e-mail once mail delivery exists.
	defaultPassword := validators.StripRUT(req.RUT)

	_, err := a.userRepository.FindUser(ctx, models.UserFilter{Email: req.Email, RUT: req.RUT})
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("user already exists")
		return models.AuthResponse{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user lookup failed")
		return models.AuthResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := hashPassword(a.hasher, defaultPassword)
	if err != nil {
		log.Err(err).Msg("hashing default password failed")
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		RUT:          req.RUT,
		BirthDate:    req.BirthDate,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Warn().Str("email", req.Email).Msg("user already exists")
		return models.AuthResponse{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	response, err := a.authResponse(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	a.metrics.IncrementUsersRegistered()
	log.Info().Str("user_id", user.ID).Msg("user registered")
	return response, nil
}

// Login authenticates an existing user.
//
// An unknown e-mail and a wrong password are indistinguishable to the
// caller: both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		a.metrics.ObserveLogin(false)
		return models.AuthResponse{}, ErrMissingFields
	}

	user, err := a.userRepository.FindUser(ctx, models.UserFilter{Email: req.Email})
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", req.Email).Msg("login for unknown email")
		a.metrics.ObserveLogin(false)
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		a.metrics.ObserveLogin(false)
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	response, err := a.authResponse(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	a.metrics.ObserveLogin(true)
	return response, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user ID as the "id" claim, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User:  user.Profile(),
		Token: token.String(),
	}, nil
}
