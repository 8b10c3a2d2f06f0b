package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ucn-accounts/internal/crypto"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/internal/store"
	"github.com/MKhiriev/ucn-accounts/internal/validators"
	"github.com/MKhiriev/ucn-accounts/models"
)

type profileService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewProfileService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	m *metrics.Metrics,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		metrics:        m,
		logger:         logger,
	}
}

// EditProfile checks that no other user owns the new e-mail before the
// e-mail itself is validated. Empty name and zero birth date keep the
// stored values.
func (p *profileService) EditProfile(ctx context.Context, id string, req models.EditProfileRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx).With().Str("user_id", id).Logger()

	if req.Email == "" {
		return models.UserProfile{}, ErrMissingFields
	}

	_, err := p.userRepository.FindUser(ctx, models.UserFilter{Email: req.Email, ExcludeID: id})
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("email belongs to another user")
		return models.UserProfile{}, ErrEmailAlreadyInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user lookup by email failed")
		return models.UserProfile{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = p.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("edit profile request rejected")
		return models.UserProfile{}, mapValidationError(err)
	}

	user, err := p.findUser(ctx, id)
	if err != nil {
		return models.UserProfile{}, err
	}

	user.Email = req.Email
	if req.Name != "" {
		user.Name = req.Name
	}
	if !req.BirthDate.IsZero() {
		user.BirthDate = req.BirthDate
	}

	saved, err := p.saveUser(ctx, user)
	if err != nil {
		return models.UserProfile{}, err
	}

	log.Info().Msg("profile updated")
	return saved.Profile(), nil
}

// ResetPassword stores a hash of the new password. Existing tokens stay
// valid.
func (p *profileService) ResetPassword(ctx context.Context, id string, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx).With().Str("user_id", id).Logger()

	if req.Password == "" {
		return ErrMissingFields
	}

	user, err := p.findUser(ctx, id)
	if err != nil {
		return err
	}

	user.PasswordHash, err = hashPassword(p.hasher, req.Password)
	if err != nil {
		log.Warn().Err(err).Msg("hashing new password failed")
		return err
	}

	if _, err = p.saveUser(ctx, user); err != nil {
		return err
	}

	p.metrics.IncrementPasswordResets()
	log.Info().Msg("password updated")
	return nil
}

func (p *profileService) findUser(ctx context.Context, id string) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (p *profileService) saveUser(ctx context.Context, user models.User) (models.User, error) {
	saved, err := p.userRepository.SaveUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrUserAlreadyExists):
		return models.User{}, ErrEmailAlreadyInUse
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("saving user failed")
		return models.User{}, fmt.Errorf("saving user failed: %w", err)
	}
	return saved, nil
}
