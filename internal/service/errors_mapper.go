package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/ucn-accounts/internal/crypto"
	"github.com/MKhiriev/ucn-accounts/internal/validators"
)

// validationErrors translates validator outcomes into flow errors.
var validationErrors = map[error]*Error{
	validators.ErrMissingFields: ErrMissingFields,
	validators.ErrInvalidRUT:    ErrInvalidRUT,
	validators.ErrInvalidEmail:  ErrInvalidEmail,
}

// mapValidationError returns the flow error for a validator failure. Errors
// the validator reports about its own use (unsupported type, unknown field)
// are programming errors and stay internal.
func mapValidationError(err error) error {
	for validatorErr, serviceErr := range validationErrors {
		if errors.Is(err, validatorErr) {
			return serviceErr
		}
	}
	return fmt.Errorf("validation failed: %w", err)
}

// hashPassword hashes plain with hasher, reporting over-long input as a
// validation error.
func hashPassword(hasher crypto.PasswordHasher, plain string) (string, error) {
	hash, err := hasher.Hash(plain)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}
