package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/ucn-accounts/models"
)

const (
	FieldEmail     = "email"
	FieldRUT       = "rut"
	FieldBirthDate = "birthDate"
	FieldName      = "name"
)

// registrationFields is the order in which registration rules are applied.
// "missing fields" is reported before any format rule.
var registrationFields = []string{FieldEmail, FieldRUT, FieldBirthDate, FieldName}

// UserValidator validates sign-up and profile payloads.
type UserValidator struct {
	emailValidator *EmailValidator
}

// NewUserValidator returns a [Validator] for user payloads backed by
// emailValidator for the domain allow-list.
func NewUserValidator(emailValidator *EmailValidator) Validator {
	return &UserValidator{emailValidator: emailValidator}
}

// Validate implements [Validator]. Supported values are
// [models.RegisterRequest] and [models.EditProfileRequest] (and pointers to
// them). With no fields given every rule for the type is applied.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.EditProfileRequest:
		return v.validateEditProfileRequest(ctx, value, fields...)
	case *models.EditProfileRequest:
		return v.validateEditProfileRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks presence of every selected field first,
// then the RUT check digit, then the e-mail.
func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	for _, field := range fields {
		var missing bool
		switch field {
		case FieldEmail:
			missing = req.Email == ""
		case FieldRUT:
			missing = req.RUT == ""
		case FieldBirthDate:
			missing = req.BirthDate.IsZero()
		case FieldName:
			missing = req.Name == ""
		default:
			return ErrUnknownField
		}

		if missing {
			return ErrMissingFields
		}
	}

	if slices.Contains(fields, FieldRUT) && !IsValidRUT(req.RUT) {
		return ErrInvalidRUT
	}

	if slices.Contains(fields, FieldEmail) && !v.emailValidator.IsValid(req.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// validateEditProfileRequest only constrains the e-mail: it is required and
// must pass the domain check. Name and birth date may be empty.
func (v *UserValidator) validateEditProfileRequest(_ context.Context, req models.EditProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if req.Email == "" {
				return ErrMissingFields
			}
			if !v.emailValidator.IsValid(req.Email) {
				return ErrInvalidEmail
			}
		case FieldName, FieldBirthDate:
		default:
			return ErrUnknownField
		}
	}

	return nil
}
