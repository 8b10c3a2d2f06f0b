package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/stretchr/testify/assert"
)

func newTestUserValidator(t *testing.T) Validator {
	t.Helper()
	return NewUserValidator(newTestEmailValidator(t))
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:     "juan@ucn.cl",
		RUT:       "12345678-5",
		BirthDate: models.NewDate(2000, time.January, 1),
		Name:      "Juan",
	}
}

func TestUserValidator_RegisterRequest(t *testing.T) {
	v := newTestUserValidator(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(r *models.RegisterRequest)
		want   error
	}{
		{"valid", func(r *models.RegisterRequest) {}, nil},
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }, ErrMissingFields},
		{"missing rut", func(r *models.RegisterRequest) { r.RUT = "" }, ErrMissingFields},
		{"missing birth date", func(r *models.RegisterRequest) { r.BirthDate = models.Date{} }, ErrMissingFields},
		{"missing name", func(r *models.RegisterRequest) { r.Name = "" }, ErrMissingFields},
		{"wrong check digit", func(r *models.RegisterRequest) { r.RUT = "12345678-9" }, ErrInvalidRUT},
		{"foreign domain", func(r *models.RegisterRequest) { r.Email = "juan@gmail.com" }, ErrInvalidEmail},
		// missing fields wins over format errors
		{"missing name with bad rut", func(r *models.RegisterRequest) { r.Name = ""; r.RUT = "1-1" }, ErrMissingFields},
		// rut is checked before email
		{"bad rut and bad email", func(r *models.RegisterRequest) { r.RUT = "1-1"; r.Email = "x" }, ErrInvalidRUT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.modify(&req)

			err := v.Validate(ctx, req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)

			// pointers behave the same
			assert.ErrorIs(t, v.Validate(ctx, &req), tt.want)
		})
	}
}

func TestUserValidator_RegisterRequest_ScopedFields(t *testing.T) {
	v := newTestUserValidator(t)
	req := validRegisterRequest()
	req.Email = "juan@gmail.com"

	assert.NoError(t, v.Validate(context.Background(), req, FieldRUT, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "unknown"), ErrUnknownField)
}

func TestUserValidator_EditProfileRequest(t *testing.T) {
	v := newTestUserValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.EditProfileRequest{Email: "juan@alumnos.ucn.cl"}))
	assert.ErrorIs(t, v.Validate(ctx, models.EditProfileRequest{Name: "Juan"}), ErrMissingFields)
	assert.ErrorIs(t, v.Validate(ctx, &models.EditProfileRequest{Email: "juan@gmail.com"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.EditProfileRequest{}, "rut"), ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := newTestUserValidator(t)
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
}
