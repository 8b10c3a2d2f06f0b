package service

import "errors"

// Error kinds. Every error returned by a service flow wraps exactly one of
// them, so callers can branch with errors.Is(err, ErrConflict).
var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("auth")
	ErrNotFound   = errors.New("not_found")
	ErrForbidden  = errors.New("forbidden")
	ErrUpstream   = errors.New("upstream")
)

// Error is the failure outcome of a service flow: a kind and a message safe
// to show to the caller.
type Error struct {
	kind    error
	message string
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the kind of e.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind of e.
func (e *Error) Kind() error {
	return e.kind
}

var (
	ErrMissingFields    = newError(ErrValidation, "missing fields")
	ErrInvalidRUT       = newError(ErrValidation, "invalid id")
	ErrInvalidEmail     = newError(ErrValidation, "invalid email")
	ErrPasswordTooLong  = newError(ErrValidation, "password too long")
	ErrNoRepositoryName = newError(ErrValidation, "repository name is required")

	ErrUserAlreadyExists = newError(ErrConflict, "user already exists")
	ErrEmailAlreadyInUse = newError(ErrConflict, "email already in use")

	ErrInvalidCredentials      = newError(ErrAuth, "invalid credentials")
	ErrTokenIsExpiredOrInvalid = newError(ErrAuth, "token is expired or invalid")

	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrRepositoryNotFound = newError(ErrNotFound, "repository not found")

	ErrAccessDenied = newError(ErrForbidden, "access denied")

	ErrGitHubUnavailable = newError(ErrUpstream, "github is unavailable")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// KindName returns the wire name of the kind of err ("validation",
// "conflict", ...) or "internal" when err carries no kind.
func KindName(err error) string {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrAuth, ErrNotFound, ErrForbidden, ErrUpstream} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "internal"
}
