package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields  = errors.New("missing fields")
	ErrInvalidRUT     = errors.New("invalid id")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrNoEmailDomains = errors.New("no allowed email domains configured")
)
