package crypto

import "errors"

var (
	ErrInvalidHashCost = errors.New("invalid hash cost")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrHashingFailed   = errors.New("password hashing failed")
)
