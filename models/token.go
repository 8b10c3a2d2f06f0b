package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of every bearer token issued by the application.
// The user identifier travels in the custom "id" claim and is mirrored in
// the standard "sub" claim.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier carried by the "id" claim.
	UserID string `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
