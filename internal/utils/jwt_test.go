package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-123", time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-123", token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, ok := token.Token.Claims.(*models.Claims)
	require.True(t, ok, "could not cast claims to models.Claims")
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "user-456", 5*time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "user-456", parsed.UserID)
	assert.Equal(t, generated.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "u", time.Hour, "correct-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "u", time.Hour, testKey)
	require.NoError(t, err)

	other, err := GenerateJWTToken(testIssuer, "someone-else", time.Hour, testKey)
	require.NoError(t, err)

	// header and signature of the first token, payload of the second
	parts := strings.Split(generated.SignedString, ".")
	otherParts := strings.Split(other.SignedString, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = ValidateAndParseJWTToken(tampered, testKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "u", -time.Second, testKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("real-issuer", "u", time.Hour, testKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testKey, "fake-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_NoExpiration(t *testing.T) {
	claims := &models.Claims{
		UserID:           "u",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: "u"},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestValidateAndParseJWTToken_SubjectMismatch(t *testing.T) {
	claims := &models.Claims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "v",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
	assert.ErrorIs(t, err, ErrTokenSubjectMismatch)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &models.Claims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"Basic abc", "", true},
		{"abc", "", true},
		{"Bearer a b", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
