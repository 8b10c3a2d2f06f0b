package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/service"
	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/stretchr/testify/assert"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_TableTest(t *testing.T) {
	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{AuthService: &mockAuthService{parseTokenFn: tokenFor("user-1")}},
	}

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{name: "valid token", header: "Bearer token-user-1", wantStatus: http.StatusOK, wantNext: true},
		{name: "lowercase scheme", header: "bearer token-user-1", wantStatus: http.StatusOK, wantNext: true},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantMessage: ErrEmptyAuthorizationHeader.Error()},
		{name: "no scheme", header: "token-user-1", wantStatus: http.StatusUnauthorized, wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "rejected token", header: "Bearer forged", wantStatus: http.StatusUnauthorized, wantMessage: "token is expired or invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				nextCalled bool
				userID     string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, "user-1", userID)
			}
			if tt.wantMessage != "" {
				assert.Contains(t, rr.Body.String(), tt.wantMessage)
			}
		})
	}
}
