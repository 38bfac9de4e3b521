package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/northbridge-capital/broker-api/internal/auth"
	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddleware() *auth.Middleware {
	return auth.NewMiddleware(&config.AuthConfig{
		JWTSecret: testSecret,
		APIKey:    "test-api-key",
	}, zap.NewNop())
}

func protectedHandler(t *testing.T) (http.Handler, *auth.UserContext) {
	captured := &auth.UserContext{}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		*captured = *user
		w.WriteHeader(http.StatusOK)
	})
	return h, captured
}

func TestAuthenticate_ValidAPIKey(t *testing.T) {
	mw := newTestMiddleware()
	handler, captured := protectedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("x-api-key", "test-api-key")
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", captured.Role)
	assert.Equal(t, "System", captured.DisplayName)
}

func TestAuthenticate_InvalidAPIKey(t *testing.T) {
	mw := newTestMiddleware()
	handler, _ := protectedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("x-api-key", "wrong-key")
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	mw := newTestMiddleware()
	handler, captured := protectedHandler(t)

	user := testUser()
	token, err := auth.GenerateToken(testSecret, user, time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.UserID, captured.UserID)
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	mw := newTestMiddleware()
	handler, _ := protectedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedAuthorizationHeader(t *testing.T) {
	mw := newTestMiddleware()
	handler, _ := protectedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_EmptyConfiguredAPIKeyRejectsAll(t *testing.T) {
	mw := auth.NewMiddleware(&config.AuthConfig{JWTSecret: testSecret}, zap.NewNop())
	handler, _ := protectedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("x-api-key", "")
	rec := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
