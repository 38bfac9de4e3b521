package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func testUser() *auth.UserContext {
	return &auth.UserContext{
		UserID:      uuid.New(),
		DisplayName: "Dana Field",
		Email:       "dana@northbridge-capital.co.uk",
		Role:        "admin",
	}
}

func TestJWTValidator_RoundTrip(t *testing.T) {
	user := testUser()
	token, err := auth.GenerateToken(testSecret, user, time.Hour, time.Now())
	require.NoError(t, err)

	validator := auth.NewJWTValidator(testSecret)
	got, err := validator.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.UserID, got.UserID)
	assert.Equal(t, user.DisplayName, got.DisplayName)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Role, got.Role)
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, testUser(), time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	validator := auth.NewJWTValidator(testSecret)
	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("some-other-secret", testUser(), time.Hour, time.Now())
	require.NoError(t, err)

	validator := auth.NewJWTValidator(testSecret)
	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTValidator_RejectsUnexpectedSigningMethod(t *testing.T) {
	// alg "none" must never be accepted
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	validator := auth.NewJWTValidator(testSecret)
	_, err = validator.ValidateToken(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTValidator_NonUUIDSubject(t *testing.T) {
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	validator := auth.NewJWTValidator(testSecret)
	_, err = validator.ValidateToken(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
