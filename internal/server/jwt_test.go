package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crew-screening/internal/config"
)

const testJWTSecret = "test-secret-key"

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: testJWTSecret})
}

// signTestToken signs a token the way the platform's auth service does.
func signTestToken(t *testing.T, secret string, userID uuid.UUID, expiresAt time.Time) string {
	t.Helper()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTService_ValidatesPlatformToken(t *testing.T) {
	userID := uuid.New()
	token := signTestToken(t, testJWTSecret, userID, time.Now().Add(time.Hour))

	claims, err := newTestJWTService().ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token := signTestToken(t, "different-secret", uuid.New(), time.Now().Add(time.Hour))

	_, err := newTestJWTService().ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	token := signTestToken(t, testJWTSecret, uuid.New(), time.Now().Add(-time.Hour))

	_, err := newTestJWTService().ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	userID := uuid.New()
	token := signTestToken(t, testJWTSecret, userID, time.Now().Add(time.Hour))

	getter, err := newTestJWTService().AsTokenValidator().ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
