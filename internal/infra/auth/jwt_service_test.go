package auth

import (
	"testing"
	"time"

	"tiffin/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	return cfg
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	customerID := uuid.New()
	tokenString := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": customerID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute * 15).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, customerID.String(), claims["sub"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", testAccessSecret)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, "some_other_secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
