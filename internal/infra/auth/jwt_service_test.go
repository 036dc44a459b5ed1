package auth

import (
	"testing"
	"time"

	"chaincast/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sessionConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(sessionConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()
	tokenVersion := 3

	token, err := jwtService.Generate(accountID, tokenVersion)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, tokenVersion, claims.TokenVersion)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(sessionConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse session token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(sessionConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	verifier, err := NewJWTService(sessionConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), 0)
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_session_secret_key_very_long_for_testing"

	// Build the service directly with an already-elapsed lifetime; the
	// constructor rejects non-positive TTLs in favor of the default.
	issuer := &jwtService{secret: secret, sessionTTL: -time.Minute}

	token, err := issuer.Generate(uuid.New(), 0)
	assert.NoError(t, err)

	verifier, err := NewJWTService(sessionConfig(secret))
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(sessionConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt session secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(sessionConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, jwtService.TokenTTL())

	cfg := sessionConfig("test_session_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{SessionTokenTTL: time.Hour}

	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}
