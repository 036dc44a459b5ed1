// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"chaincast/config"
	"chaincast/internal/domain/service"
	"chaincast/internal/errors"
)

const defaultSessionTokenTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	sessionTTL := defaultSessionTokenTTL
	if cfg.Auth != nil && cfg.Auth.SessionTokenTTL > 0 {
		sessionTTL = cfg.Auth.SessionTokenTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTTL,
	}, nil
}

// Generate creates a signed session token for the given account. The token
// version is embedded so a password reset retires every earlier token.
func (s *jwtService) Generate(accountID uuid.UUID, tokenVersion int) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID:    accountID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	return claims, nil
}

// TokenTTL returns the configured session token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.sessionTTL
}
