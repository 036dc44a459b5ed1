package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	AccountID    uuid.UUID `json:"accountId"`
	TokenVersion int       `json:"ver"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate mints a signed session token bound to an account identity.
	// tokenVersion is embedded so a password reset invalidates every token
	// issued before it.
	Generate(accountID uuid.UUID, tokenVersion int) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured session token lifetime.
	TokenTTL() time.Duration
}
