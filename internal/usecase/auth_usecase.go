// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chaincast/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new local account.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// LoginInput defines the data required for a local account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries the provider credential handed over by the client.
// For Google this is an ID token, for GitHub an authorization code.
type OAuthLoginInput struct {
	Provider   entity.ProviderType
	Credential string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information. The
// session token is only present when the account is already verified, which
// happens solely under the development auto-verify policy.
type SignupOutput struct {
	Account      *entity.Account
	SessionToken string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	SessionToken string
	Account      *entity.Account
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a local account and dispatches a verification code.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login authenticates a verified local account and mints a session token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// OAuthLogin verifies a provider credential, finds or creates the bound
	// account and mints a session token.
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (*LoginOutput, error)

	// Me returns the account behind an authenticated session.
	Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
