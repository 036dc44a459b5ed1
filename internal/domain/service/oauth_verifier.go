package service

import (
	"context"

	"chaincast/internal/domain/entity"
)

// ExternalIdentity is the provider-verified identity handed to the OAuth
// bridge. The core only needs enough to find or create a local account.
type ExternalIdentity struct {
	Provider      entity.ProviderType // Which provider vouched for this identity.
	Email         string              // Email asserted by the provider.
	Name          string              // Display name, may be empty.
	EmailVerified bool                // Whether the provider claims the email is verified.
}

// OAuthVerifier validates a provider credential (ID token or authorization
// code, depending on the provider) and returns the external identity it proves.
type OAuthVerifier interface {
	Verify(ctx context.Context, credential string) (*ExternalIdentity, error)

	// Provider returns the provider this verifier speaks for.
	Provider() entity.ProviderType
}
