// Package google verifies Google ID tokens for the OAuth login flow.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"chaincast/config"
	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/service"

	"github.com/pkg/errors"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// idTokenPayload carries the profile claims the tokeninfo endpoint does not
// return. The payload is only read after tokeninfo has proven the signature.
type idTokenPayload struct {
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Verifier validates Google ID tokens against the tokeninfo endpoint.
type Verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier creates a Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &Verifier{
		clientID: clientID,
		logger:   logger,
	}
}

// Provider returns the provider this verifier speaks for.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderGoogle
}

// Verify validates an ID token with Google and returns the identity it proves.
// Tokens whose audience does not match the configured client ID, or whose
// email Google has not verified, are rejected.
func (v *Verifier) Verify(ctx context.Context, credential string) (*service.ExternalIdentity, error) {
	oauth2Service, err := oauth2api.NewService(ctx, option.WithHTTPClient(&http.Client{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build google oauth2 service")
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(credential)

	tokenInfo, err := tokenInfoCall.Context(ctx).Do()
	if err != nil {
		v.logger.Warn("Google tokeninfo rejected ID token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "google rejected id token")
	}

	if tokenInfo.Audience != v.clientID {
		v.logger.Warn("Google ID token audience mismatch", slog.String("audience", tokenInfo.Audience))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "id token audience mismatch")
	}
	if tokenInfo.Email == "" || !tokenInfo.VerifiedEmail {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "google email is missing or unverified")
	}

	// The payload is trusted only for display fields; identity fields come
	// from the tokeninfo response.
	payload := v.decodePayload(credential)
	name := payload.Name
	if name == "" {
		name = strings.SplitN(tokenInfo.Email, "@", 2)[0]
	}

	v.logger.Debug("Google ID token verified", slog.String("email", tokenInfo.Email))

	return &service.ExternalIdentity{
		Provider:      entity.ProviderGoogle,
		Email:         tokenInfo.Email,
		Name:          name,
		EmailVerified: tokenInfo.VerifiedEmail,
	}, nil
}

// decodePayload best-effort extracts the profile claims from the JWT payload.
func (v *Verifier) decodePayload(idToken string) idTokenPayload {
	var payload idTokenPayload

	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return payload
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload
	}
	_ = json.Unmarshal(decoded, &payload)

	return payload
}
