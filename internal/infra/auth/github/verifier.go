// Package github verifies GitHub authorization codes for the OAuth login flow.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"chaincast/config"
	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

const userEndpoint = "https://api.github.com/user"

// apiUser is the portion of the GitHub /user response we care about.
type apiUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verifier exchanges a GitHub authorization code for the user it identifies.
// The code-for-token exchange happens server to server using the client
// secret, so the access token never reaches the browser.
type Verifier struct {
	oauthConfig *oauth2.Config
	logger      *slog.Logger
}

// NewVerifier creates a GitHub authorization code verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	oauthConfig := &oauth2.Config{
		Scopes:   []string{"read:user", "user:email"},
		Endpoint: githuboauth.Endpoint,
	}
	if cfg.GithubOAuth != nil {
		oauthConfig.ClientID = cfg.GithubOAuth.ClientID
		oauthConfig.ClientSecret = cfg.GithubOAuth.ClientSecret
	}

	return &Verifier{
		oauthConfig: oauthConfig,
		logger:      logger,
	}
}

// Provider returns the provider this verifier speaks for.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderGitHub
}

// Verify trades an authorization code for the GitHub identity behind it.
func (v *Verifier) Verify(ctx context.Context, credential string) (*service.ExternalIdentity, error) {
	oauthToken, err := v.oauthConfig.Exchange(ctx, credential)
	if err != nil {
		v.logger.Warn("GitHub code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "github rejected authorization code")
	}

	ghUser, err := v.fetchUser(ctx, oauthToken)
	if err != nil {
		return nil, err
	}

	// GitHub hides the email when the user opts out of exposing it. Fall back
	// to the stable noreply address so the account still has a unique email.
	email := ghUser.Email
	if email == "" {
		email = fmt.Sprintf("%d+%s@users.noreply.github.com", ghUser.ID, ghUser.Login)
	}
	name := ghUser.Name
	if name == "" {
		name = ghUser.Login
	}

	v.logger.Debug("GitHub authorization code verified", slog.String("login", ghUser.Login))

	return &service.ExternalIdentity{
		Provider:      entity.ProviderGitHub,
		Email:         email,
		Name:          name,
		EmailVerified: true,
	}, nil
}

// fetchUser calls the GitHub /user API with the exchanged token. The client
// returned by oauth2.Config adds the bearer header on every request.
func (v *Verifier) fetchUser(ctx context.Context, oauthToken *oauth2.Token) (*apiUser, error) {
	client := v.oauthConfig.Client(ctx, oauthToken)

	resp, err := client.Get(userEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call github user api")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(domainerrors.ErrOAuthCodeInvalid, "github user api returned status %d", resp.StatusCode)
	}

	var ghUser apiUser
	if err := json.NewDecoder(resp.Body).Decode(&ghUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode github user response")
	}
	if ghUser.ID == 0 {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "github returned an invalid user")
	}

	return &ghUser, nil
}
