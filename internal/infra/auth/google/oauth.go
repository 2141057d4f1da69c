// Package google implements the delegated identity provider backed by
// Google OAuth 2.0.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"whisper/config"
	"whisper/internal/domain/entity"
	"whisper/internal/domain/service"
	"whisper/internal/errors"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// Only the basic profile is requested.
	scopeProfile = "profile"
)

// ErrMissingSubject is returned when the provider answers without a user id.
var ErrMissingSubject = errors.New("google profile has no subject")

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Provider handles the Google sign-in flow: building the consent URL,
// exchanging codes and verifying ID tokens.
type Provider struct {
	oauth       *oauth2.Config
	userInfoURL string
	validate    validateFunc
	logger      *slog.Logger
}

// ProviderParams holds dependencies for the Google provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates the Google identity provider
func NewProvider(params ProviderParams) service.IdentityProvider {
	cfg := params.Config.GoogleOAuth

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       []string{scopeProfile},
		},
		userInfoURL: googleUserInfoURL,
		validate:    idtoken.Validate,
		logger:      params.Logger,
	}
}

// GetProvider returns the OAuth provider type
func (p *Provider) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthCodeURL builds the consent URL. No state is stored locally.
func (p *Provider) AuthCodeURL() string {
	return p.oauth.AuthCodeURL("")
}

// ExchangeCode trades the authorization code for a token, then fetches the
// profile with it.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*entity.ProviderIdentity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	return p.fetchUserInfo(ctx, p.oauth.Client(ctx, token))
}

func (p *Provider) fetchUserInfo(ctx context.Context, client *http.Client) (*entity.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	if googleUser.ID == "" {
		return nil, errors.WithStack(ErrMissingSubject)
	}

	return &entity.ProviderIdentity{
		Provider:  entity.ProviderTypeGoogle,
		ID:        googleUser.ID,
		Name:      googleUser.Name,
		AvatarURL: googleUser.Picture,
	}, nil
}
