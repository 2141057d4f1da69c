package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"whisper/config"
	"whisper/internal/domain/entity"
	"whisper/internal/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:3000/auth/google/callback",
		},
	}
}

// newFakeGoogle serves the token and userinfo endpoints.
func newFakeGoogle(t *testing.T, userInfo map[string]any, userInfoStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		_ = json.NewEncoder(w).Encode(userInfo)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestProvider(srv *httptest.Server) *Provider {
	p, _ := NewProvider(ProviderParams{Config: newTestConfig(), Logger: newDiscardLogger()}).(*Provider)
	p.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.userInfoURL = srv.URL + "/userinfo"

	return p
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := NewProvider(ProviderParams{Config: newTestConfig(), Logger: newDiscardLogger()})

	raw := p.AuthCodeURL()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "http://localhost:3000/auth/google/callback", query.Get("redirect_uri"))
	assert.False(t, query.Has("state"))
	assert.Equal(t, entity.ProviderTypeGoogle, p.GetProvider())
}

func TestProvider_ExchangeCode(t *testing.T) {
	srv := newFakeGoogle(t, map[string]any{"id": "g-123", "name": "Gina", "picture": "http://pic"}, http.StatusOK)
	p := newTestProvider(srv)

	identity, err := p.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, &entity.ProviderIdentity{
		Provider:  entity.ProviderTypeGoogle,
		ID:        "g-123",
		Name:      "Gina",
		AvatarURL: "http://pic",
	}, identity)
}

func TestProvider_ExchangeCode_Failures(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		userInfo map[string]any
		status   int
	}{
		{name: "rejected code", code: "bad-code", userInfo: map[string]any{"id": "g-1"}, status: http.StatusOK},
		{name: "userinfo error", code: "good-code", userInfo: map[string]any{}, status: http.StatusInternalServerError},
		{name: "missing subject", code: "good-code", userInfo: map[string]any{"name": "x"}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeGoogle(t, tt.userInfo, tt.status)
			p := newTestProvider(srv)

			identity, err := p.ExchangeCode(context.Background(), tt.code)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}

func TestProvider_VerifyIDToken(t *testing.T) {
	p, _ := NewProvider(ProviderParams{Config: newTestConfig(), Logger: newDiscardLogger()}).(*Provider)

	var gotAudience string
	p.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "signed-token" {
			return nil, errors.New("idtoken: invalid signature")
		}

		return &idtoken.Payload{
			Subject: "g-123",
			Claims:  map[string]any{"name": "Gina", "picture": "http://pic"},
		}, nil
	}

	identity, err := p.VerifyIDToken(context.Background(), "signed-token")
	require.NoError(t, err)
	assert.Equal(t, "client-id", gotAudience)
	assert.Equal(t, "g-123", identity.ID)
	assert.Equal(t, "Gina", identity.Name)

	_, err = p.VerifyIDToken(context.Background(), "forged")
	assert.Error(t, err)
}

func TestProvider_VerifyIDToken_MissingSubject(t *testing.T) {
	p, _ := NewProvider(ProviderParams{Config: newTestConfig(), Logger: newDiscardLogger()}).(*Provider)
	p.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{}, nil
	}

	_, err := p.VerifyIDToken(context.Background(), "token")
	assert.ErrorIs(t, err, ErrMissingSubject)
}
