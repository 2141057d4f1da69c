package service

import (
	"context"

	"whisper/internal/domain/entity"
)

// IdentityProvider drives a delegated sign-in with a third party.
type IdentityProvider interface {
	// GetProvider returns the provider type.
	GetProvider() entity.ProviderType

	// AuthCodeURL is where the browser is sent to start the sign-in.
	AuthCodeURL() string

	// ExchangeCode trades an authorization code for the signed-in profile.
	ExchangeCode(ctx context.Context, code string) (*entity.ProviderIdentity, error)

	// VerifyIDToken validates a provider-signed ID token and returns its profile.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.ProviderIdentity, error)
}
