// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"whisper/internal/domain/entity"
)

// Authenticator turns a proof of identity into a user. Each admission path
// is one instantiation, chosen by the route that receives the proof.
type Authenticator[In any] interface {
	Authenticate(ctx context.Context, in In) (*entity.User, error)
}

// LocalCredentials is a submitted username and password.
type LocalCredentials struct {
	Username string
	Password string
}

// DelegatedAssertion is what the provider sent back to the callback. Exactly
// one of Code or IDToken is expected; ProviderError is set when the user
// denied consent or the provider failed.
type DelegatedAssertion struct {
	Code          string
	IDToken       string
	ProviderError string
}

// LocalAuthenticator verifies locally stored credentials.
type LocalAuthenticator interface {
	Authenticator[LocalCredentials]
}

// DelegatedAuthenticator drives the third-party redirect flow.
type DelegatedAuthenticator interface {
	Authenticator[DelegatedAssertion]

	// SignInURL is where the browser is sent to start the flow.
	SignInURL() string
}
