package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	"whisper/internal/infra/metrics"
	"whisper/internal/usecase"
)

const defaultProviderTimeout = 10 * time.Second

type delegatedAuthenticator struct {
	provider service.IdentityProvider
	userRepo repository.UserRepository
	timeout  time.Duration
	logger   *slog.Logger
}

// DelegatedAuthenticatorParams holds dependencies for the delegated authenticator, injected by Fx.
type DelegatedAuthenticatorParams struct {
	fx.In

	Provider service.IdentityProvider
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDelegatedAuthenticator creates the third-party sign-in authenticator.
func NewDelegatedAuthenticator(params DelegatedAuthenticatorParams) usecase.DelegatedAuthenticator {
	timeout := defaultProviderTimeout
	if params.Config != nil && params.Config.GoogleOAuth != nil && params.Config.GoogleOAuth.Timeout > 0 {
		timeout = params.Config.GoogleOAuth.Timeout
	}

	return &delegatedAuthenticator{
		provider: params.Provider,
		userRepo: params.UserRepo,
		timeout:  timeout,
		logger:   params.Logger,
	}
}

func (a *delegatedAuthenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

func (a *delegatedAuthenticator) SignInURL() string {
	return a.provider.AuthCodeURL()
}

// Authenticate resolves the assertion to a provider identity within the
// configured timeout, then finds or creates the matching user. Every
// provider-side failure is reported as ErrProviderError.
func (a *delegatedAuthenticator) Authenticate(ctx context.Context, in usecase.DelegatedAssertion) (*entity.User, error) {
	identity, err := a.resolve(ctx, in)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.MethodDelegated, metrics.OutcomeRejected)
		a.log(ctx).Warn("Delegated sign-in failed",
			slog.String("provider", string(a.provider.GetProvider())),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrProviderError
	}

	user, err := a.userRepo.FindOrCreateByDelegatedIdentity(ctx, identity.ID)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.MethodDelegated, metrics.OutcomeError)

		return nil, domainerrors.NewDatabaseExecuteError(err, "find or create delegated user")
	}

	metrics.RecordAuthAttempt(metrics.MethodDelegated, metrics.OutcomeSuccess)
	a.log(ctx).Info("Delegated sign-in succeeded",
		slog.String("provider", string(identity.Provider)),
		slog.String("userID", user.ID.String()),
	)

	return user, nil
}

func (a *delegatedAuthenticator) resolve(ctx context.Context, in usecase.DelegatedAssertion) (*entity.ProviderIdentity, error) {
	if in.ProviderError != "" {
		return nil, domainerrors.ErrProviderError.WithDetails(in.ProviderError)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	switch {
	case in.Code != "":
		return a.provider.ExchangeCode(ctx, in.Code)
	case in.IDToken != "":
		return a.provider.VerifyIDToken(ctx, in.IDToken)
	default:
		return nil, domainerrors.ErrProviderError.WithDetails("missing assertion")
	}
}
