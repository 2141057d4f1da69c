// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	"whisper/internal/errors"
	"whisper/internal/infra/metrics"
	"whisper/internal/usecase"
)

type localAuthenticator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// LocalAuthenticatorParams holds dependencies for the local authenticator, injected by Fx.
type LocalAuthenticatorParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewLocalAuthenticator creates the username/password authenticator.
func NewLocalAuthenticator(params LocalAuthenticatorParams) usecase.LocalAuthenticator {
	return &localAuthenticator{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (a *localAuthenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Authenticate returns ErrInvalidCredentials for an unknown username, an
// account without a password and a wrong password alike.
func (a *localAuthenticator) Authenticate(ctx context.Context, in usecase.LocalCredentials) (*entity.User, error) {
	user, err := a.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, a.reject(ctx, "unknown username")
		}
		metrics.RecordAuthAttempt(metrics.MethodLocal, metrics.OutcomeError)

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by username")
	}

	if !user.HasPassword() {
		return nil, a.reject(ctx, "account has no local password")
	}

	matched, err := a.hasher.Check(ctx, in.Password, user.PasswordHash)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.MethodLocal, metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to check password")
	}
	if !matched {
		return nil, a.reject(ctx, "password mismatch")
	}

	metrics.RecordAuthAttempt(metrics.MethodLocal, metrics.OutcomeSuccess)
	a.log(ctx).Info("Local login succeeded", slog.String("userID", user.ID.String()))

	return user, nil
}

// reject logs the real reason and returns the single outward signal.
func (a *localAuthenticator) reject(ctx context.Context, reason string) error {
	metrics.RecordAuthAttempt(metrics.MethodLocal, metrics.OutcomeRejected)
	a.log(ctx).Info("Local login rejected", slog.String("reason", reason))

	return domainerrors.ErrInvalidCredentials
}
