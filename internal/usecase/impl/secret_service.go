package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/errors"
	"whisper/internal/infra/metrics"
	"whisper/internal/usecase"
)

type secretService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// SecretServiceParams holds dependencies for SecretService, injected by Fx.
type SecretServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewSecretService creates the secrets usecase.
func NewSecretService(params SecretServiceParams) usecase.SecretUsecase {
	return &secretService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *secretService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *secretService) Submit(ctx context.Context, userID uuid.UUID, text string) error {
	if text == "" {
		return domainerrors.ErrValidationFailed
	}

	if err := srv.userRepo.AppendSecret(ctx, userID, text); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to append secret", slog.String("userID", userID.String()), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "append secret")
	}

	metrics.RecordSecretSubmitted()

	return nil
}

func (srv *secretService) ListContributors(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListWithSecrets(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list users with secrets")
	}

	return users, nil
}
