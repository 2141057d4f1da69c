package impl

import (
	"context"
	"log/slog"
	"strings"

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

// bcrypt ignores everything past this many bytes and refuses to hash it.
const maxPasswordBytes = 72

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and creates the account. A taken username
// creates nothing.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrMissingUsername
	}
	if input.Password == "" {
		return nil, domainerrors.ErrMissingPassword
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.MethodRegister, metrics.OutcomeError)

		return nil, errors.Join(domainerrors.ErrPasswordHashFailed, err)
	}

	user, err := srv.userRepo.CreateLocal(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			metrics.RecordAuthAttempt(metrics.MethodRegister, metrics.OutcomeRejected)
			srv.log(ctx).Info("Registration rejected: username taken")

			return nil, domainerrors.ErrDuplicateUsername
		}
		metrics.RecordAuthAttempt(metrics.MethodRegister, metrics.OutcomeError)

		return nil, domainerrors.NewDatabaseExecuteError(err, "create local user")
	}

	metrics.RecordAuthAttempt(metrics.MethodRegister, metrics.OutcomeSuccess)
	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return user, nil
}
