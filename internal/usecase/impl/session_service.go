package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/errors"
	"whisper/internal/infra/metrics"
	"whisper/internal/usecase"
)

const (
	sessionTokenBytes     = 32
	defaultSessionMaxAge  = 24 * time.Hour
	sessionEventCreated   = "established"
	sessionEventDestroyed = "destroyed"
	sessionEventOrphaned  = "orphaned"
)

type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	maxAge      time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService creates the session manager.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	maxAge := defaultSessionMaxAge
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.MaxAge > 0 {
		maxAge = params.Config.Session.MaxAge
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		maxAge:      maxAge,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Establish(ctx context.Context, user *entity.User) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	now := srv.now()
	session := &entity.Session{
		TokenHash: hashToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.maxAge),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "create session")
	}

	metrics.RecordSession(sessionEventCreated)
	srv.log(ctx).Debug("Session established", slog.String("userID", user.ID.String()))

	return token, nil
}

func (srv *sessionService) Restore(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	tokenHash := hashToken(token)
	session, err := srv.sessionRepo.Find(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find session user")
		}

		srv.log(ctx).Info("Session user no longer exists", slog.String("userID", session.UserID.String()))
		metrics.RecordSession(sessionEventOrphaned)
		if err := srv.sessionRepo.Delete(ctx, tokenHash); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "delete orphaned session")
		}

		return nil, nil
	}

	return user, nil
}

func (srv *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.Delete(ctx, hashToken(token)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete session")
	}
	metrics.RecordSession(sessionEventDestroyed)

	return nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}

// hashToken is the server-side key for a token; raw tokens are never stored.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
