package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"whisper/config"
	"whisper/internal/domain/entity"
	"whisper/internal/domain/repository"
	"whisper/internal/errors"
)

const (
	defaultKeyPrefix = "whisper:"

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"
	fieldExpiresAt = "expires_at"
)

// sessionRepository keeps each session in a hash at <prefix>session:<token hash>.
// Redis expires the key at the session's expiry.
type sessionRepository struct {
	client goredis.Cmdable
	prefix string
}

// NewSessionRepository creates a Redis-backed session store.
func NewSessionRepository(client *goredis.Client, cfg *config.Config) repository.SessionRepository {
	prefix := defaultKeyPrefix
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &sessionRepository{client: client, prefix: prefix}
}

func (r *sessionRepository) key(tokenHash string) string {
	return r.prefix + "session:" + tokenHash
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	key := r.key(session.TokenHash)

	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldUserID, session.UserID.String(),
			fieldCreatedAt, session.CreatedAt.UnixMilli(),
			fieldExpiresAt, session.ExpiresAt.UnixMilli(),
		)
		pipe.PExpireAt(ctx, key, session.ExpiresAt)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

func (r *sessionRepository) Find(ctx context.Context, tokenHash string) (*entity.Session, error) {
	values, err := r.client.HGetAll(ctx, r.key(tokenHash)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if len(values) == 0 {
		return nil, repository.ErrSessionNotFound
	}

	userID, err := uuid.Parse(values[fieldUserID])
	if err != nil {
		return nil, errors.Wrap(err, "corrupt session user id")
	}

	session := &entity.Session{
		TokenHash: tokenHash,
		UserID:    userID,
		CreatedAt: parseMillis(values[fieldCreatedAt]),
		ExpiresAt: parseMillis(values[fieldExpiresAt]),
	}
	if session.IsExpired(time.Now()) {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if err := r.client.Del(ctx, r.key(tokenHash)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func parseMillis(raw string) time.Time {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}
