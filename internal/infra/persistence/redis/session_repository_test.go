package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper/config"
	"whisper/internal/domain/entity"
	"whisper/internal/domain/repository"
)

func newTestRepository(t *testing.T) (repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{URL: "redis://" + mr.Addr(), KeyPrefix: "test:"}}

	return NewSessionRepository(client, cfg), mr
}

func newSession(ttl time.Duration) *entity.Session {
	now := time.Now()

	return &entity.Session{
		TokenHash: "deadbeef",
		UserID:    uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRepository_CreateFind(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	session := newSession(time.Hour)

	require.NoError(t, repo.Create(ctx, session))
	assert.True(t, mr.Exists("test:session:deadbeef"))
	assert.Equal(t, session.UserID.String(), mr.HGet("test:session:deadbeef", "user_id"))
	assert.Greater(t, mr.TTL("test:session:deadbeef"), time.Duration(0))

	found, err := repo.Find(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, session.ExpiresAt.UnixMilli(), found.ExpiresAt.UnixMilli())
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession(time.Hour)))
	require.NoError(t, repo.Delete(ctx, "deadbeef"))
	assert.False(t, mr.Exists("test:session:deadbeef"))

	_, err := repo.Find(ctx, "deadbeef")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	assert.NoError(t, repo.Delete(ctx, "deadbeef"))
}

func TestSessionRepository_ExpiresWithTTL(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession(time.Minute)))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Find(ctx, "deadbeef")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Unknown(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_RedisDown(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()

	_, err := repo.Find(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}})
	assert.Error(t, err)
}
