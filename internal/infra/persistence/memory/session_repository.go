package memory

import (
	"context"
	"sync"
	"time"

	"whisper/internal/domain/entity"
	"whisper/internal/domain/repository"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionRepository creates an in-memory session store. Expired sessions
// are dropped when looked up.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]entity.Session),
		now:      time.Now,
	}
}

func (r *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.TokenHash] = *session

	return nil
}

func (r *sessionRepository) Find(_ context.Context, tokenHash string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.IsExpired(r.now()) {
		delete(r.sessions, tokenHash)

		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (r *sessionRepository) Delete(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, tokenHash)

	return nil
}
