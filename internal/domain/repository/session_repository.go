package repository

import (
	"context"
	"errors"

	"whisper/internal/domain/entity"
)

// ErrSessionNotFound is returned when a token hash has no live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the server side of sessions, keyed by token hash.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// Find returns ErrSessionNotFound for unknown or expired sessions.
	Find(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Delete is idempotent.
	Delete(ctx context.Context, tokenHash string) error
}
