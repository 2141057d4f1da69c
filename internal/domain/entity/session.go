package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque token to a user id. Only the id is stored; the user
// is looked up again on every restore.
type Session struct {
	TokenHash string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
