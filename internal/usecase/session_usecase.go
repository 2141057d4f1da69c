package usecase

import (
	"context"

	"whisper/internal/domain/entity"
)

// SessionUsecase binds authenticated users to opaque session tokens.
type SessionUsecase interface {
	// Establish starts a session for user and returns its token. Only the
	// user id is kept server side.
	Establish(ctx context.Context, user *entity.User) (string, error)

	// Restore looks the user up again from the token. (nil, nil) means the
	// caller is anonymous: unknown or expired token, or a user that no
	// longer exists, in which case the session is destroyed.
	Restore(ctx context.Context, token string) (*entity.User, error)

	// Destroy ends the session. Unknown tokens are ignored.
	Destroy(ctx context.Context, token string) error
}
