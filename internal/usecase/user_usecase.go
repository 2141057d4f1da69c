package usecase

import (
	"context"

	"whisper/internal/domain/entity"
)

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Username string
	Password string
}

// UserUsecase covers local account registration.
type UserUsecase interface {
	// Register creates a local account. Returns ErrMissingUsername,
	// ErrMissingPassword or ErrDuplicateUsername on rejection.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
}
