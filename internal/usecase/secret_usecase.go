package usecase

import (
	"context"

	"github.com/google/uuid"

	"whisper/internal/domain/entity"
)

// SecretUsecase manages the protected resource.
type SecretUsecase interface {
	// Submit appends text to the user's secrets.
	Submit(ctx context.Context, userID uuid.UUID, text string) error

	// ListContributors returns every user with at least one secret.
	ListContributors(ctx context.Context) ([]*entity.User, error)
}
