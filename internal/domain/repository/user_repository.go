// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when a local registration collides with an existing username.
	ErrDuplicateUsername = errors.New("username already registered")
)

// UserRepository is the credential store. Users are keyed by id and can be
// found by username or by the provider-issued delegated identity.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	FindByDelegatedIdentity(ctx context.Context, providerID string) (*entity.User, error)

	// FindOrCreateByDelegatedIdentity returns the user bound to providerID,
	// creating it when absent. Concurrent calls for one id yield one record.
	FindOrCreateByDelegatedIdentity(ctx context.Context, providerID string) (*entity.User, error)

	// CreateLocal persists a user admitted by username and password.
	// Returns ErrDuplicateUsername when the username is taken.
	CreateLocal(ctx context.Context, username, passwordHash string) (*entity.User, error)

	// AppendSecret adds text to the end of the user's secrets.
	AppendSecret(ctx context.Context, userID uuid.UUID, text string) error

	// ListWithSecrets returns every user that has at least one secret.
	ListWithSecrets(ctx context.Context) ([]*entity.User, error)
}
