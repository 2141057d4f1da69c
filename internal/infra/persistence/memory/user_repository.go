// Package memory provides process-local repositories for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"whisper/internal/domain/entity"
	"whisper/internal/domain/repository"
	"whisper/internal/errors"
)

// userRepository keeps users in maps guarded by one mutex, which also makes
// find-or-create atomic.
type userRepository struct {
	mu          sync.RWMutex
	byID        map[uuid.UUID]*entity.User
	byUsername  map[string]uuid.UUID
	byDelegated map[string]uuid.UUID
	order       []uuid.UUID
	now         func() time.Time
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:        make(map[uuid.UUID]*entity.User),
		byUsername:  make(map[string]uuid.UUID),
		byDelegated: make(map[string]uuid.UUID),
		now:         time.Now,
	}
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(id)
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.get(id)
}

func (r *userRepository) FindByDelegatedIdentity(_ context.Context, providerID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDelegated[providerID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.get(id)
}

func (r *userRepository) FindOrCreateByDelegatedIdentity(_ context.Context, providerID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byDelegated[providerID]; ok {
		return r.get(id)
	}

	user, err := r.insert(&entity.User{DelegatedIdentityID: providerID})
	if err != nil {
		return nil, err
	}
	r.byDelegated[providerID] = user.ID

	return clone(user), nil
}

func (r *userRepository) CreateLocal(_ context.Context, username, passwordHash string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[username]; taken {
		return nil, repository.ErrDuplicateUsername
	}

	user, err := r.insert(&entity.User{Username: username, PasswordHash: passwordHash})
	if err != nil {
		return nil, err
	}
	r.byUsername[username] = user.ID

	return clone(user), nil
}

func (r *userRepository) AppendSecret(_ context.Context, userID uuid.UUID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Secrets = append(user.Secrets, text)
	user.UpdatedAt = r.now()

	return nil
}

func (r *userRepository) ListWithSecrets(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0)
	for _, id := range r.order {
		if user := r.byID[id]; len(user.Secrets) > 0 {
			users = append(users, clone(user))
		}
	}

	return users, nil
}

// insert must be called with the write lock held.
func (r *userRepository) insert(user *entity.User) (*entity.User, error) {
	if err := user.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}
	now := r.now()
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[id] = user
	r.order = append(r.order, id)

	return user, nil
}

// get must be called with a lock held.
func (r *userRepository) get(id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(user), nil
}

// clone detaches the returned user from the stored one.
func clone(user *entity.User) *entity.User {
	cp := *user
	cp.Secrets = slices.Clone(user.Secrets)

	return &cp
}
