package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	mockRepo "whisper/internal/mocks/repository"
	mockSvc "whisper/internal/mocks/service"
	"whisper/internal/usecase"
)

type localAuthenticatorFixtures struct {
	authenticator usecase.LocalAuthenticator
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
}

func createTestLocalAuthenticator(t *testing.T) localAuthenticatorFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return localAuthenticatorFixtures{
		authenticator: NewLocalAuthenticator(LocalAuthenticatorParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestLocalAuthenticator_Success(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hash"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
	fx.hasher.EXPECT().Check(ctx, "pw1", "hash").Return(true, nil)

	user, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
}

func TestLocalAuthenticator_WrongPassword(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hash"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
	fx.hasher.EXPECT().Check(ctx, "wrong", "hash").Return(false, nil)

	user, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "alice", Password: "wrong"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalAuthenticator_UnknownUsername(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)

	user, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "bob", Password: "pw"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalAuthenticator_DelegatedOnlyAccount(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	delegated := &entity.User{ID: uuid.New(), Username: "g", DelegatedIdentityID: "g-123"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "g").Return(delegated, nil)

	_, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "g", Password: "anything"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalAuthenticator_StoreError(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("connection refused"))

	_, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistence)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalAuthenticator_CheckError(t *testing.T) {
	fx := createTestLocalAuthenticator(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hash"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
	fx.hasher.EXPECT().Check(ctx, "pw1", "hash").Return(false, context.Canceled)

	_, err := fx.authenticator.Authenticate(ctx, usecase.LocalCredentials{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "failed to check password")
}
