package impl

import (
	"context"
	"strings"
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

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$hash"}
	fx.hasher.EXPECT().Hash(ctx, "pw1").Return("$2a$hash", nil)
	fx.userRepo.EXPECT().CreateLocal(ctx, "alice", "$2a$hash").Return(created, nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "  ", Password: "pw1"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingUsername)

	_, err = fx.service.Register(ctx, usecase.RegisterInput{Username: "alice"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingPassword)

	_, err = fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: strings.Repeat("p", 73)})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
}

func TestUserService_Register_PasswordAtLimit(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	password := strings.Repeat("p", 72)

	fx.hasher.EXPECT().Hash(ctx, password).Return("$2a$hash", nil)
	fx.userRepo.EXPECT().CreateLocal(ctx, "alice", "$2a$hash").Return(&entity.User{Username: "alice"}, nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: password})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(ctx, "pw2").Return("$2a$other", nil)
	fx.userRepo.EXPECT().CreateLocal(ctx, "alice", "$2a$other").Return(nil, repository.ErrDuplicateUsername)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw2"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestUserService_Register_HashError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(ctx, "pw1").Return("", context.DeadlineExceeded)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUserService_Register_StoreError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(ctx, "pw1").Return("$2a$hash", nil)
	fx.userRepo.EXPECT().CreateLocal(ctx, "alice", "$2a$hash").Return(nil, errors.New("disk full"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, domainerrors.ErrPersistence)
}
