package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"whisper/internal/domain/entity"
	"whisper/internal/domain/repository"
	"whisper/internal/errors"
	"whisper/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// secretsInOrder preloads secrets oldest first.
func secretsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("secrets.id ASC")
}

func (repo *userRepository) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := db.WithContext(ctx).
		Preload("Secrets", secretsInOrder).
		Where(query, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, repo.db, "id = ?", id)
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, repo.db, "username = ?", username)
}

// FindByDelegatedIdentity retrieves the user bound to a provider-issued id.
func (repo *userRepository) FindByDelegatedIdentity(ctx context.Context, providerID string) (*entity.User, error) {
	return repo.findOne(ctx, repo.db, "delegated_identity_id = ?", providerID)
}

// FindOrCreateByDelegatedIdentity inserts with ON CONFLICT DO NOTHING and then
// reads the row back in the same transaction. The unique index on
// delegated_identity_id serializes concurrent callers.
func (repo *userRepository) FindOrCreateByDelegatedIdentity(ctx context.Context, providerID string) (*entity.User, error) {
	candidate, err := newUser(func(u *entity.User) { u.DelegatedIdentityID = providerID })
	if err != nil {
		return nil, err
	}

	var found *entity.User
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "delegated_identity_id"}},
			DoNothing: true,
		}).Create(model.FromUserDomain(candidate)).Error
		if err != nil {
			return errors.Wrap(err, "failed to insert delegated user")
		}

		found, err = repo.findOne(ctx, tx, "delegated_identity_id = ?", providerID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// CreateLocal persists a user admitted by username and password.
func (repo *userRepository) CreateLocal(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	user, err := newUser(func(u *entity.User) {
		u.Username = username
		u.PasswordHash = passwordHash
	})
	if err != nil {
		return nil, err
	}

	userM := model.FromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateUsername
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return model.ToUserDomain(userM), nil
}

// AppendSecret inserts one secrets row. The user row is touched first so a
// vanished user is reported instead of leaving an orphan.
func (repo *userRepository) AppendSecret(ctx context.Context, userID uuid.UUID, text string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.UserModel{}).Where("id = ?", userID).Update("updated_at", time.Now())
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to touch user")
		}
		if res.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		if err := tx.Create(&model.SecretModel{UserID: userID, Text: text}).Error; err != nil {
			return errors.Wrap(err, "failed to append secret")
		}

		return nil
	})
}

// ListWithSecrets returns users with at least one secret, oldest account first.
func (repo *userRepository) ListWithSecrets(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Secrets", secretsInOrder).
		Where("EXISTS (SELECT 1 FROM secrets WHERE secrets.user_id = users.id)").
		Order("users.created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with secrets")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, model.ToUserDomain(&models[i]))
	}

	return users, nil
}

// newUser assigns a time-ordered id and validates the result.
func newUser(fill func(u *entity.User)) (*entity.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	user := &entity.User{ID: id}
	fill(user)
	if err := user.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
