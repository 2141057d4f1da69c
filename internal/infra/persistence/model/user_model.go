package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Ids are UUID v7 values assigned by the
// repository before insert.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username            *string   `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash        *string   `gorm:"type:varchar(255)"`
	DelegatedIdentityID *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Secrets []SecretModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SecretModel mirrors the 'secrets' table. One row per submitted secret; the
// serial id keeps submission order.
type SecretModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecretModel) TableName() string {
	return "secrets"
}

// All lists every model for schema migration.
func All() []any {
	return []any{&UserModel{}, &SecretModel{}}
}
