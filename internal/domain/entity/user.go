// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"whisper/internal/errors"
)

// ErrUserWithoutCredential is returned when a user carries neither a
// password hash nor a delegated identity.
var ErrUserWithoutCredential = errors.New("user must have a password hash or a delegated identity")

// User is the account that gates access to the secrets page.
type User struct {
	ID                  uuid.UUID // Assigned by the store at creation, never changed afterwards.
	Username            string    // Empty for delegated-only accounts.
	PasswordHash        string    // Set only for accounts created by local registration.
	DelegatedIdentityID string    // Provider-issued subject, empty for local accounts.
	Secrets             []string  // Oldest first.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks that the user can be admitted by at least one path.
func (u *User) Validate() error {
	if u.PasswordHash == "" && u.DelegatedIdentityID == "" {
		return ErrUserWithoutCredential
	}

	return nil
}

// HasPassword reports whether the user can log in with local credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// DisplayName is the label shown on pages.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}

	return "anonymous"
}
