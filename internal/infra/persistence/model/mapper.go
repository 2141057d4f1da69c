package model

import "whisper/internal/domain/entity"

// ToUserDomain maps a persistence model to a domain entity. Secrets must
// already be ordered oldest first.
func ToUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                  data.ID,
		Username:            deref(data.Username),
		PasswordHash:        deref(data.PasswordHash),
		DelegatedIdentityID: deref(data.DelegatedIdentityID),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if len(data.Secrets) > 0 {
		user.Secrets = make([]string, 0, len(data.Secrets))
		for _, secret := range data.Secrets {
			user.Secrets = append(user.Secrets, secret.Text)
		}
	}

	return user
}

// FromUserDomain maps a domain entity to a persistence model. Secrets are
// written separately and are not carried over.
func FromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		ID:                  data.ID,
		Username:            ref(data.Username),
		PasswordHash:        ref(data.PasswordHash),
		DelegatedIdentityID: ref(data.DelegatedIdentityID),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// ref maps "" to NULL so unique indexes ignore absent values.
func ref(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
