package google

import (
	"context"
	"log/slog"

	"whisper/internal/domain/entity"
	"whisper/internal/errors"
)

// VerifyIDToken checks the token signature against Google's keys and the
// audience against our client id.
func (p *Provider) VerifyIDToken(ctx context.Context, idToken string) (*entity.ProviderIdentity, error) {
	payload, err := p.validate(ctx, idToken, p.oauth.ClientID)
	if err != nil {
		p.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if payload.Subject == "" {
		return nil, errors.WithStack(ErrMissingSubject)
	}

	identity := &entity.ProviderIdentity{
		Provider: entity.ProviderTypeGoogle,
		ID:       payload.Subject,
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity, nil
}
