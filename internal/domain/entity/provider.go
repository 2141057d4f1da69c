package entity

// ProviderType represents the kind of identity provider that admitted a user.
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeGoogle ProviderType = "google"
)

// ProviderIdentity is the profile returned by a delegated identity provider.
type ProviderIdentity struct {
	Provider  ProviderType
	ID        string
	Name      string
	AvatarURL string
}
