package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"whisper/config"
	"whisper/internal/domain/service"
)

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	password := "hunter2"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	ok, err := hasher.Check(ctx, password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same-input")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()
	password := "hunter2"

	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "wrong password", password: "wrong", hash: hash},
		{name: "empty password", password: "", hash: hash},
		{name: "malformed hash", password: password, hash: "invalid_hash"},
		{name: "empty hash", password: password, hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasher.Check(ctx, tt.password, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost+1, 1)
	require.NoError(t, err)

	hash, err := hasher.Hash(context.Background(), "pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestBcryptHasher_RejectsPasswordTooLong(t *testing.T) {
	hasher := newTestHasher(t)

	_, err := hasher.Hash(context.Background(), strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestBcryptHasher_CanceledContext(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hasher.Hash(ctx, "pw")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = hasher.Check(ctx, "pw", "hash")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, HashWorkers: 1}}

	hasher, err := NewBcryptHasher(HasherParams{Config: cfg})
	require.NoError(t, err)
	assert.NotNil(t, hasher)

	cfg.Auth.BcryptCost = 99
	_, err = NewBcryptHasher(HasherParams{Config: cfg})
	assert.Error(t, err)
}
