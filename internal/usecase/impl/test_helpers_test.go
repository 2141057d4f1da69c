package impl

import (
	"io"
	"log/slog"
	"time"

	"whisper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Secret: "test-secret",
			MaxAge: time.Hour,
		},
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID: "client-id",
			Timeout:  time.Second,
		},
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
	}
}
