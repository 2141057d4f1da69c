package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/render"
	"whisper/internal/delivery/web/session"
	"whisper/internal/domain/access"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/infra/persistence/memory"
	"whisper/internal/usecase/impl"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newManager() *session.Manager {
	logger := newDiscardLogger()
	cfg := &config.Config{
		Session: &config.SessionConfig{Secret: "secret", CookieName: "whisper_session", MaxAge: time.Hour},
	}
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: memory.NewSessionRepository(),
		UserRepo:    memory.NewUserRepository(),
		Config:      cfg,
		Logger:      logger,
	})

	return session.NewManager(session.ManagerParams{Config: cfg, Sessions: sessionUC, Logger: logger})
}

func TestGuardMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		class    access.RouteClass
		signedIn bool
		reached  bool
		location string
	}{
		{name: "protected anonymous", class: access.RouteProtected, location: "/login"},
		{name: "protected signed in", class: access.RouteProtected, signedIn: true, reached: true},
		{name: "entry anonymous", class: access.RouteCredentialEntry, reached: true},
		{name: "entry signed in", class: access.RouteCredentialEntry, signedIn: true, location: "/secrets"},
		{name: "public signed in", class: access.RoutePublic, signedIn: true, location: "/secrets"},
		{name: "logout anonymous", class: access.RouteLogout, reached: true},
		{name: "open", class: access.RouteOpen, reached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := newManager()
			guard := NewGuardMiddleware(manager)

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			manager.Attach(c)
			if tt.signedIn {
				deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "h"})
			}

			reached := false
			err := guard.Require(tt.class)(func(c echo.Context) error {
				reached = true

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.reached, reached)
			if tt.location != "" {
				assert.Equal(t, http.StatusFound, rec.Code)
				assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestErrorMiddleware(t *testing.T) {
	renderer, err := render.New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		err      error
		accept   string
		status   int
		contains string
		hidden   string
	}{
		{
			name:     "persistence error hides cause",
			err:      domainerrors.NewDatabaseExecuteError(errors.New("pq: relation users does not exist"), "append secret"),
			status:   http.StatusInternalServerError,
			contains: "Something went wrong on our side.",
			hidden:   "relation users",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			contains: "Internal server error",
			hidden:   "boom",
		},
		{
			name:     "not found",
			err:      echo.ErrNotFound,
			status:   http.StatusNotFound,
			contains: "Page not found.",
		},
		{
			name:     "json client",
			err:      domainerrors.ErrUserNotFound,
			accept:   echo.MIMEApplicationJSON,
			status:   http.StatusNotFound,
			contains: `"code":"USER_NOT_FOUND"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Renderer = renderer
			req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			if tt.hidden != "" {
				assert.NotContains(t, rec.Body.String(), tt.hidden)
			}
		})
	}
}
