package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/repository"
	"whisper/internal/infra/persistence/memory"
	"whisper/internal/usecase"
	"whisper/internal/usecase/impl"
)

type fixture struct {
	manager  *Manager
	users    repository.UserRepository
	sessions usecase.SessionUsecase
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session: &config.SessionConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			CookieName: "whisper_session",
			MaxAge:     time.Hour,
		},
	}
	users := memory.NewUserRepository()
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: memory.NewSessionRepository(),
		UserRepo:    users,
		Config:      cfg,
		Logger:      logger,
	})

	return fixture{
		manager:  NewManager(ManagerParams{Config: cfg, Sessions: sessionUC, Logger: logger}),
		users:    users,
		sessions: sessionUC,
	}
}

// request runs fn against a fresh echo context carrying cookies and returns
// the cookies the response set.
func request(t *testing.T, m *Manager, cookies []*http.Cookie, fn func(c echo.Context)) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	m.Attach(c)
	fn(c)
	require.NoError(t, c.NoContent(http.StatusOK))

	if set := rec.Result().Cookies(); len(set) > 0 {
		return set
	}

	return cookies
}

func TestManager_Flashes(t *testing.T) {
	fx := newFixture(t)

	cookies := request(t, fx.manager, nil, func(c echo.Context) {
		fx.manager.AddFlash(c, "You need to login first.")
	})
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	cookies = request(t, fx.manager, cookies, func(c echo.Context) {
		assert.Equal(t, []string{"You need to login first."}, fx.manager.Flashes(c))
	})

	request(t, fx.manager, cookies, func(c echo.Context) {
		assert.Empty(t, fx.manager.Flashes(c))
	})
}

func TestManager_NoCookieWhenUntouched(t *testing.T) {
	fx := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	fx.manager.Attach(c)
	require.NoError(t, c.NoContent(http.StatusOK))

	assert.Empty(t, rec.Result().Cookies())
}

func TestManager_LoginRestoreLogout(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	alice, err := fx.users.CreateLocal(ctx, "alice", "hash")
	require.NoError(t, err)

	var firstToken string
	cookies := request(t, fx.manager, nil, func(c echo.Context) {
		require.NoError(t, fx.manager.Login(c, alice))
		firstToken = fx.manager.Token(c)
		assert.True(t, deliverycontext.IsAuthenticated(c))
	})
	require.NotEmpty(t, firstToken)

	// Rotation: a second login from the same client drops the first session.
	var secondToken string
	cookies = request(t, fx.manager, cookies, func(c echo.Context) {
		user, err := fx.manager.Restore(c)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)

		require.NoError(t, fx.manager.Login(c, alice))
		secondToken = fx.manager.Token(c)
	})
	assert.NotEqual(t, firstToken, secondToken)

	gone, err := fx.sessions.Restore(ctx, firstToken)
	require.NoError(t, err)
	assert.Nil(t, gone)

	cookies = request(t, fx.manager, cookies, func(c echo.Context) {
		require.NoError(t, fx.manager.Logout(c))
		assert.Empty(t, fx.manager.Token(c))
	})

	request(t, fx.manager, cookies, func(c echo.Context) {
		user, err := fx.manager.Restore(c)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestManager_TamperedCookie(t *testing.T) {
	fx := newFixture(t)

	forged := &http.Cookie{Name: "whisper_session", Value: "not-a-signed-value"}
	request(t, fx.manager, []*http.Cookie{forged}, func(c echo.Context) {
		assert.Empty(t, fx.manager.Token(c))
		user, err := fx.manager.Restore(c)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestManager_RestoreSeesLaterSecrets(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	alice, err := fx.users.CreateLocal(ctx, "alice", "hash")
	require.NoError(t, err)

	cookies := request(t, fx.manager, nil, func(c echo.Context) {
		require.NoError(t, fx.manager.Login(c, alice))
	})
	assert.Empty(t, alice.Secrets)

	require.NoError(t, fx.users.AppendSecret(ctx, alice.ID, "my secret"))

	request(t, fx.manager, cookies, func(c echo.Context) {
		user, err := fx.manager.Restore(c)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, []string{"my secret"}, user.Secrets)
	})
}
