// Package session keeps per-client browser state in a signed cookie: the
// opaque server-side session token and pending flash messages.
package session

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	"whisper/internal/errors"
	"whisper/internal/usecase"
)

const (
	tokenKey = "sid"
	stateKey = "cookie_session"
)

// cookieState is the decoded cookie for one request.
type cookieState struct {
	session *sessions.Session
	dirty   bool
}

// Manager couples the cookie with the server-side session usecase.
type Manager struct {
	store    sessions.Store
	name     string
	options  sessions.Options
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// ManagerParams holds dependencies for Manager, injected by Fx.
type ManagerParams struct {
	fx.In

	Config   *config.Config
	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// NewManager builds a cookie store signed with session.secret.
func NewManager(params ManagerParams) *Manager {
	cfg := params.Config.Session
	options := sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: sameSiteFromString(cfg.SameSite),
	}

	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &options

	return &Manager{
		store:    store,
		name:     cfg.CookieName,
		options:  options,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

func sameSiteFromString(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		// Lax lets the browser send the cookie on the redirect back from Google.
		return http.SameSiteLaxMode
	}
}

// Attach decodes the cookie and arranges for it to be written back, once,
// right before the response headers go out. A cookie that fails
// verification is replaced by an empty one.
func (m *Manager) Attach(c echo.Context) {
	sess, err := m.store.Get(c.Request(), m.name)
	if err != nil {
		m.log(c).Debug("Discarding undecodable session cookie", slog.Any("error", err))
		sess = sessions.NewSession(m.store, m.name)
		opts := m.options
		sess.Options = &opts
		sess.IsNew = true
	}

	state := &cookieState{session: sess}
	c.Set(stateKey, state)

	c.Response().Before(func() {
		if !state.dirty {
			return
		}
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			m.log(c).Error("Failed to save session cookie", slog.Any("error", err))
		}
	})
}

func (m *Manager) state(c echo.Context) *cookieState {
	if state, ok := c.Get(stateKey).(*cookieState); ok {
		return state
	}

	m.Attach(c)

	return c.Get(stateKey).(*cookieState)
}

func (m *Manager) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// Token returns the session token carried by the cookie, if any.
func (m *Manager) Token(c echo.Context) string {
	token, _ := m.state(c).session.Values[tokenKey].(string)

	return token
}

// Restore loads the signed-in user for this request. It returns nil for
// anonymous callers and drops a token the server no longer recognises.
func (m *Manager) Restore(c echo.Context) (*entity.User, error) {
	token := m.Token(c)
	if token == "" {
		return nil, nil
	}

	user, err := m.sessions.Restore(c.Request().Context(), token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		m.forget(c)
	}

	return user, nil
}

// Login starts a new server-side session for user. Any session the client
// already carried is destroyed first.
func (m *Manager) Login(c echo.Context, user *entity.User) error {
	ctx := c.Request().Context()
	if old := m.Token(c); old != "" {
		if err := m.sessions.Destroy(ctx, old); err != nil {
			return err
		}
	}

	token, err := m.sessions.Establish(ctx, user)
	if err != nil {
		return err
	}

	state := m.state(c)
	state.session.Values[tokenKey] = token
	state.dirty = true
	deliverycontext.SetCurrentUser(c, user)

	return nil
}

// Logout destroys the server-side session. Calling it without a session is
// a no-op.
func (m *Manager) Logout(c echo.Context) error {
	token := m.Token(c)
	if token == "" {
		return nil
	}

	if err := m.sessions.Destroy(c.Request().Context(), token); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}
	m.forget(c)
	deliverycontext.SetCurrentUser(c, nil)

	return nil
}

func (m *Manager) forget(c echo.Context) {
	state := m.state(c)
	delete(state.session.Values, tokenKey)
	state.dirty = true
}

// AddFlash queues a one-time message for the next page that reads flashes.
func (m *Manager) AddFlash(c echo.Context, message string) {
	state := m.state(c)
	state.session.AddFlash(message)
	state.dirty = true
}

// Flashes returns and clears the pending messages.
func (m *Manager) Flashes(c echo.Context) []string {
	state := m.state(c)
	raw := state.session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	state.dirty = true

	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}

	return messages
}
