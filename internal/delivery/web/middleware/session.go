package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/session"
)

// SessionMiddleware restores the signed-in user from the session cookie.
type SessionMiddleware struct {
	manager *session.Manager
	skipper echomiddleware.Skipper
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{
		manager: manager,
		skipper: echomiddleware.DefaultSkipper,
	}
}

// WithSkipper returns a copy that passes requests matched by skipper through
// without touching the cookie or the session store.
func (m *SessionMiddleware) WithSkipper(skipper echomiddleware.Skipper) *SessionMiddleware {
	return &SessionMiddleware{
		manager: m.manager,
		skipper: skipper,
	}
}

// Handle runs before the access guard so that every handler and the guard
// see the same user. The user is looked up again on every request.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skipper(c) {
			return next(c)
		}

		m.manager.Attach(c)

		user, err := m.manager.Restore(c)
		if err != nil {
			return err
		}
		if user != nil {
			deliverycontext.SetCurrentUser(c, user)
		}

		return next(c)
	}
}
