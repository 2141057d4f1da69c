package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/session"
	"whisper/internal/domain/access"
)

// GuardMiddleware enforces the access rules of each route class.
type GuardMiddleware struct {
	manager *session.Manager
}

// NewGuardMiddleware creates a new access guard middleware
func NewGuardMiddleware(manager *session.Manager) *GuardMiddleware {
	return &GuardMiddleware{
		manager: manager,
	}
}

// Require gates a route group by class. EndSession is left to the route
// handler, which owns the teardown.
func (m *GuardMiddleware) Require(class access.RouteClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := access.Decide(deliverycontext.IsAuthenticated(c), class)

			switch decision.Action {
			case access.RedirectLogin, access.RedirectProtected:
				if decision.Flash != "" {
					m.manager.AddFlash(c, decision.Flash)
				}

				return c.Redirect(http.StatusFound, decision.Location)
			case access.Allow, access.EndSession:
			}

			return next(c)
		}
	}
}
