// Package router contains routing for the web delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"whisper/internal/delivery/web/middleware"
	"whisper/internal/delivery/web/router/handler"
	"whisper/internal/domain/access"
)

// Paths that are never gated and never read the session.
const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

// IsOpenRoute reports whether the matched route is one of the open paths.
// These keep answering while the session store is unavailable.
func IsOpenRoute(c echo.Context) bool {
	switch c.Path() {
	case HealthPath, MetricsPath:
		return true
	default:
		return false
	}
}

type RouterParams struct {
	fx.In

	HomeHandler     *handler.HomeHandler
	AuthHandler     *handler.AuthHandler
	SecretHandler   *handler.SecretHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	homeHandler   *handler.HomeHandler
	authHandler   *handler.AuthHandler
	secretHandler *handler.SecretHandler
	guard         *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		homeHandler:   params.HomeHandler,
		authHandler:   params.AuthHandler,
		secretHandler: params.SecretHandler,
		guard:         params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Never gated
	e.GET(HealthPath, handler.HealthCheck)
	e.GET(MetricsPath, echo.WrapHandler(promhttp.Handler()))

	// Route-level middleware rather than groups: an empty-prefix group would
	// claim unmatched paths too.
	public := r.guard.Require(access.RoutePublic)
	e.GET("/", r.homeHandler.Home, public)

	// Credential entry: login, registration and the delegated flow
	entry := r.guard.Require(access.RouteCredentialEntry)
	e.GET("/login", r.authHandler.LoginForm, entry)
	e.POST("/login", r.authHandler.Login, entry)
	e.GET("/register", r.authHandler.RegisterForm, entry)
	e.POST("/register", r.authHandler.Register, entry)
	e.GET("/auth/google", r.authHandler.GoogleSignIn, entry)
	e.GET("/auth/google/callback", r.authHandler.GoogleCallback, entry)
	e.POST("/auth/google/callback", r.authHandler.GoogleCallback, entry)

	e.GET("/logout", r.authHandler.Logout, r.guard.Require(access.RouteLogout))

	protected := r.guard.Require(access.RouteProtected)
	e.GET("/secrets", r.secretHandler.List, protected)
	e.GET("/submit", r.secretHandler.SubmitForm, protected)
	e.POST("/submit", r.secretHandler.Submit, protected)
}
