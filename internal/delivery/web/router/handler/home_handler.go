// Package handler holds the echo handlers for every page of the site.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/render"
	"whisper/internal/delivery/web/response"
)

// HomeHandler serves the public landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler instance
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the anonymous landing page. Signed-in callers never reach it.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, render.PageHome, render.Page{
		User: deliverycontext.GetCurrentUser(c),
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
