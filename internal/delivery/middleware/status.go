package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/errors"
)

// statusOf maps a handler error to the HTTP status it will be rendered with.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
