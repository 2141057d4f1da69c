package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/render"
	"whisper/internal/delivery/web/response"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Browsers get an
// HTML error page; clients asking for JSON get the response envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)

	if wantsJSON(c) {
		_ = response.Error(c, status, code, message, nil)

		return
	}

	page := render.Page{
		User:    deliverycontext.GetCurrentUser(c),
		Status:  status,
		Message: message,
	}
	if renderErr := c.Render(status, render.PageError, page); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}

// classify never exposes internal causes; 5xx errors are logged instead.
func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		if httpErr.Code == http.StatusNotFound {
			return httpErr.Code, domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
