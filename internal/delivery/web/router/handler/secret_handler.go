package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/delivery/web/render"
	"whisper/internal/domain/access"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/usecase"
)

// SecretHandlerParams holds dependencies for SecretHandler, injected by Fx.
type SecretHandlerParams struct {
	fx.In

	SecretUC usecase.SecretUsecase
	Logger   *slog.Logger
}

// SecretHandler serves the protected pages.
type SecretHandler struct {
	secretUC usecase.SecretUsecase
	logger   *slog.Logger
}

// NewSecretHandler is the constructor for SecretHandler
func NewSecretHandler(params SecretHandlerParams) *SecretHandler {
	return &SecretHandler{
		secretUC: params.SecretUC,
		logger:   params.Logger,
	}
}

// SubmitSecretRequest is the submission form.
type SubmitSecretRequest struct {
	Secret string `form:"secret" validate:"required"`
}

// List shows every submitted secret.
func (h *SecretHandler) List(c echo.Context) error {
	users, err := h.secretUC.ListContributors(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, render.PageSecrets, render.Page{
		User:  deliverycontext.GetCurrentUser(c),
		Users: users,
	})
}

// SubmitForm renders the submission form.
func (h *SecretHandler) SubmitForm(c echo.Context) error {
	return c.Render(http.StatusOK, render.PageSubmit, render.Page{
		User: deliverycontext.GetCurrentUser(c),
	})
}

// Submit appends one secret for the signed-in user.
func (h *SecretHandler) Submit(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req SubmitSecretRequest
	if err := c.Bind(&req); err != nil {
		return h.renderSubmitError(c)
	}
	if err := c.Validate(&req); err != nil {
		return h.renderSubmitError(c)
	}

	if err := h.secretUC.Submit(c.Request().Context(), user.ID, req.Secret); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, access.ProtectedPath)
}

func (h *SecretHandler) renderSubmitError(c echo.Context) error {
	return c.Render(http.StatusBadRequest, render.PageSubmit, render.Page{
		User:  deliverycontext.GetCurrentUser(c),
		Error: domainerrors.ErrValidationFailed.Message(),
	})
}
