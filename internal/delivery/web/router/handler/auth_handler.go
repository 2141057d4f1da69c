package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"whisper/internal/delivery/web/render"
	"whisper/internal/delivery/web/session"
	"whisper/internal/domain/access"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/errors"
	"whisper/internal/usecase"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Local     usecase.LocalAuthenticator
	Delegated usecase.DelegatedAuthenticator
	UserUC    usecase.UserUsecase
	Sessions  *session.Manager
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for login, registration and sign-out.
type AuthHandler struct {
	local     usecase.LocalAuthenticator
	delegated usecase.DelegatedAuthenticator
	userUC    usecase.UserUsecase
	sessions  *session.Manager
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		local:     params.Local,
		delegated: params.Delegated,
		userUC:    params.UserUC,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the login and registration form.
type CredentialsRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginForm renders the login page with any pending flash.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, render.PageLogin, render.Page{
		Flashes: h.sessions.Flashes(c),
	})
}

// Login verifies local credentials. Every rejection looks the same.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return h.rejectLogin(c)
	}

	user, err := h.local.Authenticate(c.Request().Context(), usecase.LocalCredentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return h.rejectLogin(c)
		}

		return err
	}

	if err := h.sessions.Login(c, user); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, access.ProtectedPath)
}

func (h *AuthHandler) rejectLogin(c echo.Context) error {
	h.sessions.AddFlash(c, domainerrors.ErrInvalidCredentials.Message())

	return c.Redirect(http.StatusFound, access.LoginPath)
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, render.PageRegister, render.Page{})
}

// Register creates a local account and signs it in. Field and conflict
// errors are shown on the form itself.
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return h.renderRegisterError(c, req, domainerrors.ErrValidationFailed)
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		appErr, ok := errors.AsType[domainerrors.AppError](err)
		if ok && appErr.HTTPCode() < http.StatusInternalServerError {
			return h.renderRegisterError(c, req, appErr)
		}

		return err
	}

	if err := h.sessions.Login(c, user); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, access.ProtectedPath)
}

func (h *AuthHandler) renderRegisterError(c echo.Context, req CredentialsRequest, appErr domainerrors.AppError) error {
	return c.Render(appErr.HTTPCode(), render.PageRegister, render.Page{
		Error:    appErr.Message(),
		Username: req.Username,
	})
}

// Logout ends the session, if any, and returns to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, access.HomePath)
}

// GoogleSignIn starts the delegated flow.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.delegated.SignInURL())
}

// GoogleCallback completes the delegated flow. It accepts the redirect with
// an authorization code (GET) and the Sign-In button's credential post.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	assertion := usecase.DelegatedAssertion{
		Code:          c.FormValue("code"),
		IDToken:       c.FormValue("credential"),
		ProviderError: c.FormValue("error"),
	}

	user, err := h.delegated.Authenticate(c.Request().Context(), assertion)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProviderError) {
			h.sessions.AddFlash(c, domainerrors.ErrProviderError.Message())

			return c.Redirect(http.StatusFound, access.LoginPath)
		}

		return err
	}

	if err := h.sessions.Login(c, user); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, access.ProtectedPath)
}
