package context

import (
	"github.com/labstack/echo/v4"

	"whisper/internal/domain/entity"
)

const keyCurrentUser = "current_user"

// SetCurrentUser stores the user restored from the session.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(keyCurrentUser, user)
}

// GetCurrentUser returns the signed-in user, or nil for anonymous requests.
func GetCurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyCurrentUser).(*entity.User)

	return user
}

// IsAuthenticated reports whether the request carries a restored user.
func IsAuthenticated(c echo.Context) bool {
	return GetCurrentUser(c) != nil
}
