// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 銷毀目前的 session
// @Summary     登出
// @Tags        auth
// @Success     204
// @Failure     403 {object} dto.HTTPError
// @Security    SessionCookie
// @Router      /auth/logout [post]
func LogoutHandler(sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sessions.Logout(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
