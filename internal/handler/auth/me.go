// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"session-guard/internal/apperr"
	"session-guard/internal/handler"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得目前登入的使用者
// @Summary     目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} model.PublicUser
// @Failure     403 {object} dto.HTTPError
// @Security    SessionCookie
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := session.CurrentUser(c)
		if !ok {
			return handler.RespondError(c, apperr.Authorization("forbidden resource"))
		}
		return c.JSON(http.StatusOK, user)
	}
}
