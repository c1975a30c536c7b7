// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"session-guard/internal/apperr"
	"session-guard/internal/handler"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// LoginHandler 為通過 LocalAuth 的使用者建立 session
// @Summary     登入使用者
// @Description 使用 Email 與 Password 驗證，成功後設定 session cookie 並回傳 session 內容
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "帳號密碼"
// @Success     200  {object} session.Record
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := session.CurrentUser(c)
		if !ok {
			return handler.RespondError(c, apperr.Authentication("unauthorized"))
		}
		rec, err := sessions.Login(c, user)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rec)
	}
}
