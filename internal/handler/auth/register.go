// File: internal/handler/auth/register.go
package auth

import (
	"fmt"
	"net/http"

	"session-guard/internal/dto"
	"session-guard/internal/handler"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新帳號
// @Summary     註冊使用者
// @Description 建立新帳號，Email 不可重複，兩次密碼需一致
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterUserRequest true "註冊資料"
// @Success     201  {object} model.PublicUser
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(svc Registrar) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := svc.RegisterUser(c.Request().Context(), req)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, user)
	}
}
