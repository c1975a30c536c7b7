// File: internal/handler/app.go
package handler

import (
	"net/http"

	"session-guard/internal/dto"

	"github.com/labstack/echo/v4"
)

// PublicHandler 不需登入
// @Summary     Public message
// @Tags        app
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      / [get]
func PublicHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "This message is public to all!"})
	}
}

// ProtectedHandler 需登入
// @Summary     Protected message
// @Tags        app
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     403 {object} dto.HTTPError
// @Security    SessionCookie
// @Router      /protected [get]
func ProtectedHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "You can only see this if you are authenticated"})
	}
}

// AdminHandler 需 admin 角色
// @Summary     Admin message
// @Tags        app
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     403 {object} dto.HTTPError
// @Security    SessionCookie
// @Router      /admin [get]
func AdminHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "You can only see this if you are an admin"})
	}
}
