// File: internal/middleware/local.go
package middleware

import (
	"context"

	"session-guard/internal/apperr"
	"session-guard/internal/dto"
	"session-guard/internal/model"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// Authenticator 以帳密驗證使用者
type Authenticator interface {
	ValidateUser(ctx context.Context, req dto.LoginRequest) (*model.PublicUser, error)
}

// LocalAuth 驗證請求中的 email/password，通過後把使用者放進 context。
// 建立 session 交給後面的 handler。
func LocalAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var req dto.LoginRequest
			if err := c.Bind(&req); err != nil {
				return apperr.Authentication("unauthorized")
			}
			if err := c.Validate(&req); err != nil {
				return apperr.Authentication("unauthorized")
			}

			user, err := auth.ValidateUser(c.Request().Context(), req)
			if err != nil {
				return err
			}
			session.SetUser(c, user)
			return next(c)
		}
	}
}
