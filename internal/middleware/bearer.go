// File: internal/middleware/bearer.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"session-guard/internal/apperr"
	"session-guard/internal/model"
	"session-guard/internal/service"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// TokenVerifier 驗證 JWT 並查回使用者
type TokenVerifier interface {
	VerifyToken(token string) (*service.TokenClaims, error)
	FindUser(ctx context.Context, id int) (*model.PublicUser, error)
}

func extractBearer(c echo.Context) (string, bool, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", true, apperr.Authentication("invalid authorization header format")
	}
	return parts[1], true, nil
}

// BearerToken 以 Authorization: Bearer <jwt> 取得使用者。
// 沒有帶 header 時直接放行，交給後面的 guard 判斷。
func BearerToken(tokens TokenVerifier, logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, present, err := extractBearer(c)
			if !present {
				return next(c)
			}
			if err != nil {
				return err
			}

			claims, err := tokens.VerifyToken(tokenString)
			if err != nil {
				logger.Debug("bearer token rejected", "ip", c.RealIP(), "error", err)
				return apperr.Authentication("invalid token")
			}
			user, err := tokens.FindUser(c.Request().Context(), claims.ID)
			if err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.Authentication("invalid token")
				}
				return err
			}
			session.SetUser(c, user)
			return next(c)
		}
	}
}
