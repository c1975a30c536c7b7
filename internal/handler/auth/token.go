// File: internal/handler/auth/token.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"session-guard/internal/apperr"
	"session-guard/internal/dto"
	"session-guard/internal/handler"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// TokenHandler 為目前使用者簽發 JWT，之後可用 Authorization: Bearer 存取
// @Summary     簽發存取令牌
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.TokenResponse
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    SessionCookie
// @Router      /auth/token [post]
func TokenHandler(tokens TokenSigner, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := session.CurrentUser(c)
		if !ok {
			return handler.RespondError(c, apperr.Authorization("forbidden resource"))
		}
		token, exp, err := tokens.SignToken(user, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}
		return c.JSON(http.StatusOK, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   exp,
		})
	}
}
