// Package auth 帳號註冊、session 登入登出與 token 簽發
package auth

import (
	"context"
	"time"

	"session-guard/internal/dto"
	"session-guard/internal/model"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

type Registrar interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*model.PublicUser, error)
}

// Sessions 建立/銷毀登入 session
type Sessions interface {
	Login(c echo.Context, user *model.PublicUser) (*session.Record, error)
	Logout(c echo.Context) error
}

type TokenSigner interface {
	SignToken(user *model.PublicUser, ttl time.Duration) (string, time.Time, error)
}
