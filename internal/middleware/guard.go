// File: internal/middleware/guard.go
package middleware

import (
	"session-guard/internal/apperr"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// Guard 判斷目前請求是否可以繼續
type Guard func(c echo.Context) bool

// LoggedIn 已由 session 或 bearer token 取得使用者
func LoggedIn(c echo.Context) bool {
	_, ok := session.CurrentUser(c)
	return ok
}

// Admin 已登入且角色為 admin
func Admin(c echo.Context) bool {
	if !LoggedIn(c) {
		return false
	}
	u, _ := session.CurrentUser(c)
	return u.IsAdmin()
}

// Require 將 Guard 轉成 echo middleware，不通過回 403
func Require(g Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g(c) {
				return apperr.Authorization("forbidden resource")
			}
			return next(c)
		}
	}
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return Require(LoggedIn)(next)
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return Require(Admin)(next)
}
