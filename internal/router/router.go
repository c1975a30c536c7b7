// File: internal/router/router.go
package router

import (
	"log/slog"
	"net/http"
	"time"

	"session-guard/internal/cache"
	"session-guard/internal/database"
	"session-guard/internal/handler"
	"session-guard/internal/handler/auth"
	"session-guard/internal/middleware"
	"session-guard/internal/service"
	"session-guard/internal/session"

	"github.com/labstack/echo/v4"
)

// Deps 路由所需的服務，由 cmd/service 組裝
type Deps struct {
	Auth     *service.AuthService
	Tokens   *service.TokenService
	Sessions *session.Manager
	// DB 為 nil 表示使用記憶體 store
	DB       database.DB
	Cache    cache.Cache
	TokenTTL time.Duration
	Logger   *slog.Logger
}

// Route 一條路由及其 guard，依序套用
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Guards  []echo.MiddlewareFunc
}

// Routes 回傳完整的路由表
func Routes(d Deps) []Route {
	return []Route{
		{http.MethodGet, "/", handler.PublicHandler(), nil},
		{http.MethodGet, "/protected", handler.ProtectedHandler(), guards(middleware.RequireAuth)},
		{http.MethodGet, "/admin", handler.AdminHandler(), guards(middleware.RequireAdmin)},

		{http.MethodPost, "/auth/register", auth.RegisterHandler(d.Auth), nil},
		{http.MethodPost, "/auth/login", auth.LoginHandler(d.Sessions), guards(middleware.LocalAuth(d.Auth))},
		{http.MethodPost, "/auth/logout", auth.LogoutHandler(d.Sessions), guards(middleware.RequireAuth)},
		{http.MethodGet, "/auth/me", auth.MeHandler(), guards(middleware.RequireAuth)},
		{http.MethodPost, "/auth/token", auth.TokenHandler(d.Tokens, d.TokenTTL), guards(middleware.RequireAuth)},

		// 健康檢查
		{http.MethodGet, "/ping", handler.PingHandler(d.DB, d.Cache), nil},
	}
}

func guards(m ...echo.MiddlewareFunc) []echo.MiddlewareFunc { return m }

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	e.HTTPErrorHandler = handler.ErrorHandler(d.Logger)

	// 先由 session cookie 還原使用者，再看 bearer token
	e.Use(d.Sessions.Middleware())
	e.Use(middleware.BearerToken(d.Tokens, d.Logger))

	for _, r := range Routes(d) {
		e.Add(r.Method, r.Path, r.Handler, r.Guards...)
	}
}
