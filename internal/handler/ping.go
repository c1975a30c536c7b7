// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"session-guard/internal/cache"
	"session-guard/internal/database"
	"session-guard/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		// 使用記憶體 store 時沒有資料庫
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
			}
		}
		if err := cch.Set(ctx, "ping", "pong", 5*time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
