// File: internal/handler/errors.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"session-guard/internal/apperr"
	"session-guard/internal/dto"

	"github.com/labstack/echo/v4"
)

// RespondError 依錯誤種類寫出 dto.HTTPError
func RespondError(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), dto.HTTPError{Message: apperr.Message(err)})
}

// ErrorHandler 統一處理 handler 與 middleware 回傳的錯誤
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperr.HTTPStatus(err)
		msg := apperr.Message(err)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			msg = fmt.Sprint(he.Message)
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, dto.HTTPError{Message: msg})
		}
		if werr != nil {
			logger.Error("write error response", "error", werr)
		}
	}
}
