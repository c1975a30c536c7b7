package session

import (
	"session-guard/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	// ContextUserKey 當前請求已驗證的使用者 (*model.PublicUser)
	ContextUserKey = "user"

	contextRecordKey = "session"
	contextIDKey     = "session_id"
)

func SetUser(c echo.Context, u *model.PublicUser) {
	c.Set(ContextUserKey, u)
}

// CurrentUser 取得當前請求的使用者，未登入時 ok 為 false
func CurrentUser(c echo.Context) (*model.PublicUser, bool) {
	u, ok := c.Get(ContextUserKey).(*model.PublicUser)
	return u, ok && u != nil
}

// CurrentRecord 取得當前請求還原的 session
func CurrentRecord(c echo.Context) (*Record, bool) {
	r, ok := c.Get(contextRecordKey).(*Record)
	return r, ok && r != nil
}

func currentID(c echo.Context) (string, bool) {
	id, ok := c.Get(contextIDKey).(string)
	return id, ok && id != ""
}

func resetContext(c echo.Context) {
	c.Set(ContextUserKey, nil)
	c.Set(contextRecordKey, nil)
	c.Set(contextIDKey, nil)
}
