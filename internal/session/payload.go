// Package session keeps the authenticated identity in a server side store
// keyed by a signed cookie.
package session

import (
	"time"

	"session-guard/internal/model"
)

// Payload 是寫進 session 的最小身分資訊
type Payload struct {
	ID   int        `json:"id" example:"1"`
	Role model.Role `json:"role" example:"user"`
}

// Cookie 記錄 session cookie 的屬性，登入時一併回傳
type Cookie struct {
	OriginalMaxAge int64     `json:"originalMaxAge" example:"60000"`
	Expires        time.Time `json:"expires"`
	HTTPOnly       bool      `json:"httpOnly" example:"false"`
	Path           string    `json:"path" example:"/"`
	SameSite       string    `json:"sameSite" example:"strict"`
}

type Passport struct {
	User Payload `json:"user"`
}

// Record 是存放在 Redis 的 session 內容，也是登入 API 的回應
// swagger:model session.Record
type Record struct {
	Cookie   Cookie   `json:"cookie"`
	Passport Passport `json:"passport"`
}
