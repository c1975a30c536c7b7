// File: internal/store/store.go
package store

import (
	"context"
	"strings"

	"session-guard/internal/model"
)

// UserStore 是帳號資料的存取能力，AuthService 只依賴這個介面，
// 記憶體版與 Postgres 版可以互換。
//
// FindByEmail / FindByID 找不到時回傳 apperr.ErrNotFound；
// Insert 指派新的 ID，Email 重複時回傳 apperr.ErrConflict。
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	Insert(ctx context.Context, u *model.User) (*model.User, error)
	Count(ctx context.Context) (int, error)
}

// NormalizeEmail Email 一律以小寫比對與儲存
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
