// File: internal/model/user.go
package model

import "time"

// Role 使用者角色
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// PublicUser 是不含密碼的使用者投影，所有對外回傳都使用它
type PublicUser struct {
	ID        int    `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Joe"`
	LastName  string `json:"lastName" example:"Foo"`
	Email     string `json:"email" example:"joefoo@test.com"`
	Role      Role   `json:"role" example:"user"`
}

// Public 去除密碼欄位
func (u User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

func (u PublicUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
