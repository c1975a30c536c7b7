// File: internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"session-guard/internal/apperr"
	"session-guard/internal/model"
)

var timeNow = time.Now

// MemoryStore 以 slice 保存使用者，讀寫以 RWMutex 序列化。
// ID 由 nextID 遞增產生，不會重複使用。
type MemoryStore struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int
}

// NewMemoryStore 建立記憶體 store，可帶入初始帳號 (ID 為 0 者自動配號)
func NewMemoryStore(seed ...model.User) *MemoryStore {
	s := &MemoryStore{nextID: 1}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	for _, u := range seed {
		u.Email = NormalizeEmail(u.Email)
		if u.ID == 0 {
			u.ID = s.nextID
			s.nextID++
		}
		s.users = append(s.users, u)
	}
	return s
}

// DemoUsers 兩個示範帳號：
// joefoo@test.com / Passw0rd! (admin)、jenbar@test.com / P4ssword! (user)
func DemoUsers() []model.User {
	return []model.User{
		{
			ID:           1,
			FirstName:    "Joe",
			LastName:     "Foo",
			Email:        "joefoo@test.com",
			PasswordHash: "$2b$12$s50omJrK/N3yCM6ynZYmNeen9WERDIVTncywePc75.Ul8.9PUk0LK",
			Role:         model.RoleAdmin,
		},
		{
			ID:           2,
			FirstName:    "Jen",
			LastName:     "Bar",
			Email:        "jenbar@test.com",
			PasswordHash: "$2b$12$FHUV7sHexgNoBbP8HsD4Su/CeiWbuX/JCo8l2nlY1yCo2LcR3SjmC",
			Role:         model.RoleUser,
		},
	}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	email = NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (s *MemoryStore) FindByID(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

// Insert 在寫鎖內檢查 Email 唯一並配號，並行註冊不會拿到相同 ID
func (s *MemoryStore) Insert(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := NormalizeEmail(u.Email)
	for _, existing := range s.users {
		if existing.Email == email {
			return nil, apperr.Conflict("email must be unique")
		}
	}

	created := *u
	created.ID = s.nextID
	created.Email = email
	created.CreatedAt = timeNow()
	s.nextID++
	s.users = append(s.users, created)
	return &created, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
