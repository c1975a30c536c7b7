// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"session-guard/internal/apperr"
	"session-guard/internal/dto"
	"session-guard/internal/model"
	"session-guard/internal/store"
	"session-guard/internal/worker"
)

const invalidCredentials = "incorrect username or password"

// AuthService 負責帳號註冊與帳密驗證。
// 密碼雜湊與比對都丟到 worker pool 執行，不佔用處理請求的 goroutine。
type AuthService struct {
	users  store.UserStore
	hasher PasswordHasher
	pool   worker.Pool
}

func NewAuthService(users store.UserStore, hasher PasswordHasher, pool worker.Pool) *AuthService {
	return &AuthService{users: users, hasher: hasher, pool: pool}
}

// RegisterUser 建立新帳號並回傳不含密碼的使用者
func (s *AuthService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*model.PublicUser, error) {
	// 先驗證輸入，不通過就不碰 store
	if req.Password != req.ConfirmationPassword {
		return nil, apperr.Validation("passwords must match")
	}

	email := store.NormalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email must be unique")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}

	var hash string
	var hashErr error
	if err := worker.Do(ctx, s.pool, func() {
		hash, hashErr = s.hasher.Hash(req.Password)
	}); err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}
	if hashErr != nil {
		return nil, fmt.Errorf("RegisterUser: hash password: %w", hashErr)
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleUser
	}

	// Insert 會在鎖/唯一索引內再檢查一次 Email
	created, err := s.users.Insert(ctx, &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// ValidateUser 以 Email/密碼驗證，成功回傳不含密碼的使用者
func (s *AuthService) ValidateUser(ctx context.Context, req dto.LoginRequest) (*model.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Authentication(invalidCredentials)
		}
		return nil, fmt.Errorf("ValidateUser: %w", err)
	}

	var cmpErr error
	if err := worker.Do(ctx, s.pool, func() {
		cmpErr = s.hasher.Compare(user.PasswordHash, req.Password)
	}); err != nil {
		return nil, fmt.Errorf("ValidateUser: %w", err)
	}
	if cmpErr != nil {
		return nil, apperr.Authentication(invalidCredentials)
	}
	return user.Public(), nil
}

// FindByID 依 ID 取得使用者
func (s *AuthService) FindByID(ctx context.Context, id int) (*model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("no user found with id %d", id))
		}
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return user.Public(), nil
}
