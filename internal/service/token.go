// File: internal/service/token.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"session-guard/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// UserFinder 由外部注入的使用者查詢來源
type UserFinder interface {
	FindByID(ctx context.Context, id int) (*model.PublicUser, error)
}

// TokenOptions 建立 TokenService 時於執行期組好的設定
type TokenOptions struct {
	Secret string
	Users  UserFinder
}

// TokenClaims 定義 JWT 負載內容
type TokenClaims struct {
	ID   int        `json:"id"`
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService 以共用密鑰簽發/驗證 HS256 JWT
type TokenService struct {
	secret []byte
	users  UserFinder
}

func NewTokenService(opts TokenOptions) (*TokenService, error) {
	if opts.Secret == "" {
		return nil, errors.New("token secret not set")
	}
	if opts.Users == nil {
		return nil, errors.New("token user finder not set")
	}
	return &TokenService{secret: []byte(opts.Secret), users: opts.Users}, nil
}

// FindUser 透過注入的 UserFinder 查詢使用者
func (s *TokenService) FindUser(ctx context.Context, id int) (*model.PublicUser, error) {
	return s.users.FindByID(ctx, id)
}

// SignToken 依使用者資訊與 TTL 產生 JWT，回傳 token 與到期時間
func (s *TokenService) SignToken(user *model.PublicUser, ttl time.Duration) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(ttl)
	claims := TokenClaims{
		ID:   user.ID,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken 驗證並解析 JWT 令牌
func (s *TokenService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := parseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
