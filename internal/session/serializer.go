package session

import (
	"context"
	"strconv"

	"session-guard/internal/model"

	"golang.org/x/sync/singleflight"
)

// UserFinder 依 ID 還原使用者，找不到時回傳 apperr.ErrNotFound
type UserFinder interface {
	FindByID(ctx context.Context, id int) (*model.PublicUser, error)
}

// Serializer 在使用者與 session Payload 之間轉換。
// 同一個 ID 同時間的還原請求會合併成一次查詢。
type Serializer struct {
	users UserFinder
	group singleflight.Group
}

func NewSerializer(users UserFinder) *Serializer {
	return &Serializer{users: users}
}

func (s *Serializer) Serialize(u *model.PublicUser) Payload {
	return Payload{ID: u.ID, Role: u.Role}
}

// Deserialize 由 Payload 還原使用者。共用的查詢不受個別請求取消影響，
// 每個呼叫端只等待自己的 ctx。
func (s *Serializer) Deserialize(ctx context.Context, p Payload) (*model.PublicUser, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(strconv.Itoa(p.ID), func() (interface{}, error) {
		return s.users.FindByID(shared, p.ID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		// 共用結果需複製，避免呼叫端互相影響
		u := *res.Val.(*model.PublicUser)
		return &u, nil
	}
}
