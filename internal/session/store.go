package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"session-guard/internal/cache"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "sess:"

var ErrSessionNotFound = errors.New("session not found")

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// Store 以 cache (Redis) 存放 session，key 為 sess:<sid>
type Store struct {
	cache cache.Cache
}

func NewStore(c cache.Cache) *Store {
	return &Store{cache: c}
}

func (s *Store) Get(ctx context.Context, sid string) (*Record, error) {
	raw, err := s.cache.Get(ctx, keyPrefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	rec := &Record{}
	if err := jsonUnmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return rec, nil
}

// Save 寫入 session，ttl 到期後由 Redis 移除
func (s *Store) Save(ctx context.Context, sid string, rec *Record, ttl time.Duration) error {
	data, err := jsonMarshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.cache.Set(ctx, keyPrefix+sid, data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) Destroy(ctx context.Context, sid string) error {
	if err := s.cache.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
