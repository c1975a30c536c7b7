package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-guard/internal/cache"
	"session-guard/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	return &Record{
		Cookie: Cookie{
			OriginalMaxAge: 60000,
			Expires:        time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC),
			Path:           "/",
			SameSite:       "strict",
		},
		Passport: Passport{User: Payload{ID: 1, Role: model.RoleAdmin}},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	c := cache.NewMapCache()
	s := NewStore(c)
	ctx := context.Background()

	_, err := s.Get(ctx, "abc")
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.Save(ctx, "abc", sampleRecord(), time.Minute))
	raw, err := c.Get(ctx, "sess:abc").Result()
	require.NoError(t, err)
	require.Contains(t, raw, `"passport":{"user":{"id":1,"role":"admin"}}`)

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, sampleRecord(), got)

	require.NoError(t, s.Destroy(ctx, "abc"))
	_, err = s.Get(ctx, "abc")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	s := NewStore(&cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", boom) },
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", boom)
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(0, boom) },
	})
	_, err := s.Get(ctx, "x")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Save(ctx, "x", sampleRecord(), time.Minute), boom)
	require.ErrorIs(t, s.Destroy(ctx, "x"), boom)

	// 內容不是 JSON
	s = NewStore(&cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("not-json", nil) },
	})
	_, err = s.Get(ctx, "x")
	require.ErrorContains(t, err, "decode session")

	// marshal 失敗
	orig := jsonMarshal
	defer func() { jsonMarshal = orig }()
	jsonMarshal = func(any) ([]byte, error) { return nil, boom }
	s = NewStore(cache.NewMapCache())
	require.ErrorIs(t, s.Save(ctx, "x", sampleRecord(), time.Minute), boom)
}
