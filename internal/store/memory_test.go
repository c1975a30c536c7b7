package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"session-guard/internal/apperr"
	"session-guard/internal/model"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSeed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(DemoUsers()...)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	joe, err := s.FindByEmail(ctx, "JoeFoo@Test.com")
	require.NoError(t, err)
	require.Equal(t, 1, joe.ID)
	require.Equal(t, model.RoleAdmin, joe.Role)

	jen, err := s.FindByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "jenbar@test.com", jen.Email)

	_, err = s.FindByID(ctx, 99)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = s.FindByEmail(ctx, "nobody@test.com")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// 新帳號接在 seed 之後
	created, err := s.Insert(ctx, &model.User{Email: "a@x.com", Role: model.RoleUser})
	require.NoError(t, err)
	require.Equal(t, 3, created.ID)
	require.False(t, created.CreatedAt.IsZero())
}

func TestMemoryStoreSeedWithoutIDs(t *testing.T) {
	s := NewMemoryStore(model.User{Email: "a@x.com"}, model.User{ID: 5, Email: "b@x.com"})
	a, err := s.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, 6, a.ID)
}

func TestMemoryStoreInsertConflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Insert(ctx, &model.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, &model.User{Email: "A@X.com"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	n, _ := s.Count(ctx)
	require.Equal(t, 1, n)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(DemoUsers()...)
	u, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	u.Role = model.RoleUser

	again, _ := s.FindByID(ctx, 1)
	require.Equal(t, model.RoleAdmin, again.Role)
}

func TestMemoryStoreConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n*2)
	for i := 0; i < n; i++ {
		wg.Add(2)
		email := fmt.Sprintf("user%d@x.com", i)
		for j := 0; j < 2; j++ {
			go func() {
				defer wg.Done()
				u, err := s.Insert(ctx, &model.User{Email: email})
				if err == nil {
					ids <- u.ID
				}
			}()
		}
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	count, _ := s.Count(ctx)
	require.Equal(t, n, count)
}
