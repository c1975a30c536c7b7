// File: internal/store/postgres_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-guard/internal/apperr"
	"session-guard/internal/database"
	"session-guard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援三種 Scan 呼叫場景：
// 1) len(dest)==7 → FindByID / FindByEmail
// 2) len(dest)==2 → Insert (id, created_at)
// 3) len(dest)==1 → Count
type fakeUserRow struct {
	scanErr error
	user    *model.User
	count   int
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 7:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.FirstName
		*dest[2].(*string) = u.LastName
		*dest[3].(*string) = u.Email
		*dest[4].(*string) = u.PasswordHash
		*dest[5].(*string) = string(u.Role)
		*dest[6].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	case 1:
		*dest[0].(*int) = r.count
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

func rowDB(row pgx.Row, gotArgs *[]any) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			if gotArgs != nil {
				*gotArgs = args
			}
			return row
		},
	}
}

/* ---------- 完整測試 ---------- */

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		FirstName:    "Alice",
		LastName:     "Liddell",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
	}

	t.Run("FindByID success", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{user: sample}, nil))
		u, err := s.FindByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, model.RoleAdmin, u.Role)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{scanErr: pgx.ErrNoRows}, nil))
		u, err := s.FindByID(ctx, 999)
		require.ErrorIs(t, err, apperr.ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("FindByID db error", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{scanErr: errors.New("conn reset")}, nil))
		_, err := s.FindByID(ctx, 1)
		require.Error(t, err)
		require.NotErrorIs(t, err, apperr.ErrNotFound)
		require.Contains(t, err.Error(), "FindByID")
	})

	t.Run("FindByEmail lowercases input", func(t *testing.T) {
		var args []any
		s := NewPostgresStore(rowDB(&fakeUserRow{user: sample}, &args))
		u, err := s.FindByEmail(ctx, "Alice@Example.COM")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, []any{"alice@example.com"}, args)
	})

	t.Run("FindByEmail not found", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{scanErr: pgx.ErrNoRows}, nil))
		_, err := s.FindByEmail(ctx, "bob@example.com")
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("Insert success", func(t *testing.T) {
		var args []any
		returned := &model.User{ID: 42, CreatedAt: now.Add(time.Hour)}
		s := NewPostgresStore(rowDB(&fakeUserRow{user: returned}, &args))
		in := &model.User{FirstName: "Bob", LastName: "B", Email: "Bob@Example.com", PasswordHash: "pwdhash", Role: model.RoleUser}
		created, err := s.Insert(ctx, in)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.Equal(t, "bob@example.com", created.Email)
		require.WithinDuration(t, now.Add(time.Hour), created.CreatedAt, time.Second)
		require.Equal(t, []any{"Bob", "B", "bob@example.com", "pwdhash", "user"}, args)
		require.Equal(t, 0, in.ID)
	})

	t.Run("Insert duplicate email", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{scanErr: &pgconn.PgError{Code: "23505"}}, nil))
		_, err := s.Insert(ctx, &model.User{Email: "alice@example.com"})
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("Insert error", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{scanErr: errors.New("boom")}, nil))
		_, err := s.Insert(ctx, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("Count", func(t *testing.T) {
		s := NewPostgresStore(rowDB(&fakeUserRow{count: 3}, nil))
		n, err := s.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		s = NewPostgresStore(rowDB(&fakeUserRow{scanErr: errors.New("boom")}, nil))
		_, err = s.Count(ctx)
		require.Error(t, err)
	})
}
