// File: internal/store/postgres.go
package store

import (
	"context"
	"errors"
	"fmt"

	"session-guard/internal/apperr"
	"session-guard/internal/database"
	"session-guard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation SQLSTATE unique_violation
const uniqueViolation = "23505"

// PostgresStore 以 users 資料表實作 UserStore
type PostgresStore struct {
	db database.DB
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func scanUser(row pgx.Row, op string) (*model.User, error) {
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = model.Role(role)
	return u, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, password_hash, role, created_at
		 FROM users WHERE lower(email) = $1`,
		NormalizeEmail(email),
	)
	return scanUser(row, "FindByEmail")
}

func (s *PostgresStore) FindByID(ctx context.Context, id int) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, password_hash, role, created_at
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row, "FindByID")
}

func (s *PostgresStore) Insert(ctx context.Context, u *model.User) (*model.User, error) {
	created := *u
	created.Email = NormalizeEmail(u.Email)
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		created.FirstName,
		created.LastName,
		created.Email,
		created.PasswordHash,
		string(created.Role),
	)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperr.Conflict("email must be unique")
		}
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return &created, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
