package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements every repository interface on top of a shared pgx pool.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// NewRepository wires one Store into all repository slots.
func NewRepository(db *pgxpool.Pool) *repository.Repository {
	s := NewStore(db)
	return &repository.Repository{
		User:     s,
		Entry:    s,
		Category: s,
		Draft:    s,
		Ping:     s.db.Ping,
		Migrate:  s.Migrate,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id       TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	category_id TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS categories_user_idx ON categories (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS entries (
	entry_id       TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	title          TEXT NOT NULL,
	content        TEXT NOT NULL,
	mood           TEXT NOT NULL,
	mood_score     INTEGER NOT NULL,
	mood_image_url TEXT NOT NULL DEFAULT '',
	category_id    TEXT REFERENCES categories(category_id) ON DELETE CASCADE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS entries_user_created_idx ON entries (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS entries_category_idx ON entries (category_id);

CREATE TABLE IF NOT EXISTS drafts (
	draft_id   TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
	title      TEXT NOT NULL DEFAULT '',
	content    TEXT NOT NULL DEFAULT '',
	mood       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates missing tables; it is safe to run repeatedly.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// translate maps driver errors onto repository sentinels.
func translate(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL unique_violation code is "23505"
		if pgErr.Code == "23505" {
			return fmt.Errorf("%s: %w", op, repository.ErrConflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
