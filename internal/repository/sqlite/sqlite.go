package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/journalMin/internal/repository"
)

// Store implements every repository interface on top of database/sql with the modernc driver.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func NewRepository(db *sql.DB) *repository.Repository {
	s := NewStore(db)
	return &repository.Repository{
		User:     s,
		Entry:    s,
		Category: s,
		Draft:    s,
		Ping:     s.db.PingContext,
		Migrate:  s.Migrate,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	user_id       TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL,
	updated_at    DATETIME NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS categories (
	category_id TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS categories_user_idx ON categories (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS entries (
	entry_id       TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	title          TEXT NOT NULL,
	content        TEXT NOT NULL,
	mood           TEXT NOT NULL,
	mood_score     INTEGER NOT NULL,
	mood_image_url TEXT NOT NULL DEFAULT '',
	category_id    TEXT REFERENCES categories(category_id) ON DELETE CASCADE,
	created_at     DATETIME NOT NULL,
	updated_at     DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS entries_user_created_idx ON entries (user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS entries_category_idx ON entries (category_id)`,
	`CREATE TABLE IF NOT EXISTS drafts (
	draft_id   TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
	title      TEXT NOT NULL DEFAULT '',
	content    TEXT NOT NULL DEFAULT '',
	mood       TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`,
}

func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (s *Store) execTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func translate(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
