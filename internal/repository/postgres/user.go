package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	const q = `
INSERT INTO users (user_id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	if _, err := s.db.Exec(ctx, q, u.UserID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt); err != nil {
		return translate(err, "insert user")
	}
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	const q = `
SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE user_id = $1
`
	var u model.User
	err := s.db.QueryRow(ctx, q, userID).Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan user by id")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE email = $1
`
	var u model.User
	err := s.db.QueryRow(ctx, q, strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan user by email")
	}
	return &u, nil
}
