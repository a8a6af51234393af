package sqlite

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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, email, name, password_hash, created_at, updated_at) VALUES (?,?,?,?,?,?)`,
		u.UserID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return translate(err, "insert user")
	}
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, email, name, password_hash, created_at, updated_at FROM users WHERE user_id = ?`, userID).
		Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan user by id")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, email, name, password_hash, created_at, updated_at FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan user by email")
	}
	return &u, nil
}
