package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateCategory(ctx context.Context, c *model.Category) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	const q = `
INSERT INTO categories (category_id, user_id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	if _, err := s.db.Exec(ctx, q, c.CategoryID, c.UserID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt); err != nil {
		return translate(err, "insert category")
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error) {
	const q = `
SELECT category_id, user_id, name, description, created_at, updated_at
FROM categories
WHERE category_id = $1 AND user_id = $2
`
	var c model.Category
	err := s.db.QueryRow(ctx, q, categoryID, userID).
		Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan category")
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID string) ([]model.Category, error) {
	const q = `
SELECT category_id, user_id, name, description, created_at, updated_at
FROM categories
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := make([]model.Category, 0, 8)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (s *Store) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return s.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE category_id = $1 AND user_id = $2`, categoryID, userID); err != nil {
			return fmt.Errorf("delete category entries: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1 AND user_id = $2`, categoryID, userID)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}
