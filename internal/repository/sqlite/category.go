package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
)

func (s *Store) CreateCategory(ctx context.Context, c *model.Category) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (category_id, user_id, name, description, created_at, updated_at) VALUES (?,?,?,?,?,?)`,
		c.CategoryID, c.UserID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return translate(err, "insert category")
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error) {
	var c model.Category
	err := s.db.QueryRowContext(ctx, `
SELECT category_id, user_id, name, description, created_at, updated_at
FROM categories WHERE category_id = ? AND user_id = ?`, categoryID, userID).
		Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan category")
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID string) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT category_id, user_id, name, description, created_at, updated_at
FROM categories WHERE user_id = ? ORDER BY created_at DESC`, userID)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return s.execTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE category_id = ? AND user_id = ?`, categoryID, userID); err != nil {
			return fmt.Errorf("delete category entries: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ? AND user_id = ?`, categoryID, userID)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return affected(res)
	})
}
