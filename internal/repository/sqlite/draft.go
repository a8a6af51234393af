package sqlite

import (
	"context"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
)

func (s *Store) GetDraft(ctx context.Context, userID string) (*model.Draft, error) {
	var d model.Draft
	err := s.db.QueryRowContext(ctx, `
SELECT draft_id, user_id, title, content, mood, created_at, updated_at
FROM drafts WHERE user_id = ?`, userID).
		Scan(&d.DraftID, &d.UserID, &d.Title, &d.Content, &d.Mood, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan draft")
	}
	return &d, nil
}

func (s *Store) SaveDraft(ctx context.Context, d *model.Draft) error {
	now := time.Now().UTC()
	d.UpdatedAt = now
	err := s.db.QueryRowContext(ctx, `
INSERT INTO drafts (draft_id, user_id, title, content, mood, created_at, updated_at)
VALUES (?,?,?,?,?,?,?)
ON CONFLICT (user_id) DO UPDATE
SET title = excluded.title, content = excluded.content, mood = excluded.mood, updated_at = excluded.updated_at
RETURNING draft_id, created_at`,
		uuid.New().String(), d.UserID, d.Title, d.Content, d.Mood, now, now).
		Scan(&d.DraftID, &d.CreatedAt)
	if err != nil {
		return translate(err, "upsert draft")
	}
	return nil
}

func (s *Store) DeleteDraft(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE user_id = ?`, userID); err != nil {
		return translate(err, "delete draft")
	}
	return nil
}
