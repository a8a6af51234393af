package postgres

import (
	"context"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
)

func (s *Store) GetDraft(ctx context.Context, userID string) (*model.Draft, error) {
	const q = `
SELECT draft_id, user_id, title, content, mood, created_at, updated_at
FROM drafts
WHERE user_id = $1
`
	var d model.Draft
	err := s.db.QueryRow(ctx, q, userID).
		Scan(&d.DraftID, &d.UserID, &d.Title, &d.Content, &d.Mood, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate(err, "scan draft")
	}
	return &d, nil
}

// SaveDraft upserts the user's single draft.
func (s *Store) SaveDraft(ctx context.Context, d *model.Draft) error {
	now := time.Now().UTC()
	d.UpdatedAt = now
	const q = `
INSERT INTO drafts (draft_id, user_id, title, content, mood, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (user_id) DO UPDATE
SET title = EXCLUDED.title, content = EXCLUDED.content, mood = EXCLUDED.mood, updated_at = EXCLUDED.updated_at
RETURNING draft_id, created_at
`
	err := s.db.QueryRow(ctx, q, uuid.New().String(), d.UserID, d.Title, d.Content, d.Mood, now).
		Scan(&d.DraftID, &d.CreatedAt)
	if err != nil {
		return translate(err, "upsert draft")
	}
	return nil
}

func (s *Store) DeleteDraft(ctx context.Context, userID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM drafts WHERE user_id = $1`, userID); err != nil {
		return translate(err, "delete draft")
	}
	return nil
}
