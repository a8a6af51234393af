package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `
	e.entry_id, e.user_id, e.title, e.content, e.mood, e.mood_score, e.mood_image_url,
	e.category_id, c.name, e.created_at, e.updated_at`

func scanEntry(row pgx.Row) (*model.Entry, error) {
	var e model.Entry
	err := row.Scan(
		&e.EntryID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.MoodScore, &e.MoodImageURL,
		&e.CategoryID, &e.CategoryName, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *model.Entry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	const q = `
INSERT INTO entries (
	entry_id, user_id, title, content, mood, mood_score, mood_image_url, category_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := s.db.Exec(ctx, q,
		e.EntryID, e.UserID, e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CategoryID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translate(err, "insert entry")
	}
	return nil
}

func (s *Store) GetEntry(ctx context.Context, entryID, userID string) (*model.Entry, error) {
	q := `SELECT ` + entryColumns + `
FROM entries e
LEFT JOIN categories c ON c.category_id = e.category_id
WHERE e.entry_id = $1 AND e.user_id = $2
`
	e, err := scanEntry(s.db.QueryRow(ctx, q, entryID, userID))
	if err != nil {
		return nil, translate(err, "scan entry")
	}
	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, userID string, f model.EntryFilter) ([]model.Entry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + entryColumns + `
FROM entries e
LEFT JOIN categories c ON c.category_id = e.category_id
WHERE e.user_id = $1`)
	args := []any{userID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.Unorganized:
		sb.WriteString(" AND e.category_id IS NULL")
	case f.CategoryID != nil:
		sb.WriteString(" AND e.category_id = " + arg(*f.CategoryID))
	}
	if f.Mood != "" {
		sb.WriteString(" AND e.mood = " + arg(f.Mood))
	}
	if f.Search != "" {
		p := arg(repository.ContainsPattern(f.Search))
		sb.WriteString(" AND (e.title ILIKE " + p + ` ESCAPE '\' OR e.content ILIKE ` + p + ` ESCAPE '\')`)
	}
	if f.CreatedFrom != nil {
		sb.WriteString(" AND e.created_at >= " + arg(*f.CreatedFrom))
	}
	if f.CreatedBefore != nil {
		sb.WriteString(" AND e.created_at < " + arg(*f.CreatedBefore))
	}
	sb.WriteString(" ORDER BY e.created_at DESC")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(f.Limit) + " OFFSET " + arg(f.Offset))
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.Entry, 0, 16)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, *e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *model.Entry) error {
	e.UpdatedAt = time.Now().UTC()
	const q = `
UPDATE entries
SET title = $1, content = $2, mood = $3, mood_score = $4, mood_image_url = $5, category_id = $6, updated_at = $7
WHERE entry_id = $8 AND user_id = $9
`
	tag, err := s.db.Exec(ctx, q,
		e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CategoryID, e.UpdatedAt,
		e.EntryID, e.UserID,
	)
	if err != nil {
		return translate(err, "update entry")
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, entryID, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return translate(err, "delete entry")
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
