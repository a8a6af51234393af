package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/google/uuid"
)

const entryColumns = `
	e.entry_id, e.user_id, e.title, e.content, e.mood, e.mood_score, e.mood_image_url,
	e.category_id, c.name, e.created_at, e.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.Entry, error) {
	var (
		e            model.Entry
		categoryID   sql.NullString
		categoryName sql.NullString
	)
	err := row.Scan(
		&e.EntryID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.MoodScore, &e.MoodImageURL,
		&categoryID, &categoryName, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		e.CategoryID = &categoryID.String
	}
	if categoryName.Valid {
		e.CategoryName = &categoryName.String
	}
	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *model.Entry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `
INSERT INTO entries (
	entry_id, user_id, title, content, mood, mood_score, mood_image_url, category_id, created_at, updated_at
) VALUES (?,?,?,?,?,?,?,?,?,?)`,
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
WHERE e.entry_id = ? AND e.user_id = ?`
	e, err := scanEntry(s.db.QueryRowContext(ctx, q, entryID, userID))
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
WHERE e.user_id = ?`)
	args := []any{userID}

	switch {
	case f.Unorganized:
		sb.WriteString(" AND e.category_id IS NULL")
	case f.CategoryID != nil:
		sb.WriteString(" AND e.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.Mood != "" {
		sb.WriteString(" AND e.mood = ?")
		args = append(args, f.Mood)
	}
	if f.Search != "" {
		// LIKE is case-insensitive for ASCII in sqlite
		sb.WriteString(` AND (e.title LIKE ? ESCAPE '\' OR e.content LIKE ? ESCAPE '\')`)
		p := repository.ContainsPattern(f.Search)
		args = append(args, p, p)
	}
	if f.CreatedFrom != nil {
		sb.WriteString(" AND e.created_at >= ?")
		args = append(args, f.CreatedFrom.UTC())
	}
	if f.CreatedBefore != nil {
		sb.WriteString(" AND e.created_at < ?")
		args = append(args, f.CreatedBefore.UTC())
	}
	sb.WriteString(" ORDER BY e.created_at DESC")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *model.Entry) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
UPDATE entries
SET title = ?, content = ?, mood = ?, mood_score = ?, mood_image_url = ?, category_id = ?, updated_at = ?
WHERE entry_id = ? AND user_id = ?`,
		e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CategoryID, e.UpdatedAt,
		e.EntryID, e.UserID,
	)
	if err != nil {
		return translate(err, "update entry")
	}
	return affected(res)
}

func (s *Store) DeleteEntry(ctx context.Context, entryID, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE entry_id = ? AND user_id = ?`, entryID, userID)
	if err != nil {
		return translate(err, "delete entry")
	}
	return affected(res)
}
