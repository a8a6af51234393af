package model

import "time"

// Draft is the single in-progress entry a user keeps between visits.
type Draft struct {
	DraftID   string    `json:"draft_id" db:"draft_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Mood      string    `json:"mood" db:"mood"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SaveDraftReq struct {
	Title   string `json:"title" binding:"max=200"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}
