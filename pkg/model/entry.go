package model

import "time"

type Entry struct {
	EntryID      string    `json:"entry_id" db:"entry_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Mood         string    `json:"mood" db:"mood"`
	MoodScore    int       `json:"mood_score" db:"mood_score"`
	MoodImageURL string    `json:"mood_image_url,omitempty" db:"mood_image_url"`
	CategoryID   *string   `json:"category_id,omitempty" db:"category_id"`
	CategoryName *string   `json:"category_name,omitempty" db:"category_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// EntryFilter narrows ListByUser. Zero values mean "no filter".
type EntryFilter struct {
	CategoryID    *string
	Unorganized   bool
	Mood          string
	Search        string
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

type CreateEntryReq struct {
	Title      string  `json:"title" binding:"required,max=200"`
	Content    string  `json:"content" binding:"required"`
	Mood       string  `json:"mood" binding:"required"`
	CategoryID *string `json:"category_id"`
}

type UpdateEntryReq struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Content    *string `json:"content"`
	Mood       *string `json:"mood"`
	CategoryID *string `json:"category_id"`
}

type ListEntriesQuery struct {
	CategoryID string `form:"category_id"`
	Mood       string `form:"mood"`
	Search     string `form:"search"`
	Date       string `form:"date"`
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=20"`
}

type AskReq struct {
	EntryID   string   `json:"entry_id" binding:"required"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}

type AskRes struct {
	Answer string `json:"answer"`
}
