package repository

import (
	"context"
	"errors"

	"github.com/abhishek622/journalMin/pkg/model"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user.
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type EntryRepository interface {
	CreateEntry(ctx context.Context, e *model.Entry) error
	// GetEntry only returns the entry when it belongs to userID.
	GetEntry(ctx context.Context, entryID, userID string) (*model.Entry, error)
	ListEntries(ctx context.Context, userID string, f model.EntryFilter) ([]model.Entry, error)
	UpdateEntry(ctx context.Context, e *model.Entry) error
	DeleteEntry(ctx context.Context, entryID, userID string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *model.Category) error
	GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error)
	ListCategories(ctx context.Context, userID string) ([]model.Category, error)
	// DeleteCategory removes the category together with its entries.
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

type DraftRepository interface {
	GetDraft(ctx context.Context, userID string) (*model.Draft, error)
	SaveDraft(ctx context.Context, d *model.Draft) error
	DeleteDraft(ctx context.Context, userID string) error
}

// Repository bundles every store the handlers need.
type Repository struct {
	User     UserRepository
	Entry    EntryRepository
	Category CategoryRepository
	Draft    DraftRepository
	Ping     func(ctx context.Context) error
	Migrate  func(ctx context.Context) error
}
