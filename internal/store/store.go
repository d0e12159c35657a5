package store

import (
	"context"
	"errors"

	"github.com/talantmuenster/telebot/internal/model"
)

// ErrNotFound is returned when no submission exists for the given id.
var ErrNotFound = errors.New("submission not found")

// Updates names the fields of a submission to overwrite. Nil fields are
// left untouched, so concurrent updates of different fields never
// clobber each other.
type Updates struct {
	Favorite *bool
	Selected *bool
}

// IsEmpty reports whether the update names no fields at all.
func (u Updates) IsEmpty() bool {
	return u.Favorite == nil && u.Selected == nil
}

// Store is the persistence contract for submissions. Every List call is
// a fresh snapshot ordered by creation time, newest first.
type Store interface {
	// Create assigns an id and creation timestamp, persists the
	// submission and returns the stored record.
	Create(ctx context.Context, sub *model.Submission) (*model.Submission, error)

	// List returns the submissions matching the filter, sorted by
	// CreatedAt descending.
	List(ctx context.Context, filter model.Filter) ([]*model.Submission, error)

	// GetByID returns the submission with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Submission, error)

	// Update merges the named fields into the stored record.
	Update(ctx context.Context, id string, updates Updates) error

	Close(ctx context.Context) error
}
