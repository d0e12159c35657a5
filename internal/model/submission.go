package model

import "time"

// Submission represents a single crowd-submitted entry.
// IDs are assigned by the store on creation and are opaque to the rest
// of the system.
type Submission struct {
	ID        string
	ChatID    int64
	Text      string
	PhotoID   string
	Favorite  bool
	Selected  bool
	CreatedAt time.Time
}

// HasPhoto reports whether the submission carries an attached image.
func (s *Submission) HasPhoto() bool {
	return s.PhotoID != ""
}

// Filter selects a subset of submissions when listing.
type Filter string

const (
	FilterNone     Filter = ""
	FilterFavorite Filter = "favorite"
	FilterSelected Filter = "selected"
)

// Matches reports whether the submission satisfies the filter predicate.
func (f Filter) Matches(s *Submission) bool {
	switch f {
	case FilterFavorite:
		return s.Favorite
	case FilterSelected:
		return s.Selected
	default:
		return true
	}
}
