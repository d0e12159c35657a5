package review

import (
	"errors"

	"github.com/talantmuenster/telebot/internal/model"
)

var (
	// ErrEmptyList is returned when a directional step runs against a
	// list with no records.
	ErrEmptyList = errors.New("submission list is empty")

	// ErrNotFound is returned when re-anchoring cannot find the record
	// in the freshly fetched list.
	ErrNotFound = errors.New("submission not in list")
)

// Direction of a navigation step.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Position is a 1-based index into a submission list of the given
// total length. It is carried entirely inside rendered control
// payloads; nothing is stored server-side between interactions.
type Position struct {
	Index int
	Total int
}

// Step advances a 1-based position cyclically through a list of the
// given length. The position may be stale relative to the list it was
// rendered against; stepping from a stale position lands on an
// adjacent, still valid record, which is acceptable.
func Step(pos int, dir Direction, total int) (Position, error) {
	if total == 0 {
		return Position{}, ErrEmptyList
	}
	delta := 1
	if dir == Previous {
		delta = -1
	}
	idx := ((pos-1+delta)%total + total) % total
	return Position{Index: idx + 1, Total: total}, nil
}

// Locate finds the record's current 1-based position in a freshly
// fetched list by identity. Stale positions are never trusted for
// re-anchoring; only identity is.
func Locate(id string, list []*model.Submission) (Position, error) {
	for i, sub := range list {
		if sub.ID == id {
			return Position{Index: i + 1, Total: len(list)}, nil
		}
	}
	return Position{}, ErrNotFound
}
