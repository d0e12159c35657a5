package review

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind discriminates the control pressed on a submission message.
type ActionKind int

const (
	ActionNoop ActionKind = iota
	ActionFavorite
	ActionSelected
	ActionNext
	ActionPrevious
)

// Callback payload prefixes. These strings are rendered into inline
// buttons and come back verbatim in callback queries, so they are the
// only wire format this package produces or consumes.
const (
	prefixFavorite = "fav"
	prefixSelected = "sel"
	prefixNext     = "next"
	prefixPrevious = "prev"
	payloadNoop    = "noop"
)

// Action is the decoded callback payload: a toggle carries the record
// id, a directional step carries the 1-based position it was rendered
// at.
type Action struct {
	Kind  ActionKind
	DocID string
	Pos   int
}

// ParseAction decodes a callback payload. Malformed payloads return
// ok=false and are ignored by callers; payloads are only ever produced
// by this package, so anything unparseable is noise.
func ParseAction(data string) (Action, bool) {
	if data == payloadNoop {
		return Action{Kind: ActionNoop}, true
	}

	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Action{}, false
	}

	switch parts[0] {
	case prefixFavorite:
		return Action{Kind: ActionFavorite, DocID: parts[1]}, true
	case prefixSelected:
		return Action{Kind: ActionSelected, DocID: parts[1]}, true
	case prefixNext, prefixPrevious:
		pos, err := strconv.Atoi(parts[1])
		if err != nil || pos < 1 {
			return Action{}, false
		}
		kind := ActionNext
		if parts[0] == prefixPrevious {
			kind = ActionPrevious
		}
		return Action{Kind: kind, Pos: pos}, true
	}
	return Action{}, false
}

func toggleData(prefix, docID string) string {
	return prefix + ":" + docID
}

func stepData(prefix string, pos int) string {
	return fmt.Sprintf("%s:%d", prefix, pos)
}
