package match

import (
	"fmt"
	"sort"

	"github.com/vijay-prabhu/winematch/internal/catalog"
)

// State is the externally visible state of a recommendation
type State int

const (
	// StateIdle means nothing is selected; results should be hidden
	StateIdle State = iota
	// StateNoMatches means a selection exists but no item scored above zero
	StateNoMatches
	// StateMatched means at least one item matched
	StateMatched
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNoMatches:
		return "no_matches"
	case StateMatched:
		return "matched"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scored reports whether a selection has been made
func (s State) Scored() bool {
	return s != StateIdle
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StateIdle
	case "no_matches":
		*s = StateNoMatches
	case "matched":
		*s = StateMatched
	default:
		return fmt.Errorf("unknown state: %q", text)
	}
	return nil
}

// Result is the output of Recommend
type Result struct {
	State     State        `json:"state"`
	Selection Selection    `json:"selection"`
	Matches   []ScoredItem `json:"matches"`
}

// Recommend scores every item against the selection, drops items scoring
// zero, and orders the rest by score, highest first. Items with equal
// scores keep their catalog order. An empty selection yields StateIdle.
//
// Returned ScoredItems point into items.
func Recommend(items []catalog.Item, sel Selection) Result {
	if sel.IsEmpty() {
		return Result{State: StateIdle, Selection: sel, Matches: []ScoredItem{}}
	}

	matches := make([]ScoredItem, 0, len(items))
	for i := range items {
		scored := Match(&items[i], sel)
		if scored.Score > 0 {
			matches = append(matches, scored)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	state := StateMatched
	if len(matches) == 0 {
		state = StateNoMatches
	}

	return Result{State: state, Selection: sel, Matches: matches}
}
