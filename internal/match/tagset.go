package match

import (
	"encoding/json"
	"slices"
)

// TagSet is an immutable set of tags that remembers insertion order.
// The zero value is the empty set.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from tags, dropping repeats
func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, t := range tags {
		if !s.Contains(t) {
			s.tags = append(s.tags, t)
		}
	}
	return s
}

// Len returns the number of tags in the set
func (s TagSet) Len() int {
	return len(s.tags)
}

// IsEmpty reports whether the set has no tags
func (s TagSet) IsEmpty() bool {
	return len(s.tags) == 0
}

// Contains reports whether tag is in the set
func (s TagSet) Contains(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// Tags returns a copy of the tags in insertion order
func (s TagSet) Tags() []string {
	return slices.Clone(s.tags)
}

// Toggle returns a new set with tag removed if present, or added if absent.
// The receiver is left untouched.
func (s TagSet) Toggle(tag string) TagSet {
	if idx := slices.Index(s.tags, tag); idx >= 0 {
		next := make([]string, 0, len(s.tags)-1)
		next = append(next, s.tags[:idx]...)
		next = append(next, s.tags[idx+1:]...)
		return TagSet{tags: next}
	}

	next := make([]string, len(s.tags), len(s.tags)+1)
	copy(next, s.tags)
	return TagSet{tags: append(next, tag)}
}

// Toggle is the function form of TagSet.Toggle
func Toggle(tag string, set TagSet) TagSet {
	return set.Toggle(tag)
}

// Equal reports whether both sets hold the same tags, ignoring order
func (s TagSet) Equal(other TagSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// countIn counts how many tags of the set appear in itemTags
func (s TagSet) countIn(itemTags []string) int {
	n := 0
	for _, t := range s.tags {
		if slices.Contains(itemTags, t) {
			n++
		}
	}
	return n
}

// intersect returns the tags of the set that appear in itemTags
func (s TagSet) intersect(itemTags []string) TagSet {
	var out TagSet
	for _, t := range s.tags {
		if slices.Contains(itemTags, t) {
			out.tags = append(out.tags, t)
		}
	}
	return out
}

// MarshalJSON encodes the set as an array, never null
func (s TagSet) MarshalJSON() ([]byte, error) {
	if s.tags == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.tags)
}

// UnmarshalJSON decodes an array of tags
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
