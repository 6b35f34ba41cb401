// Package session owns a user's selection state and keeps the
// recommendation result in step with it.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/match"
)

// ErrUnknownTag is returned when a tag is not one of the category's options
var ErrUnknownTag = errors.New("unknown tag")

// Session holds the current selection and the result computed from it.
// Every mutation recomputes the result before returning. A Session is not
// safe for concurrent use.
type Session struct {
	id      string
	items   []catalog.Item
	options catalog.Options
	logger  *zap.Logger

	selection match.Selection
	result    match.Result
}

// New creates an idle session over the catalog
func New(cat *catalog.Catalog, opts catalog.Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:      uuid.New().String(),
		items:   cat.Items(),
		options: opts,
	}
	s.logger = logger.With(zap.String("session", s.id))
	s.recompute()
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Options returns the selectable tags
func (s *Session) Options() catalog.Options {
	return s.options
}

// Items returns a copy of the session's catalog items. Scored results point
// into the session's own slice, which never changes.
func (s *Session) Items() []catalog.Item {
	return slices.Clone(s.items)
}

// Selection returns the current selection
func (s *Session) Selection() match.Selection {
	return s.selection
}

// Result returns the result for the current selection
func (s *Session) Result() match.Result {
	return s.result
}

// Toggle flips a tag in one category and recomputes. Tags are normalized and
// must be one of the category's options.
func (s *Session) Toggle(c catalog.Category, tag string) (match.Result, error) {
	normalized, err := s.checkTag(c, tag)
	if err != nil {
		return s.result, err
	}

	s.selection = s.selection.Toggle(c, normalized)
	s.recompute()

	s.logger.Debug("toggled tag",
		zap.String("category", string(c)),
		zap.String("tag", normalized),
		zap.Bool("selected", s.selection.Set(c).Contains(normalized)),
		zap.Stringer("state", s.result.State),
		zap.Int("matches", len(s.result.Matches)),
	)

	return s.result, nil
}

// Select adds tags to a category, leaving already-selected tags in place.
// Nothing changes if any tag is invalid.
func (s *Session) Select(c catalog.Category, tags ...string) (match.Result, error) {
	next := s.selection
	for _, tag := range tags {
		normalized, err := s.checkTag(c, tag)
		if err != nil {
			return s.result, err
		}
		if !next.Set(c).Contains(normalized) {
			next = next.Toggle(c, normalized)
		}
	}

	s.selection = next
	s.recompute()

	s.logger.Debug("selected tags",
		zap.String("category", string(c)),
		zap.Strings("tags", tags),
		zap.Stringer("state", s.result.State),
	)

	return s.result, nil
}

// Reset clears every category in one step and returns to idle
func (s *Session) Reset() match.Result {
	s.selection = match.Selection{}
	s.recompute()

	s.logger.Debug("reset selection")
	return s.result
}

func (s *Session) checkTag(c catalog.Category, tag string) (string, error) {
	switch c {
	case catalog.CategoryWords, catalog.CategoryFoods, catalog.CategoryMoods:
	default:
		return "", fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, c)
	}

	normalized := catalog.NormalizeTag(tag)
	if !s.options.Allows(c, normalized) {
		return "", fmt.Errorf("%w: %q is not a %s option", ErrUnknownTag, tag, c)
	}
	return normalized, nil
}

func (s *Session) recompute() {
	s.result = match.Recommend(s.items, s.selection)
}
