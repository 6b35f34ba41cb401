package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/output"
)

func (s *Server) registerHandlers() {
	s.handlers["list_options"] = s.handleListOptions
	s.handlers["toggle_tag"] = s.handleToggleTag
	s.handlers["select_tags"] = s.handleSelectTags
	s.handlers["reset_selection"] = s.handleResetSelection
	s.handlers["get_recommendations"] = s.handleGetRecommendations
	s.handlers["list_wines"] = s.handleListWines
	s.handlers["get_wine"] = s.handleGetWine
}

func (s *Server) handleListOptions(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.session.Options(), nil
}

type toggleTagParams struct {
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

func (s *Server) handleToggleTag(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p toggleTagParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Tag == "" {
		return nil, fmt.Errorf("tag is required")
	}

	c, err := catalog.ParseCategory(p.Category)
	if err != nil {
		return nil, err
	}

	return s.session.Toggle(c, p.Tag)
}

type selectTagsParams struct {
	Words []string `json:"words"`
	Foods []string `json:"foods"`
	Moods []string `json:"moods"`
}

func (s *Server) handleSelectTags(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p selectTagsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	byCategory := map[catalog.Category][]string{
		catalog.CategoryWords: p.Words,
		catalog.CategoryFoods: p.Foods,
		catalog.CategoryMoods: p.Moods,
	}

	// Check everything first so a bad tag leaves the selection untouched
	opts := s.session.Options()
	for _, c := range catalog.Categories {
		for _, tag := range byCategory[c] {
			if !opts.Allows(c, catalog.NormalizeTag(tag)) {
				return nil, fmt.Errorf("%q is not a %s option", tag, c)
			}
		}
	}

	result := s.session.Result()
	for _, c := range catalog.Categories {
		if len(byCategory[c]) == 0 {
			continue
		}
		var err error
		if result, err = s.session.Select(c, byCategory[c]...); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *Server) handleResetSelection(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.session.Reset(), nil
}

func (s *Server) handleGetRecommendations(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.session.Result(), nil
}

func (s *Server) handleListWines(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.session.Items(), nil
}

type getWineParams struct {
	ID int `json:"id"`
}

func (s *Server) handleGetWine(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getWineParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	for _, it := range s.session.Items() {
		if it.ID == p.ID {
			return it, nil
		}
	}
	return nil, fmt.Errorf("wine not found: %d", p.ID)
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "winematch://options":
		return render(s.session.Options())
	case "winematch://selection":
		return s.getResourceSelection()
	case "winematch://catalog":
		return render(s.session.Items())
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceSelection() (string, error) {
	r := s.session.Result()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Selection: %s\n", output.FormatSelection(r.Selection))
	fmt.Fprintf(&buf, "State:     %s\n\n", r.State)
	if err := output.TableTo(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := output.TableTo(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
