package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the three independent tag groups
type Category string

const (
	CategoryWords Category = "words"
	CategoryFoods Category = "foods"
	CategoryMoods Category = "moods"
)

// Categories lists every category in display order
var Categories = []Category{CategoryWords, CategoryFoods, CategoryMoods}

// ErrUnknownCategory is returned when a category name is not recognized
var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory parses a category name. Singular forms are accepted.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "word":
		return CategoryWords, nil
	case "foods", "food":
		return CategoryFoods, nil
	case "moods", "mood":
		return CategoryMoods, nil
	default:
		return "", fmt.Errorf("%w: %q (use words, foods, or moods)", ErrUnknownCategory, s)
	}
}

// Label returns the heading shown to users for the category
func (c Category) Label() string {
	switch c {
	case CategoryWords:
		return "Describe Your Taste"
	case CategoryFoods:
		return "What Are You Eating?"
	case CategoryMoods:
		return "What's Your Mood?"
	default:
		return string(c)
	}
}
