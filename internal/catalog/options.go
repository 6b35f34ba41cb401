package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Options holds the tags a user may pick from in each category. Options are
// static configuration; they are not derived from the catalog, and an option
// need not appear on any wine.
type Options struct {
	Words []string `toml:"words" json:"words"`
	Foods []string `toml:"foods" json:"foods"`
	Moods []string `toml:"moods" json:"moods"`
}

// DefaultOptions returns the stock option lists
func DefaultOptions() Options {
	return Options{
		Words: []string{
			"bold", "crisp", "light", "rich", "fresh", "vibrant", "smooth",
			"elegant", "zesty", "tropical", "sophisticated", "balanced", "intense",
			"clean", "bright", "buttery", "robust", "delicate", "energetic", "refined",
		},
		Foods: []string{
			"red meat", "seafood", "chicken", "pasta", "salads", "cheese",
			"chocolate", "sushi", "grilled foods", "vegetables", "fruit", "fish",
			"herbs", "mushrooms", "lobster", "oysters", "lamb", "steak",
		},
		Moods: []string{
			"romantic", "casual", "sophisticated", "energetic", "relaxed",
			"confident", "social", "elegant", "healthy", "celebratory",
			"refreshing", "balanced", "uplifting", "comfortable", "carefree",
			"evening", "daytime",
		},
	}
}

// List returns the option list for a category
func (o Options) List(c Category) []string {
	switch c {
	case CategoryWords:
		return o.Words
	case CategoryFoods:
		return o.Foods
	case CategoryMoods:
		return o.Moods
	default:
		return nil
	}
}

// Allows reports whether tag is a declared option in the category.
// The tag must already be normalized.
func (o Options) Allows(c Category, tag string) bool {
	return slices.Contains(o.List(c), tag)
}

// Validate checks that every list is non-empty and holds unique, normalized tags
func (o Options) Validate() error {
	var errs []error

	for _, c := range Categories {
		list := o.List(c)
		if len(list) == 0 {
			errs = append(errs, fmt.Errorf("options.%s must not be empty", c))
			continue
		}

		seen := make(map[string]bool, len(list))
		for _, tag := range list {
			n := NormalizeTag(tag)
			switch {
			case n == "":
				errs = append(errs, fmt.Errorf("options.%s contains a blank tag", c))
			case n != tag:
				errs = append(errs, fmt.Errorf("options.%s: %q must be written as %q", c, tag, n))
			case seen[n]:
				errs = append(errs, fmt.Errorf("options.%s: duplicate tag %q", c, tag))
			}
			seen[n] = true
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
