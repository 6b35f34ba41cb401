package match

import "github.com/vijay-prabhu/winematch/internal/catalog"

// Selection is the set of chosen tags in each category. The zero value
// is the empty selection. Categories are independent: a word tag is only
// ever compared against an item's words.
type Selection struct {
	Words TagSet `json:"words"`
	Foods TagSet `json:"foods"`
	Moods TagSet `json:"moods"`
}

// Set returns the selection set for a category
func (s Selection) Set(c catalog.Category) TagSet {
	switch c {
	case catalog.CategoryWords:
		return s.Words
	case catalog.CategoryFoods:
		return s.Foods
	case catalog.CategoryMoods:
		return s.Moods
	default:
		return TagSet{}
	}
}

// With returns a copy of the selection with the category's set replaced
func (s Selection) With(c catalog.Category, set TagSet) Selection {
	switch c {
	case catalog.CategoryWords:
		s.Words = set
	case catalog.CategoryFoods:
		s.Foods = set
	case catalog.CategoryMoods:
		s.Moods = set
	}
	return s
}

// Toggle returns a copy of the selection with tag toggled in one category
func (s Selection) Toggle(c catalog.Category, tag string) Selection {
	return s.With(c, s.Set(c).Toggle(tag))
}

// Total is the number of selections across all categories. The same tag
// chosen under two categories counts twice.
func (s Selection) Total() int {
	return s.Words.Len() + s.Foods.Len() + s.Moods.Len()
}

// IsEmpty reports whether nothing is selected in any category
func (s Selection) IsEmpty() bool {
	return s.Total() == 0
}

// Equal reports whether both selections hold the same tags per category
func (s Selection) Equal(other Selection) bool {
	return s.Words.Equal(other.Words) &&
		s.Foods.Equal(other.Foods) &&
		s.Moods.Equal(other.Moods)
}
