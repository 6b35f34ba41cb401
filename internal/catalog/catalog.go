package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
)

//go:embed catalog.toml
var builtinCatalog []byte

// ErrInvalidCatalog is returned when catalog entries fail validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Item is a single wine in the catalog
type Item struct {
	ID          int      `toml:"id" json:"id"`
	Name        string   `toml:"name" json:"name"`
	Collection  string   `toml:"collection" json:"collection"`
	Description string   `toml:"description" json:"description"`
	Color       string   `toml:"color" json:"color"`
	Calories    string   `toml:"calories" json:"calories"`
	Words       []string `toml:"words" json:"words"`
	Foods       []string `toml:"foods" json:"foods"`
	Moods       []string `toml:"moods" json:"moods"`
}

// Tags returns the item's tags for the given category
func (i *Item) Tags(c Category) []string {
	switch c {
	case CategoryWords:
		return i.Words
	case CategoryFoods:
		return i.Foods
	case CategoryMoods:
		return i.Moods
	default:
		return nil
	}
}

// Catalog is a fixed, validated list of items. It is never modified after New.
type Catalog struct {
	items []Item
	byID  map[int]int
}

// New validates items and builds a catalog. Tags are normalized and
// deduplicated; catalog order is the order of items.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	var errs []error
	for idx, it := range items {
		if err := c.add(it); err != nil {
			errs = append(errs, fmt.Errorf("wine #%d (id %d): %w", idx+1, it.ID, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	return c, nil
}

func (c *Catalog) add(it Item) error {
	if it.ID == 0 {
		return errors.New("id is required")
	}
	if _, dup := c.byID[it.ID]; dup {
		return errors.New("duplicate id")
	}
	if it.Name == "" {
		return errors.New("name is required")
	}

	var err error
	if it.Words, err = normalizeTags(it.Words); err != nil {
		return fmt.Errorf("words: %w", err)
	}
	if it.Foods, err = normalizeTags(it.Foods); err != nil {
		return fmt.Errorf("foods: %w", err)
	}
	if it.Moods, err = normalizeTags(it.Moods); err != nil {
		return fmt.Errorf("moods: %w", err)
	}

	c.byID[it.ID] = len(c.items)
	c.items = append(c.items, it)
	return nil
}

// Items returns a copy of the catalog's items in catalog order
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the item with the given id
func (c *Catalog) Get(id int) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}
