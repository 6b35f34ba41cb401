package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// document is the on-disk shape of a catalog file
type document struct {
	Wines []Item `toml:"wines"`
}

// Parse decodes a TOML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc.Wines)
}

// LoadFile reads a TOML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a catalog as a TOML document that Parse accepts
func Marshal(c *Catalog) ([]byte, error) {
	data, err := toml.Marshal(document{Wines: c.Items()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}
