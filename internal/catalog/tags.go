package catalog

import (
	"fmt"
	"strings"
)

// NormalizeTag trims, collapses whitespace and lower-cases a tag.
// An all-blank input normalizes to "".
func NormalizeTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
}

// normalizeTags normalizes and deduplicates a tag list, keeping the first
// occurrence of each tag. A nil input stays nil.
func normalizeTags(tags []string) ([]string, error) {
	if tags == nil {
		return nil, nil
	}

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for i, t := range tags {
		n := NormalizeTag(t)
		if n == "" {
			return nil, fmt.Errorf("tag %d is blank", i)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}
