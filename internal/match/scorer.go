package match

import "github.com/vijay-prabhu/winematch/internal/catalog"

// ScoredItem pairs a catalog item with its match score for one selection.
// The item is shared with the caller and must not be modified.
type ScoredItem struct {
	Item    *catalog.Item `json:"wine"`
	Score   float64       `json:"match_score"` // 0-100
	Matched Selection     `json:"matched"`     // selected tags the item carries
}

// Score returns the percentage of selected tags present in the item's
// corresponding tag lists. It measures how much of the selection is
// satisfied, so extra tags on the item cost nothing. An empty selection
// scores 0.
func Score(item *catalog.Item, sel Selection) float64 {
	totalSelected := sel.Total()
	if totalSelected == 0 {
		return 0
	}

	wordMatches := sel.Words.countIn(item.Words)
	foodMatches := sel.Foods.countIn(item.Foods)
	moodMatches := sel.Moods.countIn(item.Moods)
	totalMatches := wordMatches + foodMatches + moodMatches

	return float64(totalMatches) / float64(totalSelected) * 100
}

// Match scores the item and records which selected tags it matched
func Match(item *catalog.Item, sel Selection) ScoredItem {
	return ScoredItem{
		Item:  item,
		Score: Score(item, sel),
		Matched: Selection{
			Words: sel.Words.intersect(item.Words),
			Foods: sel.Foods.intersect(item.Foods),
			Moods: sel.Moods.intersect(item.Moods),
		},
	}
}

// Describe returns a short human-readable verdict for a score
func Describe(score float64) string {
	switch {
	case score >= 100:
		return "perfect match"
	case score >= 66:
		return "strong match"
	case score >= 33:
		return "partial match"
	case score > 0:
		return "weak match"
	default:
		return "no match"
	}
}
