package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/database"
	"github.com/vijay-prabhu/winematch/internal/match"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case match.Result:
		return resultTable(w, v)
	case *match.Result:
		return resultTable(w, *v)
	case []catalog.Item:
		return winesTable(w, v)
	case *catalog.Item:
		return wineDetail(w, v)
	case catalog.Options:
		return optionsTable(w, v)
	case []database.Import:
		return importsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func resultTable(w io.Writer, r match.Result) error {
	switch r.State {
	case match.StateIdle:
		fmt.Fprintln(w, "Select your preferences to find your perfect wine.")
		return nil
	case match.StateNoMatches:
		fmt.Fprintf(w, "No matches found for %s.\n", FormatSelection(r.Selection))
		fmt.Fprintln(w, "Try selecting different preferences to find your perfect wine!")
		return nil
	}

	fmt.Fprintf(w, "Your wine matches for %s:\n\n", FormatSelection(r.Selection))

	table := tablewriter.NewWriter(w)
	table.Header("#", "Wine", "Collection", "Calories", "Match", "Matched On")

	for i, m := range r.Matches {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			m.Item.Name,
			m.Item.Collection,
			m.Item.Calories,
			FormatScore(m.Score),
			strings.Join(matchedTags(m.Matched), ", "),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func winesTable(w io.Writer, items []catalog.Item) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No wines found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Collection", "Calories", "Description")

	for _, it := range items {
		if err := table.Append([]string{
			strconv.Itoa(it.ID),
			it.Name,
			it.Collection,
			it.Calories,
			truncate(it.Description, 50),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func wineDetail(w io.Writer, it *catalog.Item) error {
	fmt.Fprintf(w, "Wine:        %s\n", it.Name)
	fmt.Fprintf(w, "ID:          %d\n", it.ID)
	fmt.Fprintf(w, "Collection:  %s\n", it.Collection)
	if it.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", it.Description)
	}
	if it.Color != "" {
		fmt.Fprintf(w, "Color:       %s\n", it.Color)
	}
	fmt.Fprintf(w, "Calories:    %s\n", it.Calories)
	fmt.Fprintf(w, "Words:       %s\n", joinOrDash(it.Words))
	fmt.Fprintf(w, "Foods:       %s\n", joinOrDash(it.Foods))
	fmt.Fprintf(w, "Moods:       %s\n", joinOrDash(it.Moods))
	return nil
}

func optionsTable(w io.Writer, opts catalog.Options) error {
	for i, c := range catalog.Categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", c.Label(), c)
		fmt.Fprintln(w, strings.Repeat("-", 30))
		fmt.Fprintln(w, wrapTags(opts.List(c), 78))
	}
	return nil
}

func importsTable(w io.Writer, imports []database.Import) error {
	if len(imports) == 0 {
		fmt.Fprintln(w, "No catalog imports recorded.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Imported", "Source", "Wines", "ID")

	for _, imp := range imports {
		source := "-"
		if imp.Source != nil {
			source = *imp.Source
		}
		if err := table.Append([]string{
			imp.ImportedAt.Format("Jan 02, 2006 15:04"),
			source,
			strconv.Itoa(imp.WineCount),
			imp.ID,
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

// FormatScore renders a match score as a whole percentage
func FormatScore(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score)))
}

// FormatSelection renders a selection as "words: a, b; foods: c"
func FormatSelection(sel match.Selection) string {
	var parts []string
	for _, c := range catalog.Categories {
		set := sel.Set(c)
		if set.IsEmpty() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", c, strings.Join(set.Tags(), ", ")))
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, "; ")
}

func matchedTags(sel match.Selection) []string {
	var tags []string
	for _, c := range catalog.Categories {
		tags = append(tags, sel.Set(c).Tags()...)
	}
	return tags
}

func joinOrDash(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// truncate shortens s to at most max runes, marking the cut with "..."
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// wrapTags joins tags with ", " into lines of at most width runes. Lines
// only break between tags, so a multi-word tag is never split.
func wrapTags(tags []string, width int) string {
	var lines []string
	var line strings.Builder
	lineLen := 0

	for i, tag := range tags {
		item := tag
		if i < len(tags)-1 {
			item += ","
		}
		n := utf8.RuneCountInString(item)

		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(item)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
