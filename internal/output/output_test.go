package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/database"
	"github.com/vijay-prabhu/winematch/internal/match"
)

func TestResultTableStates(t *testing.T) {
	items := catalog.Default().Items()

	tests := []struct {
		name     string
		sel      match.Selection
		contains []string
		excludes []string
	}{
		{
			name:     "idle",
			sel:      match.Selection{},
			contains: []string{"Select your preferences"},
			excludes: []string{"No matches"},
		},
		{
			name:     "no matches",
			sel:      match.Selection{Foods: match.NewTagSet("steak")},
			contains: []string{"No matches found", "foods: steak"},
		},
		{
			name: "matched",
			sel: match.Selection{
				Words: match.NewTagSet("bold"),
				Foods: match.NewTagSet("chocolate"),
				Moods: match.NewTagSet("romantic"),
			},
			contains: []string{"Cabernet Sauvignon", "100%", "67%", "romantic"},
			excludes: []string{"Pinot Grigio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := TableTo(&buf, match.Recommend(items, tt.sel)); err != nil {
				t.Fatalf("TableTo failed: %v", err)
			}

			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestWinesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, catalog.Default().Items()); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Chardonnay") {
		t.Errorf("expected Chardonnay in output:\n%s", buf.String())
	}

	buf.Reset()
	if err := TableTo(&buf, []catalog.Item{}); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No wines found") {
		t.Errorf("unexpected output for empty list: %s", buf.String())
	}
}

func TestWineDetail(t *testing.T) {
	wine, _ := catalog.Default().Get(1)

	var buf bytes.Buffer
	if err := TableTo(&buf, &wine); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}

	out := buf.String()
	for _, s := range []string{"Cabernet Sauvignon", "#722F37", "grilled steak", "celebratory"} {
		if !strings.Contains(out, s) {
			t.Errorf("detail missing %q:\n%s", s, out)
		}
	}
}

func TestOptionsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, catalog.DefaultOptions()); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}

	out := buf.String()
	for _, s := range []string{"Describe Your Taste", "What Are You Eating?", "What's Your Mood?", "grilled foods"} {
		if !strings.Contains(out, s) {
			t.Errorf("options missing %q:\n%s", s, out)
		}
	}
}

func TestOptionsTableKeepsTagsWhole(t *testing.T) {
	opts := catalog.DefaultOptions()

	var buf bytes.Buffer
	if err := TableTo(&buf, opts); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}

	allowed := make(map[string]bool)
	for _, c := range catalog.Categories {
		for _, tag := range opts.List(c) {
			allowed[tag] = true
		}
	}

	// Every comma-separated entry on a tag line must be a real option
	seen := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if line == "" || strings.HasPrefix(line, "-") || strings.Contains(line, "(") {
			continue
		}
		for _, entry := range strings.Split(line, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			if !allowed[entry] {
				t.Errorf("line %q lists %q, which is not an option", line, entry)
			}
			seen++
		}
		if n := utf8.RuneCountInString(line); n > 78 {
			t.Errorf("line is %d runes wide: %q", n, line)
		}
	}

	if want := len(opts.Words) + len(opts.Foods) + len(opts.Moods); seen != want {
		t.Errorf("listed %d tags, want %d", seen, want)
	}
}

func TestWrapTags(t *testing.T) {
	tests := []struct {
		name  string
		tags  []string
		width int
		want  string
	}{
		{
			name:  "fits on one line",
			tags:  []string{"bold", "crisp"},
			width: 20,
			want:  "bold, crisp",
		},
		{
			name:  "breaks between tags",
			tags:  []string{"red meat", "grilled foods", "fish"},
			width: 20,
			want:  "red meat,\ngrilled foods, fish",
		},
		{
			name:  "long tag gets its own line",
			tags:  []string{"a", "a very long tag name", "b"},
			width: 10,
			want:  "a,\na very long tag name,\nb",
		},
		{
			name:  "empty",
			tags:  nil,
			width: 10,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapTags(tt.tags, tt.width); got != tt.want {
				t.Errorf("wrapTags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a long description", 10, "a long ..."},
		{"rosé rosé rosé", 7, "rosé..."},
		{"ééééééé", 5, "éé..."},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
		}
	}
}

func TestImportsTable(t *testing.T) {
	source := "wines.toml"
	imports := []database.Import{
		{ID: "abc", Source: &source, WineCount: 6, ImportedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	if err := TableTo(&buf, imports); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "wines.toml") || !strings.Contains(buf.String(), "Jan 02, 2026") {
		t.Errorf("unexpected imports table:\n%s", buf.String())
	}
}

func TestUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, 42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestOutputJSON(t *testing.T) {
	r := match.Recommend(catalog.Default().Items(), match.Selection{Words: match.NewTagSet("buttery")})

	var buf bytes.Buffer
	if err := OutputTo(&buf, "json", r); err != nil {
		t.Fatalf("OutputTo failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["state"] != "matched" {
		t.Errorf("state = %v", decoded["state"])
	}

	if err := OutputTo(&buf, "yaml", r); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "100%"},
		{200.0 / 3.0, "67%"},
		{100.0 / 3.0, "33%"},
		{50, "50%"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestFormatSelection(t *testing.T) {
	sel := match.Selection{
		Words: match.NewTagSet("bold", "rich"),
		Moods: match.NewTagSet("evening"),
	}

	want := "words: bold, rich; moods: evening"
	if got := FormatSelection(sel); got != want {
		t.Errorf("FormatSelection() = %q, want %q", got, want)
	}
	if got := FormatSelection(match.Selection{}); got != "nothing" {
		t.Errorf("FormatSelection(empty) = %q", got)
	}
}
