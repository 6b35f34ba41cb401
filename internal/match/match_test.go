package match

import (
	"encoding/json"
	"math"
	"slices"
	"testing"

	"github.com/vijay-prabhu/winematch/internal/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "Bold Red", Words: []string{"bold", "rich"}, Foods: []string{"lamb"}, Moods: []string{"evening"}},
		{ID: 2, Name: "Crisp White", Words: []string{"crisp", "light"}, Foods: []string{"fish"}, Moods: []string{"casual"}},
		{ID: 3, Name: "Bold Lite", Words: []string{"bold", "light"}, Foods: []string{"fish", "lamb"}, Moods: []string{"evening"}},
		{ID: 4, Name: "Tagless"},
	}
}

func names(r Result) []string {
	var out []string
	for _, m := range r.Matches {
		out = append(out, m.Item.Name)
	}
	return out
}

func TestScore(t *testing.T) {
	item := &catalog.Item{
		Words: []string{"bold", "rich"},
		Foods: []string{"lamb", "chocolate"},
		Moods: []string{"evening"},
	}

	tests := []struct {
		name string
		sel  Selection
		want float64
	}{
		{
			name: "empty selection",
			sel:  Selection{},
			want: 0,
		},
		{
			name: "single word hit",
			sel:  Selection{Words: NewTagSet("bold")},
			want: 100,
		},
		{
			name: "one of two words",
			sel:  Selection{Words: NewTagSet("bold", "crisp")},
			want: 50,
		},
		{
			name: "two of three across categories",
			sel: Selection{
				Words: NewTagSet("bold"),
				Foods: NewTagSet("fish"),
				Moods: NewTagSet("evening"),
			},
			want: 200.0 / 3.0,
		},
		{
			name: "tag checked only in its own category",
			sel:  Selection{Moods: NewTagSet("bold")},
			want: 0,
		},
		{
			name: "same tag in two categories counts twice",
			sel:  Selection{Words: NewTagSet("bold"), Moods: NewTagSet("bold")},
			want: 50,
		},
		{
			name: "extra item tags are not penalized",
			sel:  Selection{Foods: NewTagSet("lamb")},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(item, tt.sel)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreTwoThirdsRounds(t *testing.T) {
	item := &catalog.Item{Words: []string{"bold"}, Moods: []string{"evening"}}
	sel := Selection{
		Words: NewTagSet("bold"),
		Foods: NewTagSet("fish"),
		Moods: NewTagSet("evening"),
	}

	got := Score(item, sel)
	if math.Abs(got-66.67) > 0.01 {
		t.Errorf("Score() = %v, want about 66.67", got)
	}
}

func TestScoreBounds(t *testing.T) {
	items := testItems()
	selections := []Selection{
		{Words: NewTagSet("bold")},
		{Words: NewTagSet("bold", "crisp", "light"), Foods: NewTagSet("fish")},
		{Foods: NewTagSet("lamb", "fish"), Moods: NewTagSet("evening", "casual")},
		{Moods: NewTagSet("nothing")},
	}

	for _, sel := range selections {
		for i := range items {
			s := Score(&items[i], sel)
			if s < 0 || s > 100 || math.IsNaN(s) {
				t.Errorf("Score(%s) = %v, out of range", items[i].Name, s)
			}

			full := true
			for _, c := range catalog.Categories {
				for _, tag := range sel.Set(c).Tags() {
					if !slices.Contains(items[i].Tags(c), tag) {
						full = false
					}
				}
			}
			if (s == 100) != full {
				t.Errorf("Score(%s) = %v, full match = %v", items[i].Name, s, full)
			}
		}
	}
}

func TestMatchRecordsMatchedTags(t *testing.T) {
	item := &testItems()[2]
	sel := Selection{
		Words: NewTagSet("bold", "crisp"),
		Foods: NewTagSet("lamb"),
	}

	got := Match(item, sel)

	if got.Item != item {
		t.Error("expected ScoredItem to reference the input item")
	}
	if math.Abs(got.Score-Score(item, sel)) > 1e-9 {
		t.Errorf("Match score %v disagrees with Score %v", got.Score, Score(item, sel))
	}
	if !got.Matched.Words.Equal(NewTagSet("bold")) {
		t.Errorf("matched words = %v", got.Matched.Words.Tags())
	}
	if !got.Matched.Foods.Equal(NewTagSet("lamb")) {
		t.Errorf("matched foods = %v", got.Matched.Foods.Tags())
	}
	if !got.Matched.Moods.IsEmpty() {
		t.Errorf("matched moods = %v, want empty", got.Matched.Moods.Tags())
	}
}

func TestRecommendIdle(t *testing.T) {
	r := Recommend(testItems(), Selection{})

	if r.State != StateIdle {
		t.Errorf("State = %v, want idle", r.State)
	}
	if len(r.Matches) != 0 {
		t.Errorf("expected no matches, got %d", len(r.Matches))
	}
	if r.State.Scored() {
		t.Error("idle state must not report Scored()")
	}
}

func TestRecommendNoMatches(t *testing.T) {
	r := Recommend(testItems(), Selection{Foods: NewTagSet("sushi")})

	if r.State != StateNoMatches {
		t.Errorf("State = %v, want no_matches", r.State)
	}
	if len(r.Matches) != 0 {
		t.Errorf("expected no matches, got %d", len(r.Matches))
	}
	if !r.State.Scored() {
		t.Error("no_matches state must report Scored()")
	}
}

func TestRecommendSingleWord(t *testing.T) {
	items := []catalog.Item{
		{ID: 1, Name: "With", Words: []string{"bold", "rich"}},
		{ID: 2, Name: "Without", Words: []string{"crisp"}},
	}

	r := Recommend(items, Selection{Words: NewTagSet("bold")})

	if r.State != StateMatched {
		t.Fatalf("State = %v, want matched", r.State)
	}
	if len(r.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(r.Matches))
	}
	if r.Matches[0].Item.Name != "With" || r.Matches[0].Score != 100 {
		t.Errorf("unexpected match: %s %.2f", r.Matches[0].Item.Name, r.Matches[0].Score)
	}
}

func TestRecommendOrderAndStability(t *testing.T) {
	items := testItems()
	sel := Selection{
		Words: NewTagSet("bold", "light"),
		Foods: NewTagSet("fish"),
	}

	r := Recommend(items, sel)

	// Bold Lite: 3/3, Bold Red: 1/3, Crisp White: 2/3
	want := []string{"Bold Lite", "Crisp White", "Bold Red"}
	if got := names(r); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	for i := 1; i < len(r.Matches); i++ {
		if r.Matches[i-1].Score < r.Matches[i].Score {
			t.Errorf("matches not sorted at %d: %v < %v", i, r.Matches[i-1].Score, r.Matches[i].Score)
		}
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	items := testItems()

	// Bold Red and Bold Lite both score 100
	r := Recommend(items, Selection{Words: NewTagSet("bold")})
	want := []string{"Bold Red", "Bold Lite"}
	if got := names(r); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	// Reversing the catalog reverses the tie
	slices.Reverse(items)
	r = Recommend(items, Selection{Words: NewTagSet("bold")})
	want = []string{"Bold Lite", "Bold Red"}
	if got := names(r); !slices.Equal(got, want) {
		t.Errorf("reversed order = %v, want %v", got, want)
	}
}

func TestRecommendExcludesZeroScores(t *testing.T) {
	items := testItems()
	sel := Selection{Moods: NewTagSet("casual")}

	r := Recommend(items, sel)

	for _, m := range r.Matches {
		if m.Score == 0 {
			t.Errorf("%s scored 0 but was returned", m.Item.Name)
		}
	}
	if got := names(r); !slices.Equal(got, []string{"Crisp White"}) {
		t.Errorf("matches = %v", got)
	}
}

func TestRecommendDoesNotModifyItems(t *testing.T) {
	items := testItems()
	before := testItems()

	Recommend(items, Selection{Words: NewTagSet("bold"), Foods: NewTagSet("fish")})

	for i := range items {
		if items[i].Name != before[i].Name || !slices.Equal(items[i].Words, before[i].Words) {
			t.Errorf("item %d modified", i)
		}
	}
}

func TestToggleIdempotence(t *testing.T) {
	sets := []TagSet{
		{},
		NewTagSet("bold"),
		NewTagSet("bold", "crisp", "light"),
	}

	for _, s := range sets {
		for _, tag := range []string{"bold", "zesty"} {
			once := Toggle(tag, s)
			twice := Toggle(tag, once)
			if !twice.Equal(s) {
				t.Errorf("Toggle(%q) twice on %v = %v", tag, s.Tags(), twice.Tags())
			}
			if once.Contains(tag) == s.Contains(tag) {
				t.Errorf("Toggle(%q) on %v did not flip membership", tag, s.Tags())
			}
		}
	}
}

func TestToggleCopyOnWrite(t *testing.T) {
	s := NewTagSet("bold", "crisp")

	removed := s.Toggle("bold")
	added := s.Toggle("rich")

	if !slices.Equal(s.Tags(), []string{"bold", "crisp"}) {
		t.Errorf("receiver modified: %v", s.Tags())
	}
	if !slices.Equal(removed.Tags(), []string{"crisp"}) {
		t.Errorf("removed = %v", removed.Tags())
	}
	if !slices.Equal(added.Tags(), []string{"bold", "crisp", "rich"}) {
		t.Errorf("added = %v", added.Tags())
	}
}

func TestSelectionToggle(t *testing.T) {
	var sel Selection

	sel = sel.Toggle(catalog.CategoryWords, "bold")
	sel = sel.Toggle(catalog.CategoryMoods, "bold")

	if sel.Total() != 2 {
		t.Errorf("Total() = %d, want 2", sel.Total())
	}
	if !sel.Foods.IsEmpty() {
		t.Error("foods should be untouched")
	}

	sel = sel.Toggle(catalog.CategoryWords, "bold")
	if sel.Words.Contains("bold") || !sel.Moods.Contains("bold") {
		t.Errorf("toggle leaked across categories: %+v", sel)
	}

	sel = sel.Toggle(catalog.CategoryMoods, "bold")
	if !sel.IsEmpty() {
		t.Errorf("expected empty selection, got %+v", sel)
	}
}

func TestStateText(t *testing.T) {
	for _, s := range []State{StateIdle, StateNoMatches, StateMatched} {
		text, _ := s.MarshalText()
		var back State
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("state %v decoded as %v", s, back)
		}
	}

	var s State
	if err := s.UnmarshalText([]byte("busy")); err == nil {
		t.Error("expected error for unknown state")
	}
}

func TestResultJSON(t *testing.T) {
	r := Recommend(testItems(), Selection{Words: NewTagSet("crisp")})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded struct {
		State     string `json:"state"`
		Selection struct {
			Words []string `json:"words"`
			Foods []string `json:"foods"`
		} `json:"selection"`
		Matches []struct {
			Wine  catalog.Item `json:"wine"`
			Score float64      `json:"match_score"`
		} `json:"matches"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.State != "matched" {
		t.Errorf("state = %q", decoded.State)
	}
	if !slices.Equal(decoded.Selection.Words, []string{"crisp"}) {
		t.Errorf("words = %v", decoded.Selection.Words)
	}
	if decoded.Selection.Foods == nil {
		t.Error("empty tag sets must encode as [] not null")
	}
	if len(decoded.Matches) != 1 || decoded.Matches[0].Wine.ID != 2 {
		t.Errorf("matches = %+v", decoded.Matches)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "perfect match"},
		{200.0 / 3.0, "strong match"},
		{50, "partial match"},
		{10, "weak match"},
		{0, "no match"},
	}

	for _, tt := range tests {
		if got := Describe(tt.score); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
