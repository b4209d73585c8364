package transform_test

import (
	"strings"
	"testing"

	"kinonote/internal/kinopoisk"
	"kinonote/internal/transform"
)

func TestCleanFactsFiltersAndCaps(t *testing.T) {
	facts := []kinopoisk.Fact{
		{Value: "Shot in 62 days."},
		{Value: "The ending differs.", Spoiler: true},
		{Value: "   "},
		{Value: "Fact two"},
		{Value: "Fact three"},
		{Value: "Fact four"},
		{Value: "Fact five"},
		{Value: "Fact six"},
	}
	got := transform.CleanFacts(facts)
	if len(got) != 5 {
		t.Fatalf("expected cap of 5, got %d: %v", len(got), got)
	}
	if got[0] != `"Shot in 62 days."` {
		t.Fatalf("unexpected first fact: %q", got[0])
	}
	for _, fact := range got {
		if strings.Contains(fact, "ending differs") {
			t.Fatalf("spoiler leaked into output: %q", fact)
		}
	}
}

func TestCleanFactsStripsMarkup(t *testing.T) {
	facts := []kinopoisk.Fact{
		{Value: `<a href="/name/123/">Frank Darabont</a> cameos &mdash; twice &laquo;here&raquo;&uml;`},
	}
	got := transform.CleanFacts(facts)
	if len(got) != 1 {
		t.Fatalf("unexpected output: %v", got)
	}
	want := `"Frank Darabont cameos — twice «here»"`
	if got[0] != want {
		t.Fatalf("got %q, want %q", got[0], want)
	}
}

func TestCleanFactsMarkupOnlyBecomesEmpty(t *testing.T) {
	facts := []kinopoisk.Fact{{Value: "<b></b>&nbsp;"}}
	if got := transform.CleanFacts(facts); len(got) != 0 {
		t.Fatalf("expected markup-only fact to be dropped, got %v", got)
	}
}

func TestCleanFactsEmptyInput(t *testing.T) {
	got := transform.CleanFacts(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
