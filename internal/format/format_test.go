package format_test

import (
	"strings"
	"testing"

	"kinonote/internal/format"
)

func TestValuesEmptyInput(t *testing.T) {
	modes := []format.Mode{
		format.ModeShort,
		format.ModeLongText,
		format.ModeURL,
		format.ModeLink,
		format.ModeLinkWithPath,
		format.ModeLinkIDWithPath,
	}
	for _, mode := range modes {
		got := format.Values(nil, mode, "people")
		if got == nil {
			t.Fatalf("mode %d: expected non-nil slice", mode)
		}
		if len(got) != 0 {
			t.Fatalf("mode %d: expected empty output, got %v", mode, got)
		}
	}
}

func TestValuesDropsBlanks(t *testing.T) {
	in := format.FromStrings([]string{"Drama", "", "   ", "Crime"})
	got := format.Values(in, format.ModeShort, "")
	if len(got) != 2 || got[0] != "Drama" || got[1] != "Crime" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestValuesCapped(t *testing.T) {
	in := make([]format.Entity, 0, format.MaxItems+20)
	for i := 0; i < format.MaxItems+20; i++ {
		in = append(in, format.Entity{Name: "x"})
	}
	got := format.Values(in, format.ModeShort, "")
	if len(got) != format.MaxItems {
		t.Fatalf("expected %d entries, got %d", format.MaxItems, len(got))
	}
}

func TestShortStripsColons(t *testing.T) {
	in := format.FromStrings([]string{" Mission: Impossible "})
	got := format.Values(in, format.ModeShort, "")
	if len(got) != 1 || got[0] != "Mission Impossible" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestLongTextQuotedAndCollapsed(t *testing.T) {
	in := format.FromStrings([]string{"Two men\n\nbond  over\tyears."})
	got := format.Values(in, format.ModeLongText, "")
	if len(got) != 1 {
		t.Fatalf("unexpected output: %v", got)
	}
	value := got[0]
	if !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		t.Fatalf("expected wrapping quotes, got %q", value)
	}
	if strings.Count(value, `"`) != 2 {
		t.Fatalf("expected exactly one pair of quotes, got %q", value)
	}
	if strings.ContainsAny(value, "\n\t") {
		t.Fatalf("expected collapsed whitespace, got %q", value)
	}
	if value != `"Two men bond over years."` {
		t.Fatalf("unexpected rendering: %q", value)
	}
}

func TestURLTrimmedUnquoted(t *testing.T) {
	in := format.FromStrings([]string{" https://example.com/poster.jpg "})
	got := format.Values(in, format.ModeURL, "")
	if len(got) != 1 || got[0] != "https://example.com/poster.jpg" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestLinkForms(t *testing.T) {
	cases := []struct {
		name   string
		entity format.Entity
		mode   format.Mode
		path   string
		want   string
	}{
		{"link", format.Entity{Name: "Doe"}, format.ModeLink, "", `"[[Doe]]"`},
		{"link ignores path", format.Entity{Name: "Doe"}, format.ModeLink, "actors", `"[[Doe]]"`},
		{"link with path", format.Entity{Name: "Doe"}, format.ModeLinkWithPath, "actors", `"[[actors/Doe]]"`},
		{"link with blank path", format.Entity{Name: "Doe"}, format.ModeLinkWithPath, "  ", `"[[Doe]]"`},
		{"id link full", format.Entity{Name: "Doe", ID: 7}, format.ModeLinkIDWithPath, "actors", `"[[actors/7|Doe]]"`},
		{"id link no path", format.Entity{Name: "Doe", ID: 7}, format.ModeLinkIDWithPath, "", `"[[7|Doe]]"`},
		{"id link no id", format.Entity{Name: "Doe"}, format.ModeLinkIDWithPath, "actors", `"[[Doe]]"`},
		{"id link sanitizes", format.Entity{Name: "Doe: Jr", ID: 7}, format.ModeLinkIDWithPath, "actors", `"[[actors/7|Doe Jr]]"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := format.Values([]format.Entity{tc.entity}, tc.mode, tc.path)
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("got %v, want [%s]", got, tc.want)
			}
		})
	}
}

func TestOne(t *testing.T) {
	if got := format.One("  ", format.ModeShort); got != "" {
		t.Fatalf("expected empty render for blank value, got %q", got)
	}
	if got := format.One("Shawshank: Redemption", format.ModeShort); got != "Shawshank Redemption" {
		t.Fatalf("unexpected render: %q", got)
	}
}
