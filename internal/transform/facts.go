package transform

import (
	"regexp"
	"strings"

	"kinonote/internal/format"
	"kinonote/internal/kinopoisk"
)

// factLimit caps the number of facts kept per record.
const factLimit = 5

var (
	htmlTags = regexp.MustCompile(`<[^>]*>`)

	// residualEntities catches named or numeric entities outside the fixed
	// decode table below.
	residualEntities = regexp.MustCompile(`&#?[0-9a-zA-Z]+;`)

	htmlEntities = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
		"&nbsp;", " ",
		"&laquo;", "«",
		"&raquo;", "»",
		"&mdash;", "—",
		"&ndash;", "–",
		"&hellip;", "…",
	)
)

// CleanFacts drops spoilers and blank entries, caps the list at five, and
// renders each fact as quoted prose with HTML markup removed.
func CleanFacts(facts []kinopoisk.Fact) []string {
	kept := make([]format.Entity, 0, factLimit)
	for _, fact := range facts {
		if fact.Spoiler {
			continue
		}
		text := stripMarkup(fact.Value)
		if text == "" {
			continue
		}
		kept = append(kept, format.Entity{Name: text})
		if len(kept) == factLimit {
			break
		}
	}
	return format.Values(kept, format.ModeLongText, "")
}

func stripMarkup(value string) string {
	value = htmlTags.ReplaceAllString(value, "")
	value = htmlEntities.Replace(value)
	value = residualEntities.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}
