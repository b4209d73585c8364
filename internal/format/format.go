package format

import (
	"fmt"
	"strings"
)

// Mode selects how a collection is rendered.
type Mode int

const (
	// ModeShort renders bare sanitized values.
	ModeShort Mode = iota
	// ModeLongText collapses whitespace and wraps the value in double quotes.
	ModeLongText
	// ModeURL trims the value and applies no quoting or escaping.
	ModeURL
	// ModeLink renders "[[Name]]".
	ModeLink
	// ModeLinkWithPath renders "[[path/Name]]", falling back to ModeLink
	// when no path is configured.
	ModeLinkWithPath
	// ModeLinkIDWithPath renders "[[path/ID|Name]]", degrading to
	// "[[ID|Name]]" or "[[Name]]" as path or id are absent.
	ModeLinkIDWithPath
)

// MaxItems caps the number of rendered entries per collection.
const MaxItems = 50

// Entity is a named item optionally carrying a numeric identifier.
// Only ModeLinkIDWithPath consults the ID.
type Entity struct {
	Name string
	ID   int64
}

// FromStrings adapts a plain string collection to the entity form.
func FromStrings(values []string) []Entity {
	entities := make([]Entity, 0, len(values))
	for _, v := range values {
		entities = append(entities, Entity{Name: v})
	}
	return entities
}

// Values renders a collection according to mode. Blank entries are dropped,
// the result is capped at MaxItems, and the returned slice is never nil.
func Values(entities []Entity, mode Mode, path string) []string {
	out := make([]string, 0, len(entities))
	path = strings.TrimSpace(path)
	for _, e := range entities {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if len(out) >= MaxItems {
			break
		}
		out = append(out, renderOne(e, mode, path))
	}
	return out
}

// One renders a single value, or the empty string when it is blank.
func One(value string, mode Mode) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return renderOne(Entity{Name: value}, mode, "")
}

func renderOne(e Entity, mode Mode, path string) string {
	switch mode {
	case ModeLongText:
		return `"` + collapseWhitespace(e.Name) + `"`
	case ModeURL:
		return strings.TrimSpace(e.Name)
	case ModeLink:
		return quoteLink(Sanitize(e.Name))
	case ModeLinkWithPath:
		name := Sanitize(e.Name)
		if path == "" {
			return quoteLink(name)
		}
		return quoteLink(path + "/" + name)
	case ModeLinkIDWithPath:
		name := Sanitize(e.Name)
		switch {
		case e.ID > 0 && path != "":
			return quoteLink(fmt.Sprintf("%s/%d|%s", path, e.ID, name))
		case e.ID > 0:
			return quoteLink(fmt.Sprintf("%d|%s", e.ID, name))
		default:
			return quoteLink(name)
		}
	default:
		return Sanitize(e.Name)
	}
}

func quoteLink(target string) string {
	return `"[[` + target + `]]"`
}
