package transform

import (
	"regexp"
	"strings"
)

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ImageLink renders a raw artwork location as a markdown embed. A blank
// value yields an empty slice; a value without a URL scheme is treated as
// a local path and embedded by reference, anything else by URL.
func ImageLink(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if !schemePrefix.MatchString(raw) {
		return []string{"![[" + raw + "]]"}
	}
	return []string{"![](" + raw + ")"}
}
