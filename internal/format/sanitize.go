package format

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Sanitize strips characters that break downstream frontmatter parsing
// (the colon) and trims surrounding whitespace.
func Sanitize(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, ":", ""))
}

// collapseWhitespace folds every whitespace run, newlines included, into a
// single space and trims the result.
func collapseWhitespace(value string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(value, " "))
}
