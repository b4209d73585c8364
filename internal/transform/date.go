package transform

import (
	"strings"
	"time"
)

const (
	minDateYear = 1800
	maxDateYear = 2100
)

var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

// NormalizeDate renders a raw API date string as a YYYY-MM-DD calendar
// date interpreted in UTC. Unparseable input or a year outside
// [1800, 2100] yields an empty string.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		parsed = parsed.UTC()
		if year := parsed.Year(); year < minDateYear || year > maxDateYear {
			return ""
		}
		return parsed.Format("2006-01-02")
	}
	return ""
}
