package validate

import "strings"

// Token reports whether the API token is usable: non-empty after trimming.
func Token(token string) bool {
	return strings.TrimSpace(token) != ""
}

// Query reports whether a search query is usable: non-empty after trimming.
func Query(query string) bool {
	return strings.TrimSpace(query) != ""
}

// MovieID reports whether id is a valid movie identifier.
func MovieID(id int64) bool {
	return id > 0
}
