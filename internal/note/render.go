package note

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"kinonote/internal/transform"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9]*)\s*\}\}`)

// Render substitutes every {{field}} placeholder in templateText with the
// record's value: slices joined with ", ", scalars via their natural
// string form. Placeholders naming absent fields are left untouched.
func Render(templateText string, record transform.FlatRecord) string {
	return placeholder.ReplaceAllStringFunc(templateText, func(match string) string {
		field := placeholder.FindStringSubmatch(match)[1]
		value, ok := record[field]
		if !ok {
			return match
		}
		return renderValue(value)
	})
}

func renderValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Writer persists rendered notes under a fixed output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a note writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write renders the record and stores it under a name derived from the
// record's title and year. It returns the written path.
func (w *Writer) Write(templateText string, record transform.FlatRecord) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(w.outputDir, FileName(record))
	if err := os.WriteFile(path, []byte(Render(templateText, record)), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

// FileName derives a filesystem-safe markdown filename from the record.
func FileName(record transform.FlatRecord) string {
	title := firstNonEmpty(
		record.Strings(transform.FieldName),
		record.Strings(transform.FieldAlternativeName),
	)
	if title == "" {
		title = "Untitled"
	}
	if year, ok := record[transform.FieldYear].(int); ok && year > 0 {
		title = fmt.Sprintf("%s (%d)", title, year)
	}
	return sanitizeFileName(title) + ".md"
}

func firstNonEmpty(groups ...[]string) string {
	for _, group := range groups {
		for _, value := range group {
			if strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

// fileNameReplacer replaces filesystem-unsafe characters with safe
// alternatives; slashes and colons become dashes, the rest are removed.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

func sanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(strings.TrimSpace(name)))
}
