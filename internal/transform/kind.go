package transform

// contentTypes maps the API's content-type codes to display strings.
// Unrecognized codes pass through unchanged.
var contentTypes = map[string]string{
	"animated-series": "Анимационный сериал",
	"anime":           "Аниме",
	"cartoon":         "Мультфильм",
	"movie":           "Фильм",
	"tv-series":       "Сериал",
}

// TranslateType returns the display string for a content-type code.
func TranslateType(code string) string {
	if translated, ok := contentTypes[code]; ok {
		return translated
	}
	return code
}
