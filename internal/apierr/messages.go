package apierr

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Russian,
}

var messages = map[language.Tag]map[error]string{
	language.English: {
		ErrInvalidInput: "Check the API token and your search input.",
		ErrEmptyResult:  "Nothing found for your search.",
		ErrUnauthorized: "The API token was rejected. Verify it in the config.",
		ErrRateLimited:  "Too many requests. Wait a moment and try again.",
		ErrNotFound:     "The requested title does not exist.",
		ErrServer:       "The metadata service is having trouble. Try again later.",
		ErrNetwork:      "Could not reach the metadata service. Check your connection.",
		ErrUnknown:      "Something went wrong. See the log for details.",
	},
	language.Russian: {
		ErrInvalidInput: "Проверьте API-токен и поисковый запрос.",
		ErrEmptyResult:  "По вашему запросу ничего не найдено.",
		ErrUnauthorized: "API-токен отклонён. Проверьте его в конфигурации.",
		ErrRateLimited:  "Слишком много запросов. Подождите и повторите попытку.",
		ErrNotFound:     "Запрошенный фильм не существует.",
		ErrServer:       "Сервис метаданных недоступен. Повторите попытку позже.",
		ErrNetwork:      "Не удалось связаться с сервисом метаданных. Проверьте соединение.",
		ErrUnknown:      "Что-то пошло не так. Подробности в логе.",
	},
}

// Localizer resolves user-facing messages in a fixed language.
type Localizer struct {
	tag language.Tag
}

// NewLocalizer picks the closest supported language for preferred
// (a BCP 47 tag such as "en" or "ru-RU"). Unknown or empty input falls
// back to English.
func NewLocalizer(preferred string) Localizer {
	matcher := language.NewMatcher(supported)
	_, index := language.MatchStrings(matcher, preferred)
	return Localizer{tag: supported[index]}
}

// Message returns the short user-facing text for a translated error.
func (l Localizer) Message(err error) string {
	table, ok := messages[l.tag]
	if !ok {
		table = messages[language.English]
	}
	return table[Category(err)]
}
