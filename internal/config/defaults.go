package config

const (
	defaultBaseURL     = "https://api.kinopoisk.dev"
	defaultLanguage    = "en"
	defaultOutputDir   = "~/notes/movies"
	defaultHistoryPath = "~/.local/share/kinonote/history.db"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Kinopoisk: Kinopoisk{
			BaseURL:  defaultBaseURL,
			Language: defaultLanguage,
		},
		Note: Note{
			OutputDir: defaultOutputDir,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
