package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Kinopoisk.APIToken = strings.TrimSpace(c.Kinopoisk.APIToken)
	c.Kinopoisk.BaseURL = strings.TrimSpace(c.Kinopoisk.BaseURL)
	if c.Kinopoisk.BaseURL == "" {
		c.Kinopoisk.BaseURL = defaultBaseURL
	}
	c.Kinopoisk.Language = strings.TrimSpace(c.Kinopoisk.Language)
	if c.Kinopoisk.Language == "" {
		c.Kinopoisk.Language = defaultLanguage
	}

	c.Folders.Directors = strings.Trim(strings.TrimSpace(c.Folders.Directors), "/")
	c.Folders.Actors = strings.Trim(strings.TrimSpace(c.Folders.Actors), "/")
	c.Folders.Writers = strings.Trim(strings.TrimSpace(c.Folders.Writers), "/")
	c.Folders.Producers = strings.Trim(strings.TrimSpace(c.Folders.Producers), "/")

	var err error
	if c.Note.TemplatePath != "" {
		if c.Note.TemplatePath, err = ExpandPath(c.Note.TemplatePath); err != nil {
			return fmt.Errorf("note.template_path: %w", err)
		}
	}
	if c.Note.OutputDir, err = ExpandPath(c.Note.OutputDir); err != nil {
		return fmt.Errorf("note.output_dir: %w", err)
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = ExpandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}
