package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"kinonote/internal/apierr"
	"kinonote/internal/config"
	"kinonote/internal/history"
	"kinonote/internal/kinopoisk"
	"kinonote/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) newClient() (*kinopoisk.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return kinopoisk.New(
		cfg.Kinopoisk.APIToken,
		cfg.Kinopoisk.BaseURL,
		kinopoisk.WithLogger(c.ensureLogger()),
	), nil
}

func (c *commandContext) localizer() apierr.Localizer {
	cfg, _ := c.ensureConfig()
	language := ""
	if cfg != nil {
		language = cfg.Kinopoisk.Language
	}
	return apierr.NewLocalizer(language)
}

// userError logs the full diagnostic detail and returns the short
// localized message that reaches the end user.
func (c *commandContext) userError(operation string, err error) error {
	c.ensureLogger().Error("lookup failed",
		logging.String("operation", operation),
		logging.Error(err),
	)
	return errors.New(c.localizer().Message(err))
}

// openHistory returns the history store when enabled, nil otherwise.
// History failures never block the lookup itself.
func (c *commandContext) openHistory() *history.Store {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil || !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		c.ensureLogger().Warn("history unavailable", logging.Error(err))
		return nil
	}
	return store
}

// recordHistory stores one lookup entry. History is best-effort: a failed
// write is logged as a warning and the lookup result still reaches the user.
func (c *commandContext) recordHistory(ctx context.Context, entry history.Entry) {
	store := c.openHistory()
	if store == nil {
		return
	}
	defer store.Close()
	if _, err := store.Add(ctx, entry); err != nil {
		c.ensureLogger().Warn("history write failed",
			logging.String("kind", entry.Kind),
			logging.Error(err),
		)
	}
}

func (c *commandContext) rolePaths() (directors, actors, writers, producers string) {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return "", "", "", ""
	}
	return cfg.Folders.Directors, cfg.Folders.Actors, cfg.Folders.Writers, cfg.Folders.Producers
}

func parseMovieID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid movie id %q", arg)
	}
	return id, nil
}
