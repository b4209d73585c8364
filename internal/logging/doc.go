// Package logging assembles the structured slog loggers used across the
// tool.
//
// It owns level and format plumbing for the console and JSON handlers and
// exposes small attr helpers so components log with a uniform shape. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
