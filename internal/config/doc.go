// Package config loads, normalizes, and validates the kinonote
// configuration file.
//
// Configuration is TOML, resolved from an explicit path, the XDG default
// (~/.config/kinonote/config.toml), or a project-local kinonote.toml. All
// path fields are expanded (including ~) before use.
package config
