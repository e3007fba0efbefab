// Package config loads settings for the todo CLI.
//
// Sources, lowest to highest precedence:
//  1. Defaults
//  2. User config file ($XDG_CONFIG_HOME/todolist/config.toml)
//  3. Project config file (todolist.toml in the working directory)
//  4. Environment variables (TODO_*)
//  5. CLI flags
package config

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/store"
)

// Config holds every tunable of the CLI.
type Config struct {
	DataFile  string           `toml:"data_file"`
	Key       string           `toml:"key"`
	Theme     string           `toml:"theme"`
	Group     bool             `toml:"group"`
	LogLevel  string           `toml:"log_level"`
	LogFormat string           `toml:"log_format"`
	Seed      []store.SeedItem `toml:"seed"`
}

const (
	DefaultDataFile  = "todos.json"
	DefaultKey       = "todos"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

var (
	themes     = []string{"classic", "neon", "mono"}
	logFormats = []string{"text", "json", "logfmt"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile:  DefaultDataFile,
		Key:       DefaultKey,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate rejects settings the rest of the program cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	if !oneOf(c.Theme, themes) {
		return fmt.Errorf("theme must be one of %s, got %q", strings.Join(themes, ", "), c.Theme)
	}
	if !oneOf(c.LogFormat, logFormats) {
		return fmt.Errorf("log_format must be one of %s, got %q", strings.Join(logFormats, ", "), c.LogFormat)
	}
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("seed[%d].label must not be empty", i)
		}
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
