package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ProjectFileName is looked up in the working directory.
const ProjectFileName = "todolist.toml"

// Load resolves the configuration. fs may carry flags registered with
// RegisterFlags; only flags the user actually set override lower layers.
func Load(fs *flag.FlagSet) (*Config, error) {
	cfg := Default()

	if p := userConfigFile(); p != "" {
		if err := loadFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}

	if err := loadFile(cfg, ProjectFileName); err != nil {
		return nil, fmt.Errorf("loading project config file %s: %w", ProjectFileName, err)
	}

	if err := loadFromEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	if fs != nil {
		applyFlags(cfg, fs)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadFile decodes path over cfg. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func userConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "todolist", "config.toml")
}

// loadFromEnv overrides cfg from TODO_* variables.
func loadFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("TODO_DATA_FILE"); ok && v != "" {
		cfg.DataFile = v
	}
	if v, ok := lookup("TODO_KEY"); ok && v != "" {
		cfg.Key = v
	}
	if v, ok := lookup("TODO_THEME"); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := lookup("TODO_GROUP"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_GROUP: %w", err)
		}
		cfg.Group = b
	}
	if v, ok := lookup("TODO_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("TODO_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	return nil
}
