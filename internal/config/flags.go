package config

import "flag"

// Flag names shared by RegisterFlags and applyFlags.
const (
	FlagData     = "data"
	FlagKey      = "key"
	FlagTheme    = "theme"
	FlagGroup    = "group"
	FlagLogLevel = "log-level"
)

// RegisterFlags adds the root flags to fs.
func RegisterFlags(fs *flag.FlagSet) {
	fs.String(FlagData, DefaultDataFile, "path of the JSON data file")
	fs.String(FlagKey, DefaultKey, "storage key the list is saved under")
	fs.String(FlagTheme, DefaultTheme, "color theme: classic, neon, mono")
	fs.Bool(FlagGroup, false, "group output by pending/done")
	fs.String(FlagLogLevel, DefaultLogLevel, "log level: debug, info, warn, error")
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case FlagData:
			cfg.DataFile = v
		case FlagKey:
			cfg.Key = v
		case FlagTheme:
			cfg.Theme = v
		case FlagGroup:
			cfg.Group = v == "true"
		case FlagLogLevel:
			cfg.LogLevel = v
		}
	})
}
