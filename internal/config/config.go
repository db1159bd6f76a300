// Package config loads jsonfmt settings from an optional config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	"github.com/mouse-blink/jsonfmt/internal/logging"
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// FileName is the base name searched for in the working directory, with any
// extension viper understands (.yaml, .yml, .json, .toml, ...).
const FileName = ".jsonfmt"

// EnvPrefix prefixes environment overrides, e.g. JSONFMT_JOBS=4.
const EnvPrefix = "JSONFMT"

// DefaultGlob selects every JSON file below the working directory.
const DefaultGlob = "**/*.json"

// Config holds settings that apply when the corresponding flag is not given.
type Config struct {
	Globs        []string `json:"globs" mapstructure:"globs"`
	Exclude      []string `json:"exclude" mapstructure:"exclude"`
	IncludeAI    bool     `json:"include_ai" mapstructure:"include_ai"`
	IncludeDemos bool     `json:"include_demos" mapstructure:"include_demos"`
	Quiet        bool     `json:"quiet" mapstructure:"quiet"`
	Jobs         int      `json:"jobs" mapstructure:"jobs"`
	LogLevel     string   `json:"log_level" mapstructure:"log_level"`
	Plain        bool     `json:"plain" mapstructure:"plain"`

	// Source is the config file that was read, empty when none was found.
	Source string `json:"-" mapstructure:"-"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Globs:    []string{DefaultGlob},
		Exclude:  []string{},
		Jobs:     1,
		LogLevel: "info",
	}
}

// Load reads configuration for dir. When explicitPath is set that file must
// exist; otherwise a .jsonfmt file in dir is optional. Environment variables
// override file values. Every failure is a config error.
func Load(dir, explicitPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("globs", defaults.Globs)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("include_ai", defaults.IncludeAI)
	v.SetDefault("include_demos", defaults.IncludeDemos)
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("plain", defaults.Plain)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if explicitPath != "" {
		if !filepath.IsAbs(explicitPath) {
			explicitPath = filepath.Join(dir, explicitPath)
		}

		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, m.NewConfigError("cannot read config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, m.NewConfigError("cannot decode config", err)
	}

	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return m.NewConfigError(fmt.Sprintf("jobs must be zero or positive, got %d", c.Jobs), nil)
	}

	if _, ok := logging.LevelFromString(c.LogLevel); !ok {
		return m.NewConfigError(fmt.Sprintf("unknown log_level %q", c.LogLevel), nil)
	}

	for _, pattern := range c.Globs {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return m.NewConfigError(fmt.Sprintf("invalid glob pattern %q", pattern), doublestar.ErrBadPattern)
		}
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return m.NewConfigError(fmt.Sprintf("invalid exclude pattern %q", pattern), doublestar.ErrBadPattern)
		}
	}

	return nil
}
