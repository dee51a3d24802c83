// Package config loads the CLI configuration from a YAML or JSON file with
// TIMETABLE_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: TIMETABLE_LOG__LEVEL=debug.
const EnvPrefix = "TIMETABLE_"

// Config is the CLI configuration.
type Config struct {
	// Groups restricts the output to these group identifiers.
	Groups []int `json:"groups"`
	// Format is the output format: "json" or "csv".
	Format string `json:"format"`
	// Output is the destination file; empty means stdout.
	Output string    `json:"output"`
	Log    LogConfig `json:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Pretty switches to human readable console output.
	Pretty bool `json:"pretty"`
}

// Load reads the configuration like Read and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads path, when not empty, then applies environment overrides and
// defaults. The result is not validated, so callers can override values
// (command line flags) before calling Validate.
func Read(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return &cfg, nil
}

// envValue maps TIMETABLE_LOG__LEVEL to log.level. Group lists are comma
// separated.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if key == "groups" {
		return key, strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		})
	}
	return key, value
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
	c.Format = strings.ToLower(c.Format)
	c.Log.SetDefaults()
}

// Validate checks group identifiers and the output format.
func (c Config) Validate() error {
	for _, g := range c.Groups {
		if g < 100 || g > 9999 {
			return fmt.Errorf("invalid group %d: want a 3 or 4 digit number", g)
		}
	}
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return c.Log.Validate()
}

// SetDefaults applies sane defaults.
func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	c.Level = strings.ToLower(c.Level)
}

// Validate checks the log level.
func (c LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
