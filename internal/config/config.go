package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/freefire/internal/model"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "freefire.yaml"

type Config struct {
	Capacity       int           `yaml:"capacity"`
	NameMaxLen     int           `yaml:"name_max_len"`
	CategoryMaxLen int           `yaml:"category_max_len"`
	Theme          string        `yaml:"theme"` // classic, neon, mono
	Logging        LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	Output string `yaml:"output"` // stderr, stdout or a file path
}

func Default() Config {
	return Config{
		Capacity:       model.MaxComponents,
		NameMaxLen:     model.DefaultNameMaxLen,
		CategoryMaxLen: model.DefaultCategoryMaxLen,
		Theme:          "classic",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c *Config) Normalize() {
	d := Default()

	if c.Capacity <= 0 || c.Capacity > model.MaxComponents {
		c.Capacity = d.Capacity
	}
	if c.NameMaxLen <= 0 {
		c.NameMaxLen = d.NameMaxLen
	}
	if c.CategoryMaxLen <= 0 {
		c.CategoryMaxLen = d.CategoryMaxLen
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "classic", "neon", "mono":
		// ok
	default:
		c.Theme = d.Theme
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		c.Logging.Level = d.Logging.Level
	}
	switch c.Logging.Format {
	case "json", "console":
		// ok
	default:
		c.Logging.Format = d.Logging.Format
	}
	if strings.TrimSpace(c.Logging.Output) == "" {
		c.Logging.Output = d.Logging.Output
	}
}

// Limits returns the field bounds for component validation.
func (c Config) Limits() model.Limits {
	return model.Limits{NameMaxLen: c.NameMaxLen, CategoryMaxLen: c.CategoryMaxLen}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
