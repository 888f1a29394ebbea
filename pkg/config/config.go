// Package config loads the optional curl2strm dotfile configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/curl2strm/curl2strm/pkg/policy"
	"github.com/curl2strm/curl2strm/pkg/render"
)

// DefaultFileName is the config file looked up in the home directory
const DefaultFileName = ".curl2strm.yaml"

// Config represents the curl2strm configuration
type Config struct {
	// AllowHeaders overrides the default header allow-list when non-empty
	AllowHeaders []string `yaml:"allow_headers"`

	// ScriptFormat is the default companion script dialect: sh, bat, ps1
	ScriptFormat string `yaml:"script_format"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// NoColor disables ANSI styling of log output
	NoColor bool `yaml:"no_color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		AllowHeaders: policy.DefaultAllowed,
		LogLevel:     "info",
	}
}

// DefaultPath returns the location of the user's config file, or the
// empty string when no home directory can be resolved
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads the config at path, filling unset fields from defaults.
// A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = policy.DefaultAllowed
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := render.ParseDialect(c.ScriptFormat); err != nil {
		return err
	}
	if _, err := parseLevelName(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// parseLevelName only checks the name; the CLI maps it to a logger level
func parseLevelName(s string) (string, error) {
	switch s {
	case "", "debug", "info", "warn", "warning", "error":
		return s, nil
	default:
		return "", fmt.Errorf("unknown log level: %q", s)
	}
}

// Policy builds the header policy from the configured allow-list
func (c *Config) Policy() *policy.Policy {
	return policy.New(c.AllowHeaders)
}
