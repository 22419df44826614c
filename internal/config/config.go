// Package config provides configuration loading for isisprop.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelEnv overrides the configured log level when set.
const LevelEnv = "ISIS_LOG_LEVEL"

// LevelOff disables logging.
const LevelOff = "off"

// Config represents the application configuration loaded from YAML
type Config struct {
	Log struct {
		// Level is one of debug, info, warn, error or off
		Level string `yaml:"level"`

		// Format is text or json
		Format string `yaml:"format"`
	} `yaml:"log"`

	Output struct {
		// Labeled appends the type name to every printed value
		Labeled bool `yaml:"labeled"`
	} `yaml:"output"`

	Processing struct {
		// Workers limits how many property files are loaded concurrently
		Workers int `yaml:"workers"`
	} `yaml:"processing"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	cfg.Output.Labeled = true
	cfg.Processing.Workers = runtime.NumCPU()

	return cfg
}

// LoadConfig loads configuration from a YAML file and applies the
// environment override. A missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("error reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	if level := os.Getenv(LevelEnv); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Processing.Workers < 1 {
		cfg.Processing.Workers = 1
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// NewLogger builds the logger described by the configuration, nil when
// logging is off.
func (cfg *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	if strings.EqualFold(cfg.Log.Level, LevelOff) {
		return nil, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}
}
