// Package config handles optional configuration loading from YAML files.
// Without a file, the defaults reproduce the documented snapshot behavior.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "200ms", "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// Config holds all snapshot configuration.
type Config struct {
	Collection CollectionConfig `yaml:"collection"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CollectionConfig holds sampling settings.
type CollectionConfig struct {
	TopProcesses      int      `yaml:"top_processes"`
	CPUSampleInterval Duration `yaml:"cpu_sample_interval"`
	Disk              bool     `yaml:"disk"`
	// IncludeAllFilesystems counts pseudo and network filesystems toward disk totals.
	IncludeAllFilesystems bool `yaml:"include_all_filesystems"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Collection: CollectionConfig{
			TopProcesses:      5,
			CPUSampleInterval: Duration{200 * time.Millisecond},
			Disk:              true,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Collection.TopProcesses < 0 {
		return fmt.Errorf("top_processes must be non-negative (got: %d)", c.Collection.TopProcesses)
	}
	if c.Collection.CPUSampleInterval.Duration < 0 {
		return fmt.Errorf("cpu_sample_interval must be non-negative (got: %s)", c.Collection.CPUSampleInterval.Duration)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
