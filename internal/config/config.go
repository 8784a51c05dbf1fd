// Package config loads llist settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/phroun/linkedlist"
)

// Config holds all llist configuration.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// ArenaConfig configures the node arena.
type ArenaConfig struct {
	MaxNodes     int `yaml:"max_nodes"`     // 0 = unlimited
	DefaultValue int `yaml:"default_value"` // value of default nodes and empty Max/Min
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Sizes []int `yaml:"sizes"` // list lengths to benchmark
	Seed  int64 `yaml:"seed"`  // random seed for generated values
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			DefaultValue: linkedlist.DefaultValue,
		},
		Bench: BenchConfig{
			Sizes: []int{1000, 10000, 100000},
			Seed:  1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies LLIST_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LLIST_MAX_NODES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LLIST_MAX_NODES %q: %w", v, err)
		}
		c.Arena.MaxNodes = n
	}
	if v := os.Getenv("LLIST_DEFAULT_VALUE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LLIST_DEFAULT_VALUE %q: %w", v, err)
		}
		c.Arena.DefaultValue = n
	}
	if v := os.Getenv("LLIST_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	return nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Arena.MaxNodes < 0 {
		return fmt.Errorf("arena.max_nodes must be >= 0, got %d", c.Arena.MaxNodes)
	}
	for _, size := range c.Bench.Sizes {
		if size <= 0 {
			return fmt.Errorf("bench.sizes must be positive, got %d", size)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured logging level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid logging.level: %w", err)
	}
	return level, nil
}

// ArenaOptions converts the arena section into library options.
func (c *Config) ArenaOptions(logger *zap.Logger) linkedlist.Options {
	return linkedlist.Options{
		MaxNodes:     c.Arena.MaxNodes,
		DefaultValue: c.Arena.DefaultValue,
		Logger:       logger,
	}
}
