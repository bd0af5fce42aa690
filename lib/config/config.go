// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the console's configuration.
type Config struct {
	// Server configures the remote complaint service.
	Server ServerConfig `yaml:"server"`

	// Console configures presentation parameters.
	Console ConsoleConfig `yaml:"console"`

	// Log configures structured log output.
	Log LogConfig `yaml:"log"`
}

// ServerConfig configures the remote complaint service connection.
type ServerConfig struct {
	// URL is the base URL of the complaint service.
	// Default: http://127.0.0.1:8000
	URL string `yaml:"url"`

	// RequestTimeout bounds each HTTP request to the service.
	// Default: 15s
	RequestTimeout string `yaml:"request_timeout"`
}

// ConsoleConfig configures presentation parameters. The defaults
// match the district office's established operator workflow; they are
// configurable mainly for small terminals.
type ConsoleConfig struct {
	// PageSize is the number of complaint rows per list page.
	// Default: 8
	PageSize int `yaml:"page_size"`

	// PageGroupSize is the number of page buttons per pagination
	// window. Default: 10
	PageGroupSize int `yaml:"page_group_size"`

	// RecentRows is the number of rows in the dashboard's recent
	// complaints table. Default: 7
	RecentRows int `yaml:"recent_rows"`
}

// LogConfig configures structured log output.
type LogConfig struct {
	// File is the path for the JSON log file. Empty disables file
	// logging; log records still reach the console's status bar.
	File string `yaml:"file"`

	// Level is the minimum level for the log file: debug, info,
	// warn, or error. Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. These defaults are a
// working setup for a local complaint service; the config file and
// flags override them.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://127.0.0.1:8000",
			RequestTimeout: "15s",
		},
		Console: ConsoleConfig{
			PageSize:      8,
			PageGroupSize: 10,
			RecentRows:    7,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the MINWON_CONFIG environment
// variable. When the variable is unset, the defaults are returned
// unchanged; an explicitly named file that cannot be read is an
// error.
func Load() (*Config, error) {
	configPath := os.Getenv("MINWON_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults. The config file is the single source of truth;
// environment variables do not override individual values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the console cannot
// run with.
func (cfg *Config) Validate() error {
	if cfg.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	if _, err := cfg.Timeout(); err != nil {
		return err
	}
	if cfg.Console.PageSize < 1 {
		return fmt.Errorf("console.page_size must be at least 1, got %d", cfg.Console.PageSize)
	}
	if cfg.Console.PageGroupSize < 1 {
		return fmt.Errorf("console.page_group_size must be at least 1, got %d", cfg.Console.PageGroupSize)
	}
	if cfg.Console.RecentRows < 1 {
		return fmt.Errorf("console.recent_rows must be at least 1, got %d", cfg.Console.RecentRows)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", cfg.Log.Level)
	}
	return nil
}

// LogLevel maps the configured log level string to its slog level.
// Unknown values (already rejected by Validate) fall back to info.
func (cfg *Config) LogLevel() slog.Level {
	switch cfg.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Timeout parses the server request timeout.
func (cfg *Config) Timeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(cfg.Server.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("server.request_timeout: %v", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("server.request_timeout must be positive, got %s", timeout)
	}
	return timeout, nil
}
