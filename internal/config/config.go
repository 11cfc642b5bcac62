// Package config handles configuration file loading and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"arrow-randomizer/internal/logger"
)

// Default configuration values.
const (
	DefaultDurationMS   = 4000
	DefaultWindowWidth  = 360
	DefaultWindowHeight = 640
	DefaultLogLevel     = "info"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvConfigPath = "ARROW_CONFIG"
	EnvLogLevel   = "LOG_LEVEL"
	EnvDebug      = "DEBUG"
	EnvJSONLogs   = "ARROW_JSON_LOGS"
	EnvDurationMS = "ARROW_DURATION_MS"
)

// Config represents the application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
}

// DisplayConfig controls the arrow cycle.
type DisplayConfig struct {
	DurationMS int `toml:"duration_ms"` // How long an arrow stays on screen
}

// WindowConfig sizes the window on desktop drivers. Mobile drivers ignore it.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error, off
	JSON  bool   `toml:"json"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			DurationMS: DefaultDurationMS,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			JSON:  false,
		},
	}
}

// ConfigPath returns the default path to the config file.
func ConfigPath() string {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configHome, "arrow-randomizer", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment overrides onto c. lookup is normally
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	} else if v, ok := lookup(EnvDebug); ok && v == "1" {
		c.Logging.Level = "debug"
	}

	if v, ok := lookup(EnvJSONLogs); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
		c.Logging.JSON = enabled
	}

	if v, ok := lookup(EnvDurationMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDurationMS, err)
		}
		c.Display.DurationMS = ms
	}

	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.Display.DurationMS <= 0 {
		return fmt.Errorf("display.duration_ms must be positive, got %d", c.Display.DurationMS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Duration returns how long an arrow stays on screen.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Display.DurationMS) * time.Millisecond
}

// Load resolves the config path from the environment, reads the file,
// applies overrides and validates the result.
func Load(lookup func(string) (string, bool)) (*Config, error) {
	path, _ := lookup(EnvConfigPath)

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
