// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/agenda/internal/calendar"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds calendar behaviour settings.
type CalendarConfig struct {
	DefaultView  string `toml:"default_view"`   // "day", "week", "month"
	Locale       string `toml:"locale"`         // "en", "fr"
	Relocation   string `toml:"relocation"`     // "hours", "exact"
	DayStartHour int    `toml:"day_start_hour"` // first hour row scrolled into view
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			DefaultView:  string(calendar.ViewWeek),
			Locale:       "en",
			Relocation:   string(calendar.DurationWholeHours),
			DayStartHour: 8,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "agenda", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("AGENDA_DEFAULT_VIEW"); v != "" {
		cfg.Calendar.DefaultView = v
	}
	if v := os.Getenv("AGENDA_LOCALE"); v != "" {
		cfg.Calendar.Locale = v
	}
	if v := os.Getenv("AGENDA_RELOCATION"); v != "" {
		cfg.Calendar.Relocation = v
	}
	if v := os.Getenv("AGENDA_DAY_START_HOUR"); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AGENDA_DAY_START_HOUR must be a number, got %q", v)
		}
		cfg.Calendar.DayStartHour = hour
	}

	if v := os.Getenv("AGENDA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := calendar.ParseView(c.Calendar.DefaultView); err != nil {
		return fmt.Errorf("default_view: %w", err)
	}
	if _, err := calendar.FormatterFor(c.Calendar.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if _, err := calendar.ParseDurationPolicy(c.Calendar.Relocation); err != nil {
		return fmt.Errorf("relocation: %w", err)
	}
	if c.Calendar.DayStartHour < 0 || c.Calendar.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour must be between 0 and 23, got %d", c.Calendar.DayStartHour)
	}
	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	return nil
}

// View returns the configured default view. Call after Validate.
func (c *Config) View() calendar.View {
	v, err := calendar.ParseView(c.Calendar.DefaultView)
	if err != nil {
		return calendar.ViewWeek
	}
	return v
}

// Formatter returns the label formatter for the configured locale.
func (c *Config) Formatter() calendar.Formatter {
	f, err := calendar.FormatterFor(c.Calendar.Locale)
	if err != nil {
		return calendar.English
	}
	return f
}

// Policy returns the configured relocation duration policy.
func (c *Config) Policy() calendar.DurationPolicy {
	p, err := calendar.ParseDurationPolicy(c.Calendar.Relocation)
	if err != nil {
		return calendar.DurationWholeHours
	}
	return p
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
