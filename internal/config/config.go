// Package config loads and saves subtrack configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ibskk/subscription-tracker/internal/tracker"

	"github.com/BurntSushi/toml"
)

// Config holds all subtrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath       string `toml:"db_path,omitempty"`
	DueSoonDays  int    `toml:"due_soon_days"`
	UpcomingDays int    `toml:"upcoming_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DueSoonDays:  tracker.DueSoonThreshold,
			UpcomingDays: tracker.UpcomingWindow,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "subtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "subtrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDBPath returns the default location of the subscription database,
// in the XDG data directory.
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "subtrack", "subscriptions.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "subtrack", "subscriptions.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// EnsureDefault writes a default config file when none exists, so users
// have a file to edit. It reports whether a new file was created.
func EnsureDefault() (Config, bool, error) {
	if Exists() {
		cfg, err := Load()
		return cfg, false, err
	}

	cfg := DefaultConfig()
	if err := Save(cfg); err != nil {
		return cfg, false, err
	}
	return cfg, true, nil
}

// Normalize clamps hand-edited values back into usable ranges:
// non-positive day windows revert to their defaults, a blank theme to
// flexoki-dark.
func (c Config) Normalize() Config {
	if c.General.DueSoonDays <= 0 {
		c.General.DueSoonDays = tracker.DueSoonThreshold
	}
	if c.General.UpcomingDays <= 0 {
		c.General.UpcomingDays = tracker.UpcomingWindow
	}
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = "flexoki-dark"
	}
	return c
}

// DBPath resolves the database path: config override first, then default.
func DBPath(cfg Config) string {
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return DefaultDBPath()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
