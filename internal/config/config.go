// Package config loads and saves the expense-tracker configuration: a TOML
// file under the XDG config directory, with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mstephjuan/expense-tracker/internal/store"
)

// Config holds all expense-tracker configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir  string `toml:"data_dir,omitempty"`
	Backend  string `toml:"backend"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend:  store.BackendJSON,
			Currency: "$",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "expense-tracker")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file (defaults if absent), then applies overrides
// from a .env file in the working directory and from EXPENSE_TRACKER_*
// environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// A .env next to the invocation is optional.
	_ = godotenv.Load()

	if v := os.Getenv("EXPENSE_TRACKER_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("EXPENSE_TRACKER_BACKEND"); v != "" {
		cfg.General.Backend = v
	}
	if v := os.Getenv("EXPENSE_TRACKER_CURRENCY"); v != "" {
		cfg.General.Currency = v
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Validate checks that the configuration names a known storage backend.
func (c Config) Validate() error {
	switch c.General.Backend {
	case store.BackendJSON, store.BackendSQLite:
		return nil
	default:
		return fmt.Errorf("invalid backend %q: must be %q or %q",
			c.General.Backend, store.BackendJSON, store.BackendSQLite)
	}
}

// DataDir returns the resolved data directory: the configured one with a
// leading ~ expanded, or ~/.expense_tracker when unset.
func (c Config) DataDir() string {
	d := c.General.DataDir
	if d == "" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".expense_tracker")
	}
	if d == "~" || strings.HasPrefix(d, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(d, "~"), "/"))
	}
	return d
}
