// Package config defines the pocketbook configuration file and the table
// view that shows the effective settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppName names the config file, the env prefix and the data directory.
const AppName = "pocketbook"

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// Storage selects where the ledger is kept
	Storage Storage `toml:"storage" mapstructure:"storage"`
	// Colors overrides the dashboard palette
	Colors Colors `toml:"colors" mapstructure:"colors"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `toml:"-" mapstructure:"-"`
}

// Storage configures the persistence backend.
type Storage struct {
	// Backend is "sqlite" or "memory"
	Backend string `toml:"backend" mapstructure:"backend"`
	// Path is the sqlite database file
	Path string `toml:"path" mapstructure:"path"`
}

// Colors holds optional hex or ANSI color overrides. Empty means default.
type Colors struct {
	Primary       string `toml:"primary,omitempty" mapstructure:"primary"`
	Error         string `toml:"error,omitempty" mapstructure:"error"`
	Success       string `toml:"success,omitempty" mapstructure:"success"`
	Warning       string `toml:"warning,omitempty" mapstructure:"warning"`
	Muted         string `toml:"muted,omitempty" mapstructure:"muted"`
	Income        string `toml:"income,omitempty" mapstructure:"income"`
	Expense       string `toml:"expense,omitempty" mapstructure:"expense"`
	Border        string `toml:"border,omitempty" mapstructure:"border"`
	Background    string `toml:"background,omitempty" mapstructure:"background"`
	Text          string `toml:"text,omitempty" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text,omitempty" mapstructure:"secondary_text"`
}

// overrides returns the set colors as name, value pairs in file order.
func (c Colors) overrides() [][2]string {
	all := [][2]string{
		{"primary", c.Primary},
		{"error", c.Error},
		{"success", c.Success},
		{"warning", c.Warning},
		{"muted", c.Muted},
		{"income", c.Income},
		{"expense", c.Expense},
		{"border", c.Border},
		{"background", c.Background},
		{"text", c.Text},
		{"secondary_text", c.SecondaryText},
	}
	var set [][2]string
	for _, kv := range all {
		if kv[1] != "" {
			set = append(set, kv)
		}
	}
	return set
}

// DefaultDBPath is where the sqlite database lives when no path is set.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, AppName, AppName+".db")
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend: "sqlite",
			Path:    DefaultDBPath(),
		},
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for the sqlite backend"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be sqlite or memory, got %q", c.Storage.Backend))
	}
	return errors.Join(errs...)
}

// DefaultFilePath is where `config init` writes when no path is given.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("find user config directory: %w", err)
	}
	return filepath.Join(dir, AppName, AppName+".toml"), nil
}

// Write saves c as TOML at path. An existing file is only replaced when
// overwrite is set.
func Write(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Read loads a TOML config file on top of the defaults.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}
	c.ConfigFile = path
	return c, nil
}
