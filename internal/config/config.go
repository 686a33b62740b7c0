package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goalpost/goalpost/internal/constants"
)

// Config holds application-wide configuration loaded from the YAML config
// file under the config directory.
type Config struct {
	// UserID is the identity-provider user identifier used as the
	// persistence key for the user record
	UserID string `yaml:"user_id"`
	// Storage is either a file path (JSON or SQLite) or a PostgreSQL
	// connection string
	Storage string `yaml:"storage"`
	// Timezone is an IANA timezone name, or "Local" for the system timezone
	Timezone string `yaml:"timezone"`
	// WaterGoal is the daily water intake target in glasses
	WaterGoal int `yaml:"water_goal"`
	Debug     bool `yaml:"debug"`
}

// DefaultDir returns the default config directory (~/.config/goalpost).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// Default returns a Config populated with default values rooted at dir.
func Default(dir string) Config {
	return Config{
		Storage:   filepath.Join(dir, "goalpost.db"),
		Timezone:  constants.DefaultTimezone,
		WaterGoal: constants.DefaultWaterGoal,
	}
}

// Load reads the config file at path. A missing file yields the defaults for
// its directory rather than an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(filepath.Dir(path)), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(filepath.Dir(path))
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Timezone == "" {
		cfg.Timezone = constants.DefaultTimezone
	}
	if cfg.WaterGoal <= 0 {
		cfg.WaterGoal = constants.DefaultWaterGoal
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
