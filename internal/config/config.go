// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Registry database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/siteup/registry.db")

	// Storage defaults
	v.SetDefault("storage.data_dir", "/var/lib/siteup")
	v.SetDefault("storage.sites_dir", "/var/lib/siteup/sites")
	v.SetDefault("storage.exports_dir", "/var/lib/siteup/exports")

	// Update-run logging defaults
	v.SetDefault("logging.dir", ".") // log files land in the working directory

	// Bundle defaults
	v.SetDefault("bundles.dir", "static") // relative to each site directory
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
