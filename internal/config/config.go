// Package config provides configuration management for agentsync using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/agentsync/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "agentsync"

// Conflict policy names accepted in the config file. They mirror the link
// reconciler's policies.
const (
	PolicyBackup = "backup"
	PolicySkip   = "skip"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// SyncHome overrides the canonical store location. Empty means the
	// default (~/.agent-sync, or AGENT_SYNC_HOME when set).
	SyncHome string `mapstructure:"sync_home" yaml:"sync_home"`

	// ConflictPolicy controls what happens when a real file occupies a
	// link path: "backup" (default) or "skip".
	ConflictPolicy string `mapstructure:"conflict_policy" yaml:"conflict_policy"`

	// Targets lists the downstream platforms to sync. Defaults to all.
	Targets []string `mapstructure:"targets" yaml:"targets"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("AGENT_SYNC")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("conflict_policy", PolicyBackup)
	viper.SetDefault("targets", paths.Platforms())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ResolveSyncHome returns the effective sync home: the config override when
// set, otherwise the default derived from the user's home directory.
func (c *Config) ResolveSyncHome(home string) string {
	if c != nil && c.SyncHome != "" {
		return c.SyncHome
	}
	return paths.SyncHome(home)
}
