package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".twitchctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/twitchctl/")
	}

	// Read config file. A missing file in the search path is fine: the
	// Twitch API accepts anonymous access, so every setting has a usable
	// default. An explicitly given path must exist.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Twitch defaults
	v.SetDefault("twitch.url", "https://api.twitch.tv/kraken")
	v.SetDefault("twitch.timeout", 30*time.Second)

	// Output defaults
	v.SetDefault("output.limit", 25)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", "auto")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Twitch.URL == "" {
		return fmt.Errorf("twitch.url is required")
	}

	if cfg.Output.Limit < 1 || cfg.Output.Limit > 100 {
		return fmt.Errorf("output.limit must be between 1 and 100, got %d", cfg.Output.Limit)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	// Validate color mode
	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[cfg.Logging.Color] {
		return fmt.Errorf("invalid logging color mode: %s", cfg.Logging.Color)
	}

	return nil
}
