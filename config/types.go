package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Twitch  TwitchConfig  `mapstructure:"twitch"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TwitchConfig holds Twitch API connection details
type TwitchConfig struct {
	URL      string        `mapstructure:"url"`
	ClientID string        `mapstructure:"client_id"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// FilterConfig contains named filter presets keyed by preset name
type FilterConfig map[string]string

// OutputConfig contains listing output settings
type OutputConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}
