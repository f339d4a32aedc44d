package config

import "time"

// Config holds the application configuration.
type Config struct {
	ListenAddress   string        `mapstructure:"listen_address"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}
