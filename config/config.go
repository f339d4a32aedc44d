package config

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "BODYLOGGER"

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the optional config file and the environment, and initializes
// the global cfg variable. It ensures that the configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = readConfig(viper.New(), configFile)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

func readConfig(v *viper.Viper, configFile string) (*Config, error) {
	v.SetDefault("listen_address", "0.0.0.0:8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional; defaults and environment cover a bare start.
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	// Validation
	if configuration.ListenAddress == "" {
		return nil, errors.New("listen_address is required")
	}
	if _, err := logrus.ParseLevel(configuration.LogLevel); err != nil {
		return nil, errors.Wrap(err, "invalid log_level")
	}
	if configuration.ShutdownTimeout <= 0 {
		return nil, errors.New("shutdown_timeout must be positive")
	}

	return &configuration, nil
}
