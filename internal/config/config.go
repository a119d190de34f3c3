// Package config loads the boxflow command line configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/boxflow/pkg/debug"
)

// EnvPrefix is prepended to every environment variable viper consults, so
// viewport.width is read from BOXFLOW_VIEWPORT_WIDTH.
const EnvPrefix = "BOXFLOW"

// Output formats accepted by Config.Output.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the full configuration of the boxflow command.
type Config struct {
	Logger   debug.Config `mapstructure:"logger" yaml:"logger"`
	Viewport Viewport     `mapstructure:"viewport" yaml:"viewport"`
	Output   string       `mapstructure:"output" yaml:"output"`
	// Workers bounds how many documents are laid out at once. Zero means
	// no bound.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Viewport is the size given to the root item of each document.
type Viewport struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.console", false)

	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)

	v.SetDefault("output", OutputJSON)
	v.SetDefault("workers", 0)
}

// Bind points v at its configuration sources. An explicit file wins;
// otherwise boxflow.yaml is looked up in the working directory.
func Bind(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("boxflow")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration file bound to v, if there is one, and
// unmarshals the merged result. A missing default file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		// Only the default lookup may come up empty; an explicit file
		// must exist.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport must not be negative, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
