// Package config loads application settings from an optional YAML
// file with environment-variable overrides. Everything has a default;
// the tool runs with no config file present.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Window   WindowConfig  `mapstructure:"window"`
	Trace    TraceDefaults `mapstructure:"trace"`
}

type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// TraceDefaults seeds the auto-trace input fields.
type TraceDefaults struct {
	Red              int     `mapstructure:"red"`
	Green            int     `mapstructure:"green"`
	Blue             int     `mapstructure:"blue"`
	TolerancePercent float64 `mapstructure:"tolerance_percent"`
}

// Load reads configuration from the given file, or from
// carbontrace.yaml in the working directory when path is empty.
// A missing file is not an error; explicit paths must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("trace.red", 0)
	v.SetDefault("trace.green", 0)
	v.SetDefault("trace.blue", 0)
	v.SetDefault("trace.tolerance_percent", 10.0)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("carbontrace")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CARBONTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	return &cfg, nil
}
