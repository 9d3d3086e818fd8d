package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type config struct {
	LogLevel  string `mapstructure:"log_level" default:"info"`
	LogFormat string `mapstructure:"log_format" default:"text"`

	// Free-form output tuning, decoded into outputConfig by the root
	// command before any subcommand runs.
	Output map[string]interface{} `mapstructure:"output"`
}

type outputConfig struct {
	Borders      bool `mapstructure:"borders" default:"false"`
	MaxNameWidth int  `mapstructure:"max_name_width" default:"48"`
}

func loadConfig(path string) (*config, error) {
	config := &config{}

	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if path == "" {
		return config, nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from '%s': %w", path, err)
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func (c *config) outputConfig() (*outputConfig, error) {
	output := &outputConfig{}

	if err := defaults.Set(output); err != nil {
		return nil, fmt.Errorf("failed to set output defaults: %w", err)
	}

	if err := mapstructure.Decode(c.Output, output); err != nil {
		return nil, fmt.Errorf("failed to decode output options: %w", err)
	}

	return output, nil
}

func (c *config) slogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unrecognised log level '%s'", c.LogLevel)
	}
}
