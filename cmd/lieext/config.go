package main

import "github.com/spf13/viper"

// Config holds the driver settings, populated from .lieext.yaml, LIEEXT_* env
// vars and flags.
type Config struct {
	// Mode overrides the mode stored in the algebra file when non-empty.
	Mode string `mapstructure:"mode"`
	// Format selects the output: text, yaml or toml.
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

const defaultMode = "graded"

// loadConfig reads configuration from viper, applying defaults for unset keys.
func loadConfig() (Config, error) {
	viper.SetDefault("mode", "")
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// resolveMode picks the effective mode: config, then file, then the default.
func (c Config) resolveMode(fileMode string) string {
	switch {
	case c.Mode != "":
		return c.Mode
	case fileMode != "":
		return fileMode
	default:
		return defaultMode
	}
}
