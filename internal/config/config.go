// Package config loads papersmith settings from defaults, an optional config
// file, and PAPERSMITH_-prefixed environment variables, in increasing order
// of precedence. Command-line flags override all of it at the call site.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for a papersmith invocation.
type Config struct {
	// Model is the code-generation model identifier.
	Model string `mapstructure:"model"`

	// Language is the target implementation language.
	Language string `mapstructure:"language"`

	// OutputDir is where run artifacts (analysis JSON, generated code) land.
	OutputDir string `mapstructure:"output_dir"`

	// LayoutExtraction preserves physical layout during PDF text extraction.
	LayoutExtraction bool `mapstructure:"layout_extraction"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Model:            "gpt-4o",
		Language:         "Python",
		OutputDir:        "papersmith-out",
		LayoutExtraction: true,
	}
}

// Load resolves the effective configuration. cfgFile may be empty, in which
// case a config.yaml is looked up in the working directory and ~/.papersmith
// but is not required.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("model", defaults.Model)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("layout_extraction", defaults.LayoutExtraction)

	v.SetEnvPrefix("PAPERSMITH")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.papersmith")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
