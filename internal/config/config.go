// Package config provides configuration loading and validation for the
// statistical CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidPrecision = errors.New("output precision out of range")
	ErrInvalidBins      = errors.New("plot bins must not be negative")
	ErrInvalidTheme     = errors.New("invalid plot theme")
)

// Output formats accepted by the rendering commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Plot themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Default configuration values.
const (
	defaultFormat    = FormatTable
	defaultPrecision = 6
	defaultColor     = true
	defaultBins      = 0 // Zero selects Sturges' rule at plot time.
	defaultTheme     = ThemeDark

	// maxPrecision is the largest decimal count a float64 can make
	// meaningful.
	maxPrecision = 17
)

// Config holds all configuration for the statistical CLI.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Plot   PlotConfig   `mapstructure:"plot"`
}

// OutputConfig controls how computed statistics are rendered.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	Color     bool   `mapstructure:"color"`
}

// PlotConfig controls histogram plotting.
type PlotConfig struct {
	Theme string `mapstructure:"theme"`
	Bins  int    `mapstructure:"bins"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches the working directory and the user's config
// directory for statistical.yaml; a missing file there is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	// Set defaults.
	setDefaults(viperCfg)

	// Read config file.
	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("statistical")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viperCfg.AddConfigPath(filepath.Join(home, ".config", "statistical"))
		}
	}

	// Read environment variables.
	viperCfg.SetEnvPrefix("STATISTICAL")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Validate checks the configuration. Commands call it again after
// overlaying flag values on a loaded configuration.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Output defaults.
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.precision", defaultPrecision)
	viperCfg.SetDefault("output.color", defaultColor)

	// Plot defaults.
	viperCfg.SetDefault("plot.bins", defaultBins)
	viperCfg.SetDefault("plot.theme", defaultTheme)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if config.Output.Precision < 0 || config.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, config.Output.Precision)
	}

	if config.Plot.Bins < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBins, config.Plot.Bins)
	}

	switch config.Plot.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, config.Plot.Theme)
	}

	return nil
}
