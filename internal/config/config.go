// Package config loads generator configuration from environment variables
// and an optional config file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the coin table generator.
type Config struct {
	// SourceURL is where the SLIP-0044 markdown document lives.
	SourceURL string `mapstructure:"source_url"`

	// OutputPath is the generated file's destination, overwritten on
	// every run.
	OutputPath string `mapstructure:"output_path"`

	// PackageName is the package clause of the generated file.
	PackageName string `mapstructure:"package_name"`

	// HTTPTimeoutSeconds bounds the whole fetch, retries included.
	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds"`

	// OverridesPath optionally points at a YAML file of extra
	// irregular-name overrides for the normalizer.
	OverridesPath string `mapstructure:"overrides_path"`
}

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
//
// Expected environment variables (all optional, defaults cover a normal run):
//   - SLIP0044_URL
//   - COINGEN_OUTPUT
//   - COINGEN_PACKAGE
//   - COINGEN_HTTP_TIMEOUT
//   - COINGEN_OVERRIDES
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("source_url", "https://raw.githubusercontent.com/satoshilabs/slips/master/slip-0044.md")
	v.SetDefault("output_path", "slip0044/coins_gen.go")
	v.SetDefault("package_name", "slip0044")
	v.SetDefault("http_timeout_seconds", 30)

	// Optionally read from config file if it exists
	v.SetConfigName("coingen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.coingen")
	_ = v.ReadInConfig()

	v.BindEnv("source_url", "SLIP0044_URL")
	v.BindEnv("output_path", "COINGEN_OUTPUT")
	v.BindEnv("package_name", "COINGEN_PACKAGE")
	v.BindEnv("http_timeout_seconds", "COINGEN_HTTP_TIMEOUT")
	v.BindEnv("overrides_path", "COINGEN_OVERRIDES")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("http_timeout_seconds must be positive, got %d", config.HTTPTimeoutSeconds)
	}

	return config, nil
}
