package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"thoreinstein.com/vcsroot/pkg/findroot"
)

// Config represents the application configuration
type Config struct {
	Search SearchConfig `mapstructure:"search" toml:"search"`
	Update UpdateConfig `mapstructure:"update" toml:"update"`
}

// SearchConfig holds project root search configuration
type SearchConfig struct {
	Mode            string `mapstructure:"mode" toml:"mode"`                           // "closest" or "farthest"
	SpanFileSystems bool   `mapstructure:"span_file_systems" toml:"span_file_systems"` // Keep walking across mount points
}

// UpdateConfig holds self-update configuration
type UpdateConfig struct {
	Repository string `mapstructure:"repository" toml:"repository"` // "owner/name" release source override
	Prerelease bool   `mapstructure:"prerelease" toml:"prerelease"` // Consider pre-release versions
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Mode:            findroot.Closest.String(),
			SpanFileSystems: false,
		},
		Update: UpdateConfig{
			Repository: "",
			Prerelease: false,
		},
	}
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// ValidateMode validates that a search mode is supported.
// Empty is allowed, will use default.
func ValidateMode(mode string) error {
	if mode == "" {
		return nil
	}
	_, err := findroot.ParseMode(mode)
	return err
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if err := ValidateMode(c.Search.Mode); err != nil {
		return errors.Wrap(err, "search.mode")
	}
	return nil
}

// SearchMode returns the configured mode as a findroot.Mode. Validate must
// have accepted the configuration first.
func (c *Config) SearchMode() findroot.Mode {
	if c.Search.Mode == "" {
		return findroot.Closest
	}
	mode, err := findroot.ParseMode(c.Search.Mode)
	if err != nil {
		return findroot.Closest
	}
	return mode
}

// setDefaults sets default configuration values
func setDefaults() {
	def := Default()

	// Search defaults
	viper.SetDefault("search.mode", def.Search.Mode)
	viper.SetDefault("search.span_file_systems", def.Search.SpanFileSystems)

	// Update defaults (empty repository means the built-in release source)
	viper.SetDefault("update.repository", def.Update.Repository)
	viper.SetDefault("update.prerelease", def.Update.Prerelease)
}
