package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete navwire configuration
type Config struct {
	Version       int    `json:"version" mapstructure:"version"`
	WorkspaceRoot string `json:"workspaceRoot" mapstructure:"workspaceRoot"`

	Manifest ManifestConfig `json:"manifest" mapstructure:"manifest"`
	Batch    BatchConfig    `json:"batch" mapstructure:"batch"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// ManifestConfig contains document manifest configuration
type ManifestConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// BatchConfig contains batch processing limits
type BatchConfig struct {
	// MaxResults caps how many search results a single verify run accepts
	MaxResults int `json:"maxResults" mapstructure:"maxResults"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		WorkspaceRoot: ".",
		Manifest: ManifestConfig{
			Path: "DOCUMENTS.toml",
		},
		Batch: BatchConfig{
			MaxResults: 10000,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .navwire/config.json
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("workspaceRoot", ".")
	v.SetDefault("manifest.path", "DOCUMENTS.toml")
	v.SetDefault("batch.maxResults", 10000)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".navwire"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .navwire/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".navwire")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Batch.MaxResults < 0 {
		return &ConfigError{Field: "batch.maxResults", Message: "must be non-negative"}
	}
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be 'human' or 'json'"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
