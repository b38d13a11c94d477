package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RestConfig aggregates the settings for the REST application.
type RestConfig struct {
	Port      string            `yaml:"port"`
	Logger    LoggerSettings    `yaml:"logger"`
	Database  DatabaseSettings  `yaml:"database"`
	Auth      AuthSettings      `yaml:"auth"`
	Streaming StreamingSettings `yaml:"streaming"`
}

// InitializeRestConfig reads and validates the yaml configuration at path.
func InitializeRestConfig(path string) (*RestConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every settings section.
func (c *RestConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Streaming.Validate(); err != nil {
		return err
	}
	return nil
}
