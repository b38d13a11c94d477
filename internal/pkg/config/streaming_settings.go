package config

import "fmt"

// StreamingSettings holds the media endpoint configuration for live
// streams.
type StreamingSettings struct {
	BaseURL string `yaml:"base_url"`
}

// Validate checks the streaming settings.
func (s *StreamingSettings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("streaming base_url is required")
	}
	return nil
}
