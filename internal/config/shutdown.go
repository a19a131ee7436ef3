package config

import (
	"time"
)

// ShutdownConfig holds the graceful-shutdown settings.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"NOTEKEEPER_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout returns the timeout as a time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
