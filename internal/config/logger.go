package config

import (
	"notekeeper/pkg/logger"
)

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTEKEEPER_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTEKEEPER_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment maps the mode string onto a logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}
