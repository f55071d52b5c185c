package types

import (
	"log/slog"
	"strings"
)

// Log formats accepted in Config.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the settings read from config.yaml.
type Config struct {
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`
	Journal   bool   `yaml:"journal" mapstructure:"journal"`
	Color     bool   `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns the settings used when config.yaml is absent.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatText,
		Journal:   true,
		Color:     true,
	}
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return ErrLogLevelUnknown
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrLogFormatUnknown
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
