package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/larder/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "LARDER"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyJournal   = "journal"
	cfgKeyColor     = "color"
)

// loadConfig reads config.yaml from configDir using Viper. Environment
// variables (LARDER_LOG_LEVEL and friends) override the file. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetDefault(cfgKeyJournal, def.Journal)
	v.SetDefault(cfgKeyColor, def.Color)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger described by cfg, writing to w.
func newLogger(cfg types.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == types.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
