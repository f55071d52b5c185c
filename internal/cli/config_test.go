package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := loadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := writeConfig(t, "log_level: debug\nlog_format: json\njournal: false\ncolor: false\n")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, types.Config{LogLevel: "debug", LogFormat: "json", Journal: false, Color: false}, cfg)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := writeConfig(t, "log_level: debug\n")
		t.Setenv("LARDER_LOG_LEVEL", "error")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		dir := writeConfig(t, "log_format: xml\n")
		_, err := loadConfig(dir)
		assert.ErrorIs(t, err, types.ErrLogFormatUnknown)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		dir := writeConfig(t, "log_level: [unterminated\n")
		_, err := loadConfig(dir)
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(types.Config{LogLevel: "debug", LogFormat: types.LogFormatJSON}, &buf)
	logger.Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logger = newLogger(types.Config{LogLevel: "warn", LogFormat: types.LogFormatText}, &buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String())
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}
