package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	out, err := runCLI(t, "", "init", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultConfig(), cfg)

	loaded, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), loaded)
}

func TestInitIsIdempotent(t *testing.T) {
	dir := writeConfig(t, "log_level: warn\n")

	out, err := runCLI(t, "", "init", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "log_level: warn\n", string(data))
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "larder v")
	assert.Contains(t, out, modulePath)
}
