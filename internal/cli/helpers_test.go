package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args, feeding stdin, and returns
// standard output. A fresh config directory is used unless args set one.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LARDER_LOG_LEVEL", "")
	t.Setenv("LARDER_LOG_FORMAT", "")
	t.Setenv("LARDER_JOURNAL", "")
	t.Setenv("LARDER_COLOR", "")

	hasConfigDir := false
	for _, a := range args {
		if strings.HasPrefix(a, "--config-dir") {
			hasConfigDir = true
		}
	}
	if !hasConfigDir {
		args = append(args, "--config-dir", t.TempDir())
	}

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeConfig writes a config.yaml with body into a new temp directory.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}
