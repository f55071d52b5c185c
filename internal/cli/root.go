// Package cli implements the larder command-line interface: an interactive
// shell over one in-memory inventory plus init and version commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "larder" command with global flags and
// all subcommands registered. Run without a subcommand it starts the shell.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "larder",
		Short: "An in-memory inventory with extensible, sealed, and frozen locks",
		Long: `Larder keeps a session-scoped inventory of named quantities.
The inventory can be made non-extensible, sealed, or deep-frozen; each lock
forbids more changes than the last. Unfreeze replaces a frozen inventory
with an unlocked copy.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runShell,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newShellCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return dir, nil
}
