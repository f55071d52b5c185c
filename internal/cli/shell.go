package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/inventory"
	"github.com/mesh-intelligence/larder/internal/journal"
	"github.com/mesh-intelligence/larder/pkg/types"
)

const shellHelp = `Commands:
  add <name> <quantity>   add a new item or increase an existing one
  edit <name> [quantity]  set an item's quantity (prompts when omitted)
  delete <name>           remove an item
  freeze                  deep-freeze the inventory and every item
  freeze-entry <name>     freeze a single item
  unfreeze                replace a frozen inventory with an unlocked copy
  seal                    forbid adding and removing items
  prevent-extensions      forbid adding items
  list                    show the inventory
  describe <name>         show an item's descriptor
  state                   show the inventory's lock state
  history [n]             show the last n notifications
  help                    show this help
  quit                    leave the shell`

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive inventory session",
		Long: `Shell reads commands from standard input, one per line, against a
fresh in-memory inventory. The inventory is discarded when the shell exits.

Example:
  larder shell
  printf 'add widget 4\nseal\ndelete widget\n' | larder shell`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	v := newView(cmd.OutOrStdout(), cfg.Color, flags.jsonMode)
	notifiers := types.Notifiers{v}

	var j *journal.Journal
	if cfg.Journal {
		j, err = journal.Open(journal.MemoryDSN)
		if err != nil {
			return err
		}
		defer j.Close()
		notifiers = append(notifiers, j)
	}

	mgr := inventory.New(
		inventory.WithNotifier(notifiers),
		inventory.WithLogger(newLogger(cfg, cmd.ErrOrStderr())),
	)
	return newShell(mgr, j, cmd.InOrStdin(), v).run()
}

// shell is the line-oriented presentation adapter over a Manager.
type shell struct {
	mgr     *inventory.Manager
	journal *journal.Journal // nil when the journal is disabled
	in      *bufio.Scanner
	view    *view
}

func newShell(mgr *inventory.Manager, j *journal.Journal, in io.Reader, v *view) *shell {
	return &shell{mgr: mgr, journal: j, in: bufio.NewScanner(in), view: v}
}

// run executes commands until quit or end of input.
func (s *shell) run() error {
	for {
		s.prompt("larder> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		quit, err := s.exec(strings.Fields(s.in.Text()))
		if err != nil || quit {
			return err
		}
	}
}

func (s *shell) prompt(p string) {
	if !s.view.jsonMode {
		fmt.Fprint(s.view.out, p)
	}
}

// exec runs one command. Operation failures are already reported through
// the notifier; the returned error is reserved for output failures.
func (s *shell) exec(fields []string) (quit bool, err error) {
	if len(fields) == 0 {
		return false, nil
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.view.line("%s", shellHelp)
	case "list":
		s.mgr.LogContents()
		return false, s.render()
	case "state":
		return false, s.view.state(stateReport{
			CollectionID: s.mgr.ID(),
			State:        s.mgr.State(),
			DeepFrozen:   s.mgr.DeepFrozen(),
			Items:        s.mgr.Collection().Len(),
		})
	case "describe":
		if len(args) != 1 {
			return false, s.usage("describe <name>")
		}
		d, ok := s.mgr.DescribeEntry(args[0])
		if !ok {
			return false, nil
		}
		s.mgr.LogDescriptors(args[0])
		return false, s.view.descriptor(d)
	case "history":
		return false, s.history(args)
	}

	out, err := s.mutate(name, args)
	if err != nil || out == nil {
		return false, err
	}
	return false, s.render()
}

// mutate runs a mutating command. A nil outcome means nothing changed and
// the inventory is not re-rendered.
func (s *shell) mutate(name string, args []string) (out *types.Outcome, err error) {
	switch name {
	case "add":
		if len(args) != 2 {
			return nil, s.usage("add <name> <quantity>")
		}
		out, _ = s.mgr.SubmitAdd(args[0], args[1])
	case "edit":
		switch len(args) {
		case 1:
			return s.promptEdit(args[0])
		case 2:
			out, _ = s.mgr.SubmitEdit(args[0], args[1])
		default:
			return nil, s.usage("edit <name> [quantity]")
		}
	case "delete":
		if len(args) != 1 {
			return nil, s.usage("delete <name>")
		}
		out, _ = s.mgr.DeleteItem(args[0])
	case "freeze-entry":
		if len(args) != 1 {
			return nil, s.usage("freeze-entry <name>")
		}
		out, _ = s.mgr.FreezeEntry(args[0])
	case "freeze":
		out = s.mgr.Freeze()
	case "unfreeze":
		out = s.mgr.Unfreeze()
	case "seal":
		out = s.mgr.Seal()
	case "prevent-extensions":
		out = s.mgr.PreventExtensions()
	default:
		return nil, s.view.line("unknown command %q (type help)", name)
	}
	return out, nil
}

// promptEdit asks for a new quantity, showing the current one. An empty
// answer, "cancel", or end of input abandons the edit silently.
func (s *shell) promptEdit(key string) (*types.Outcome, error) {
	e, found := s.mgr.Collection().Get(key)
	if !found {
		// Reports the missing key without touching the collection.
		out, _ := s.mgr.EditQuantity(key, 0)
		return out, nil
	}

	s.prompt(fmt.Sprintf("Enter new quantity for %s [%d]: ", key, e.Quantity()))
	if !s.in.Scan() {
		return nil, s.in.Err()
	}
	answer := strings.TrimSpace(s.in.Text())
	if answer == "" || answer == "cancel" {
		return nil, nil
	}
	out, _ := s.mgr.SubmitEdit(key, answer)
	return out, nil
}

func (s *shell) history(args []string) error {
	if s.journal == nil {
		return s.view.line("history is disabled (journal: false)")
	}
	limit := 10
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return s.usage("history [n]")
		}
		limit = n
	} else if len(args) > 1 {
		return s.usage("history [n]")
	}
	ns, err := s.journal.Recent(limit)
	if err != nil {
		return s.view.line("history: %s", err)
	}
	return s.view.history(ns)
}

func (s *shell) render() error {
	return s.view.items(s.mgr.State(), s.mgr.Snapshot())
}

func (s *shell) usage(form string) error {
	return s.view.line("usage: %s", form)
}
