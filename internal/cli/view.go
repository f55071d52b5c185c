package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// view renders inventory state and notifications for the shell, either as
// styled text or as one JSON document per line.
type view struct {
	out      io.Writer
	jsonMode bool

	header lipgloss.Style
	key    lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
}

func newView(out io.Writer, color, jsonMode bool) *view {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &view{
		out:      out,
		jsonMode: jsonMode,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")),
		key:      r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		ok:       r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		fail:     r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	}
}

// Notify shows a notification. It makes the view a types.Notifier.
func (v *view) Notify(n types.Notification) error {
	if v.jsonMode {
		return v.json(n)
	}
	if n.Failed {
		_, err := fmt.Fprintln(v.out, v.fail.Render("✗ "+n.Message))
		return err
	}
	_, err := fmt.Fprintln(v.out, v.ok.Render("✓ "+n.Message))
	return err
}

// items renders the inventory rows with their edit and delete affordances.
func (v *view) items(state types.MutabilityState, items []types.Item) error {
	if v.jsonMode {
		return v.json(items)
	}

	var b strings.Builder
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	fmt.Fprintf(&b, "%s\n", v.header.Render(fmt.Sprintf("Inventory (%s) %d %s", state, len(items), noun)))
	if len(items) == 0 {
		fmt.Fprintf(&b, "  %s\n", v.muted.Render("(empty)"))
	}

	width := 0
	for _, it := range items {
		width = max(width, lipgloss.Width(it.Key))
	}
	for _, it := range items {
		label := v.key.Width(width + 1).Render(it.Key + ":")
		actions := v.muted.Render(fmt.Sprintf("[edit %s] [delete %s]", it.Key, it.Key))
		fmt.Fprintf(&b, "  %s %d  %s\n", label, it.Quantity, actions)
	}
	_, err := io.WriteString(v.out, b.String())
	return err
}

func (v *view) descriptor(d types.Descriptor) error {
	if v.jsonMode {
		return v.json(d)
	}
	_, err := fmt.Fprintf(v.out, "%s quantity=%d writable=%t enumerable=%t configurable=%t state=%s\n",
		v.key.Render(d.Key), d.Quantity, d.Writable, d.Enumerable, d.Configurable, d.State)
	return err
}

// stateReport is the JSON shape of the state command.
type stateReport struct {
	CollectionID string                `json:"collection_id"`
	State        types.MutabilityState `json:"state"`
	DeepFrozen   bool                  `json:"deep_frozen"`
	Items        int                   `json:"items"`
}

func (v *view) state(s stateReport) error {
	if v.jsonMode {
		return v.json(s)
	}
	_, err := fmt.Fprintf(v.out, "%s %s deep-frozen=%t items=%d %s\n",
		v.header.Render("state:"), s.State, s.DeepFrozen, s.Items, v.muted.Render(s.CollectionID))
	return err
}

func (v *view) history(ns []types.Notification) error {
	if v.jsonMode {
		return v.json(ns)
	}
	if len(ns) == 0 {
		_, err := fmt.Fprintln(v.out, v.muted.Render("(no history)"))
		return err
	}
	for _, n := range ns {
		status := v.ok.Render("ok  ")
		if n.Failed {
			status = v.fail.Render("fail")
		}
		if _, err := fmt.Fprintf(v.out, "%s %s %-18s %s\n",
			v.muted.Render(n.Time.Format("15:04:05")), status, n.Op, n.Message); err != nil {
			return err
		}
	}
	return nil
}

// line writes a plain informational line. In JSON mode it is wrapped as
// {"info": "..."} so output stays one document per line.
func (v *view) line(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if v.jsonMode {
		return v.json(map[string]string{"info": msg})
	}
	_, err := fmt.Fprintln(v.out, msg)
	return err
}

func (v *view) json(doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(v.out, string(data))
	return err
}
