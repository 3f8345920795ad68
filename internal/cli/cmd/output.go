package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/cli/model"
	"github.com/bnema/shellgrid/internal/cli/styles"
)

// Size of the layout map printed by non-interactive commands.
const (
	mapCols = 72
	mapRows = 18
)

// sessionOptions builds session options from the root flags.
func sessionOptions() cli.SessionOptions {
	return cli.SessionOptions{Width: flags.width, Height: flags.height}
}

// withSession opens the workbench of the current workspace, runs fn and
// closes the session so the layout state is saved. It returns the layout
// as fn left it.
func withSession(ctx context.Context, a *cli.App, opts cli.SessionOptions, fn func(ctx context.Context, s *cli.Session) error) (cli.Snapshot, error) {
	s, err := a.OpenWorkbench(ctx, opts)
	if err != nil {
		return cli.Snapshot{}, err
	}

	if err := fn(ctx, s); err != nil {
		s.Discard()
		return cli.Snapshot{}, err
	}
	snap := s.Snapshot()
	if err := s.Close(ctx); err != nil {
		return snap, fmt.Errorf("save layout state: %w", err)
	}
	return snap, nil
}

// peekSession restores the layout and returns it without saving anything.
func peekSession(ctx context.Context, a *cli.App, opts cli.SessionOptions) (cli.Snapshot, error) {
	s, err := a.OpenWorkbench(ctx, opts)
	if err != nil {
		return cli.Snapshot{}, err
	}
	defer s.Discard()
	return s.Snapshot(), nil
}

// validateOutput rejects unknown --output values before any work is done.
func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output %q (use: text, json, yaml)", format)
	}
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, v any, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case outputJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case outputYAML:
		data, err = yaml.MarshalWithOptions(v, yaml.Indent(2))
	default:
		return fmt.Errorf("unsupported output %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// snapshotDetail selects what the text rendering of a snapshot includes.
type snapshotDetail struct {
	table bool
	tree  bool
}

// printSnapshot renders a snapshot in the --output format.
func printSnapshot(cmd *cobra.Command, theme *styles.Theme, snap cli.Snapshot, detail snapshotDetail) error {
	out := cmd.OutOrStdout()
	if flags.output != outputText {
		return encode(out, snap, flags.output)
	}
	fmt.Fprintln(out, renderSnapshot(theme, snap, detail))
	return nil
}

func renderSnapshot(theme *styles.Theme, snap cli.Snapshot, detail snapshotDetail) string {
	r := styles.NewLayoutRenderer(theme)
	sections := []string{
		r.RenderSummary(model.Summary(snap)),
		r.RenderMap(model.MapBoxes(snap), snap.Window.Width, snap.Window.Height, mapCols, mapRows),
	}
	if detail.table {
		sections = append(sections, r.RenderPartsTable(model.PartRows(snap)))
	}
	if detail.tree {
		sections = append(sections, r.RenderGridTree(snap.Grid))
	}
	return strings.Join(sections, "\n\n")
}

// printDone prints a one-line confirmation followed by the layout map.
func printDone(cmd *cobra.Command, theme *styles.Theme, msg string, snap cli.Snapshot) error {
	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), snap, flags.output)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n\n", theme.SuccessStyle.Render(styles.IconCheck), msg)
	return printSnapshot(cmd, theme, snap, snapshotDetail{})
}
