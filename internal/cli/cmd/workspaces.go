package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli/styles"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces with a stored layout",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}

func runWorkspaces(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.States == nil {
		return errors.New("workspaces are only recorded in the database; drop --ephemeral")
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	records, err := a.States.Workspaces(a.Ctx())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flags.output != outputText {
		return encode(out, records, flags.output)
	}

	t := a.Theme
	if len(records) == 0 {
		fmt.Fprintln(out, t.Subtle.Render("No workspaces yet"))
		return nil
	}
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	for _, rec := range records {
		folder := t.Normal.Render(rec.Folder)
		if rec.ID == a.Workspace.ID {
			folder = t.Highlight.Render(rec.Folder) + " " + t.Badge(styles.BadgeAccent, "current")
		}
		fmt.Fprintf(out, "%s %s\n    %s %s\n",
			iconStyle.Render(styles.IconFolder), folder,
			t.Subtle.Render(rec.ID),
			t.Subtle.Render(rec.LastUsed.Local().Format(time.DateTime)),
		)
	}
	return nil
}
