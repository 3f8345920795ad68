package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli/model"
)

var previewReset bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactive layout preview",
	Long: `Open the workspace layout in an interactive terminal preview. Toggle parts,
move the side bar and panel, resize the side bar and enter zen mode with
single keys; press ? for the full list.

The layout is saved when the preview exits.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewReset, "reset", false, "start from the default layout")
}

func runPreview(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	opts := sessionOptions()
	opts.ResetLayout = previewReset
	s, err := a.OpenWorkbench(ctx, opts)
	if err != nil {
		return err
	}

	m := model.NewPreviewModel(ctx, a.Theme, s)
	_, runErr := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err := s.Close(ctx); err != nil && runErr == nil {
		return fmt.Errorf("save layout state: %w", err)
	}
	return runErr
}
