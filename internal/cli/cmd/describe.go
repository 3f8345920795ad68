package cmd

import (
	"github.com/spf13/cobra"
)

var (
	describeReset bool
	describeFiles []string
)

var describeCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"show"},
	Short:   "Show the workbench layout of a workspace",
	Long: `Restore the workspace layout and print where every part ends up: a summary
of positions and modes, a map of the window, the part boxes and the grid tree.

Use --output json or yaml for a machine-readable snapshot.`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&describeReset, "reset", false, "ignore stored layout state")
	describeCmd.Flags().StringSliceVar(&describeFiles, "open", nil, "files to open in the editor area")
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	opts := sessionOptions()
	opts.ResetLayout = describeReset
	opts.Files = describeFiles

	snap, err := peekSession(a.Ctx(), a, opts)
	if err != nil {
		return err
	}
	return printSnapshot(cmd, a.Theme, snap, snapshotDetail{table: true, tree: true})
}
