package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/cli/styles"
	"github.com/bnema/shellgrid/internal/domain/build"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and layout engine information",
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipAppInit: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Short())
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd, versionCmd)
}

// About is the machine-readable form of the about screen.
type About struct {
	build.Info `yaml:",inline"`
	Parts      int    `json:"parts" yaml:"parts"`
	StateKeys  int    `json:"stateKeys" yaml:"stateKeys"`
	ConfigFile string `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Database   string `json:"database" yaml:"database"`
}

func aboutOf(a *cli.App) About {
	info := About{
		Info:      a.BuildInfo,
		Parts:     len(entity.AllParts()),
		StateKeys: len(layoutstate.Keys()),
		Database:  "(memory)",
	}
	if a.Manager != nil {
		info.ConfigFile = a.Manager.ConfigFile()
	}
	if a.States != nil {
		info.Database = a.DatabasePath()
	}
	return info
}

func runAbout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	info := aboutOf(a)
	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), info, flags.output)
	}
	facts := []styles.AboutFact{
		{Icon: styles.IconColumns, Label: "Parts", Value: strconv.Itoa(info.Parts)},
		{Icon: styles.IconTree, Label: "State keys", Value: strconv.Itoa(info.StateKeys)},
		{Icon: styles.IconDatabase, Label: "Database", Value: info.Database},
	}
	if info.ConfigFile != "" {
		facts = append(facts, styles.AboutFact{Icon: styles.IconConfig, Label: "Config", Value: info.ConfigFile})
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(a.Theme).Render(info.Info, facts))
	return nil
}
