// Package cmd provides Cobra CLI commands for shellgrid.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/domain/build"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	workspace string
	ephemeral bool
	configDir string
	dbPath    string
	verbose   bool
	width     float64
	height    float64
	output    string
}

var (
	app       *cli.App
	buildInfo build.Info
	flags     rootFlags
	rootCmd   = &cobra.Command{
		Use:   "shellgrid",
		Short: "A workbench layout engine for the terminal",
		Long: `Shellgrid lays out an IDE-style workbench: title bar, activity bar, side bar,
editor area, panel, auxiliary bar and status bar, arranged on a resizable grid.

Layout state is remembered per workspace folder. Use the subcommands to
inspect the layout, toggle parts, move the side bar and panel, enter zen
mode, or open the interactive preview.

Examples:
  shellgrid describe                 # Show the layout of the current folder
  shellgrid part hide sidebar        # Hide the side bar
  shellgrid panel position right     # Move the panel to the right
  shellgrid preview                  # Interactive layout preview`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}
			if cmd.Annotations[skipAppInit] != "" {
				return nil
			}

			var err error
			app, err = cli.NewApp(appOptions())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.workspace, "workspace", "w", "", "workspace folder (default: current directory)")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep settings and layout state in memory")
	pf.StringVar(&flags.configDir, "config-dir", "", "config directory (default: XDG config home)")
	pf.StringVar(&flags.dbPath, "db", "", "layout state database (default: from config)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.Float64Var(&flags.width, "width", cli.DefaultWidth, "window width in pixels")
	pf.Float64Var(&flags.height, "height", cli.DefaultHeight, "window height in pixels")
	pf.StringVarP(&flags.output, "output", "o", outputText, "output format: text, json, yaml")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// appOptions builds app options from the root flags.
func appOptions() cli.Options {
	return cli.Options{
		Workspace:    flags.workspace,
		Ephemeral:    flags.ephemeral,
		ConfigDir:    flags.configDir,
		DatabasePath: flags.dbPath,
		Verbose:      flags.verbose,
	}
}

// requireApp returns the app or an error for commands run without it.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
