package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

var partCmd = &cobra.Command{
	Use:   "part",
	Short: "Show, hide or toggle workbench parts",
	Long: `Change the visibility of workbench parts and save it for the workspace.

Parts: ` + partNames() + `

Examples:
  shellgrid part hide sidebar statusbar
  shellgrid part toggle panel`,
}

var partShowCmd = &cobra.Command{
	Use:   "show <part>...",
	Short: "Show parts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runPartVisibility(cmd, args, visShow) },
}

var partHideCmd = &cobra.Command{
	Use:   "hide <part>...",
	Short: "Hide parts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runPartVisibility(cmd, args, visHide) },
}

var partToggleCmd = &cobra.Command{
	Use:   "toggle <part>...",
	Short: "Toggle parts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runPartVisibility(cmd, args, visToggle) },
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Move, align or maximize the panel",
}

var panelPositionCmd = &cobra.Command{
	Use:       "position <bottom|top|left|right>",
	Short:     "Move the panel",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bottom", "top", "left", "right"},
	RunE:      runPanelPosition,
}

var panelAlignCmd = &cobra.Command{
	Use:       "align <center|justify|left|right>",
	Short:     "Set how a bottom or top panel spans the window",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"center", "justify", "left", "right"},
	RunE:      runPanelAlign,
}

var panelMaximizeCmd = &cobra.Command{
	Use:       "maximize [on|off|toggle]",
	Short:     "Maximize the panel over the editor area",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: toggleArgs,
	RunE:      runPanelMaximize,
}

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Move the primary side bar",
}

var sidebarPositionCmd = &cobra.Command{
	Use:       "position <left|right>",
	Short:     "Put the side bar on the left or right",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right"},
	RunE:      runSideBarPosition,
}

var zenCmd = &cobra.Command{
	Use:       "zen [on|off|toggle]",
	Short:     "Enter or leave zen mode",
	Long:      `Zen mode hides everything but the editor area. Leaving it restores the parts that were visible before.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: toggleArgs,
	RunE:      runZen,
}

var centerCmd = &cobra.Command{
	Use:       "center [on|off|toggle]",
	Short:     "Center the editor layout",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: toggleArgs,
	RunE:      runCenter,
}

var toggleArgs = []string{"on", "off", "toggle"}

func init() {
	partCmd.AddCommand(partShowCmd, partHideCmd, partToggleCmd)
	panelCmd.AddCommand(panelPositionCmd, panelAlignCmd, panelMaximizeCmd)
	sidebarCmd.AddCommand(sidebarPositionCmd)
	rootCmd.AddCommand(partCmd, panelCmd, sidebarCmd, zenCmd, centerCmd)
}

type visibilityOp int

const (
	visShow visibilityOp = iota
	visHide
	visToggle
)

func partNames() string {
	names := make([]string, 0, len(entity.AllParts()))
	for _, p := range entity.AllParts() {
		names = append(names, p.ShortName())
	}
	return strings.Join(names, ", ")
}

func runPartVisibility(cmd *cobra.Command, args []string, op visibilityOp) error {
	parts := make([]entity.Part, 0, len(args))
	for _, arg := range args {
		p, err := entity.ParsePart(arg)
		if err != nil {
			return err
		}
		parts = append(parts, p)
	}

	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		var changed []string
		for _, p := range parts {
			var err error
			switch op {
			case visShow:
				err = s.Layout.SetPartHidden(ctx, false, p)
			case visHide:
				err = s.Layout.SetPartHidden(ctx, true, p)
			case visToggle:
				err = s.Layout.TogglePart(ctx, p)
			}
			if err != nil {
				return "", fmt.Errorf("%s: %w", p.ShortName(), err)
			}
			state := "hidden"
			if s.Layout.IsVisible(p, entity.MainWindowID) {
				state = "shown"
			}
			changed = append(changed, p.ShortName()+" "+state)
		}
		return strings.Join(changed, ", "), nil
	})
}

func runPanelPosition(cmd *cobra.Command, args []string) error {
	pos, err := entity.ParsePosition(args[0])
	if err != nil {
		return err
	}
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		if err := s.Layout.SetPanelPosition(ctx, pos); err != nil {
			return "", err
		}
		return "panel moved " + pos.String(), nil
	})
}

func runPanelAlign(cmd *cobra.Command, args []string) error {
	alignment, err := entity.ParsePanelAlignment(args[0])
	if err != nil {
		return err
	}
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		if err := s.Layout.SetPanelAlignment(ctx, alignment); err != nil {
			return "", err
		}
		return "panel aligned " + string(alignment), nil
	})
}

func runPanelMaximize(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		want, err := parseSwitch(args, s.Layout.IsPanelMaximized())
		if err != nil {
			return "", err
		}
		if want != s.Layout.IsPanelMaximized() {
			s.Layout.ToggleMaximizedPanel(ctx)
		}
		return "panel maximized " + onOff(s.Layout.IsPanelMaximized()), nil
	})
}

func runSideBarPosition(cmd *cobra.Command, args []string) error {
	pos, err := entity.ParsePosition(args[0])
	if err != nil {
		return err
	}
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		if err := s.Layout.SetSideBarPosition(ctx, pos); err != nil {
			return "", err
		}
		return "side bar moved " + pos.String(), nil
	})
}

func runZen(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		want, err := parseSwitch(args, s.Layout.IsZenModeActive())
		if err != nil {
			return "", err
		}
		if want != s.Layout.IsZenModeActive() {
			s.Layout.ToggleZenMode(ctx, false, false)
		}
		return "zen mode " + onOff(s.Layout.IsZenModeActive()), nil
	})
}

func runCenter(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ctx context.Context, s *cli.Session) (string, error) {
		want, err := parseSwitch(args, s.Layout.IsMainEditorLayoutCentered())
		if err != nil {
			return "", err
		}
		s.Layout.CenterMainEditorLayout(ctx, want, false)
		return "centered editor " + onOff(s.Layout.IsMainEditorLayoutCentered()), nil
	})
}

// mutate applies fn to the workspace layout, saves it and prints the result.
func mutate(cmd *cobra.Command, fn func(ctx context.Context, s *cli.Session) (string, error)) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	var msg string
	snap, err := withSession(a.Ctx(), a, sessionOptions(), func(ctx context.Context, s *cli.Session) error {
		var err error
		msg, err = fn(ctx, s)
		return err
	})
	if err != nil {
		return err
	}
	return printDone(cmd, a.Theme, msg, snap)
}

// parseSwitch reads an optional on/off/toggle argument. No argument
// toggles.
func parseSwitch(args []string, current bool) (bool, error) {
	if len(args) == 0 {
		return !current, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	case "toggle":
		return !current, nil
	default:
		return false, fmt.Errorf("expected on, off or toggle, got %q", args[0])
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
