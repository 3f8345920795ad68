package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/cli/styles"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// maxSuggestions caps "did you mean" hints for unknown keys.
const maxSuggestions = 3

var (
	stateResetYes     bool
	stateResetProfile bool
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and edit stored layout state",
	Long: `Layout state is stored per workspace (positions, visibility, zen mode) and
per profile (part sizes, panel alignment, activity and status bar).

Keys may be given with or without the "workbench." prefix.`,
}

var stateKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List layout state keys with their defaults",
	Args:  cobra.NoArgs,
	RunE:  runStateKeys,
}

var stateGetCmd = &cobra.Command{
	Use:   "get [key]...",
	Short: "Print the effective value of layout state keys",
	RunE:  runStateGet,
}

var stateSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a layout state value",
	Long: `Store a layout state value for the next time the workspace opens.

Examples:
  shellgrid state set panel.position right
  shellgrid state set workbench.sideBar.hidden true
  shellgrid state set sideBar.size 320`,
	Args: cobra.ExactArgs(2),
	RunE: runStateSet,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored layout of the workspace",
	Args:  cobra.NoArgs,
	RunE:  runStateReset,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateKeysCmd, stateGetCmd, stateSetCmd, stateResetCmd)
	stateResetCmd.Flags().BoolVarP(&stateResetYes, "yes", "y", false, "skip confirmation prompt")
	stateResetCmd.Flags().BoolVar(&stateResetProfile, "profile", false, "also forget profile state shared by all workspaces")
}

// StateValue is one key and its effective value.
type StateValue struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Scope  string `json:"scope" yaml:"scope"`
	Stored bool   `json:"stored" yaml:"stored"`
}

func runStateKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	m := layoutstate.NewModel(a.Store, a.Settings)
	infos := m.Describe()
	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), infos, flags.output)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderKeys(infos))
	return nil
}

func runStateGet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	keys := layoutstate.Keys()
	if len(args) > 0 {
		keys = keys[:0]
		for _, arg := range args {
			key, err := lookupStateKey(arg)
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
	}

	values, err := readState(a.Ctx(), a, keys)
	if err != nil {
		return err
	}
	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), values, flags.output)
	}

	t := a.Theme
	out := cmd.OutOrStdout()
	for _, v := range values {
		marker := t.Subtle.Render("default")
		if v.Stored {
			marker = t.Subtle.Render(v.Scope)
		}
		fmt.Fprintf(out, "%s = %s %s\n", t.Highlight.Render(v.Key), t.Normal.Render(v.Value), marker)
	}
	return nil
}

// readState loads the layout model the way the workbench does and reads
// the effective value of each key.
func readState(ctx context.Context, a *cli.App, keys []*entity.StateKey) ([]StateValue, error) {
	m := layoutstate.NewModel(a.Store, a.Settings)
	m.Load(ctx, layoutstate.LoadOptions{
		ContainerDimension: entity.Dimension{Width: flags.width, Height: flags.height},
	})
	defer m.Dispose()

	values := make([]StateValue, 0, len(keys))
	for _, key := range keys {
		_, stored, err := a.Store.Get(ctx, key.StorageKey(), key.Scope())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key.StorageKey(), err)
		}
		values = append(values, StateValue{
			Key:    key.StorageKey(),
			Value:  layoutstate.FormatValue(m.RuntimeValue(key)),
			Scope:  key.Scope().String(),
			Stored: stored,
		})
	}
	return values, nil
}

func runStateSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	key, err := lookupStateKey(args[0])
	if err != nil {
		return err
	}
	value, err := layoutstate.ParseValue(key, args[1])
	if err != nil {
		return err
	}

	ctx := a.Ctx()
	raw := layoutstate.FormatValue(value)
	if err := a.Store.Store(ctx, key.StorageKey(), raw, key.Scope(), key.Target()); err != nil {
		return fmt.Errorf("store %s: %w", key.StorageKey(), err)
	}
	// Keys backed by an older setting read that setting on load.
	if legacy := layoutstate.NewLegacyAdapter(a.Settings); legacy.Covers(key) {
		legacy.Write(ctx, key, value)
	}
	logging.FromContext(ctx).Debug().Str("key", key.StorageKey()).Str("value", raw).Msg("layout state stored")

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n",
		a.Theme.SuccessStyle.Render(styles.IconCheck),
		a.Theme.Highlight.Render(key.StorageKey()),
		a.Theme.Normal.Render(raw),
	)
	return nil
}

// lookupStateKey resolves a key name, suggesting close matches on a miss.
func lookupStateKey(name string) (*entity.StateKey, error) {
	if key, ok := layoutstate.LookupKey(name); ok {
		return key, nil
	}

	names := make([]string, 0, len(layoutstate.Keys()))
	for _, k := range layoutstate.Keys() {
		names = append(names, k.Name())
	}
	matches := fuzzy.Find(strings.TrimPrefix(name, "workbench."), names)
	if len(matches) == 0 {
		return nil, fmt.Errorf("unknown layout state key %q (see 'shellgrid state keys')", name)
	}
	suggestions := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		suggestions = append(suggestions, matches[i].Str)
	}
	return nil, fmt.Errorf("unknown layout state key %q, did you mean: %s", name, strings.Join(suggestions, ", "))
}

func runStateReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	scopes := []entity.StorageScope{entity.ScopeWorkspace}
	if stateResetProfile {
		scopes = append(scopes, entity.ScopeProfile)
	}

	if !stateResetYes {
		detail := a.Workspace.Folder
		if stateResetProfile {
			detail += " and profile state"
		}
		ok, err := confirm(a.Theme, "Forget the stored layout?", detail)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	removed, err := resetState(a.Ctx(), a, scopes)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %d stored layout values\n",
		a.Theme.SuccessStyle.Render(styles.IconCheck), removed)
	return nil
}

// resetState removes every stored layout key in scopes.
func resetState(ctx context.Context, a *cli.App, scopes []entity.StorageScope) (int, error) {
	removed := 0
	for _, scope := range scopes {
		keys, err := a.Store.Keys(ctx, scope)
		if err != nil {
			return removed, fmt.Errorf("list %s state: %w", scope, err)
		}
		for _, k := range keys {
			if _, ok := layoutstate.LookupKey(k); !ok {
				continue
			}
			if err := a.Store.Remove(ctx, k, scope); err != nil {
				return removed, fmt.Errorf("remove %s: %w", k, err)
			}
			removed++
		}
	}
	return removed, nil
}

// confirmModel wraps the confirm dialog as a standalone program.
type confirmModel struct {
	confirm styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		m.confirm.Cancel()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}

// confirm asks a yes/no question on the terminal.
func confirm(theme *styles.Theme, message, detail string) (bool, error) {
	m := confirmModel{confirm: styles.NewConfirm(theme, message).WithDetail(detail)}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return final.(confirmModel).confirm.Result(), nil
}
