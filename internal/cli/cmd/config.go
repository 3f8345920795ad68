package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/shellgrid/internal/cli/styles"
	"github.com/bnema/shellgrid/internal/infrastructure/config"
	"github.com/bnema/shellgrid/internal/logging"
)

// skipAppInit marks commands that must run before the app loads the
// config, since loading rewrites legacy settings.
const skipAppInit = "skip-app-init"

var (
	configYes        bool
	configSchemaFile bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status, migrate legacy layout settings and export the settings schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Show config file status and migration availability",
	Long:        `Display the config file path and check whether legacy layout settings need rewriting.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipAppInit: "true"},
	RunE:        runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite legacy layout settings in the config file",
	Long: `Rewrites settings that older versions stored in another shape, for example
workbench.activityBar.visible or a boolean workbench.editor.showTabs.

Settings that are already current are never modified.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipAppInit: "true"},
	RunE:        runConfigMigrate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or install the JSON schema of config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settings with their defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where shellgrid keeps its files",
	Args:  cobra.NoArgs,
	RunE:  runConfigPaths,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd, configMigrateCmd, configSchemaCmd, configKeysCmd, configPathsCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&configSchemaFile, "write", false, "write the schema next to config.toml instead of printing it")
}

// unloadedManager returns a manager that has not read config.toml yet.
func unloadedManager() (*config.Manager, error) {
	var opts []config.Option
	if flags.configDir != "" {
		opts = append(opts, config.WithConfigDir(flags.configDir))
	}
	return config.NewManager(opts...)
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(styles.DefaultTheme())

	mgr, err := unloadedManager()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	configFile := mgr.ConfigFile()
	if _, statErr := os.Stat(configFile); errors.Is(statErr, os.ErrNotExist) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	pending, err := mgr.PendingMigrations()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(pending) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(pending)))
	fmt.Fprintln(out, renderer.RenderRewrites(pending))
	fmt.Fprintln(out, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	theme := styles.DefaultTheme()
	renderer := styles.NewConfigRenderer(theme)

	mgr, err := unloadedManager()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	configFile := mgr.ConfigFile()
	if _, statErr := os.Stat(configFile); errors.Is(statErr, os.ErrNotExist) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	pending, err := mgr.PendingMigrations()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(pending) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(pending)))
	fmt.Fprintln(out, renderer.RenderRewrites(pending))

	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("warn", "console"))
	if configYes {
		applied, err := mgr.Migrate(ctx)
		if err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return nil
		}
		fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(applied), configFile))
		return nil
	}

	m := newMigrateModel(ctx, renderer, theme, mgr)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	mgr      *config.Manager
	ctx      context.Context

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	applied []string
	err     error
}

func newMigrateModel(ctx context.Context, renderer *styles.ConfigRenderer, theme *styles.Theme, mgr *config.Manager) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Rewrite these settings?"),
		state:    migrateStateConfirm,
		mgr:      mgr,
		ctx:      ctx,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrationSuccess(len(msg.applied), m.mgr.ConfigFile())
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, m.runMigration()
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return fmt.Sprintf("\n  %s Migrating...\n", m.spinner.View())
	default:
		return m.confirm.View()
	}
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		applied, err := m.mgr.Migrate(m.ctx)
		return migrateResultMsg{applied: applied, err: err}
	}
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configSchemaFile {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	mgr, err := unloadedManager()
	if err != nil {
		return err
	}
	path := mgr.SchemaFile()
	if err := config.GenerateSchemaFile(path); err != nil {
		return err
	}
	theme := styles.DefaultTheme()
	if a := GetApp(); a != nil {
		theme = a.Theme
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", theme.SuccessStyle.Render(styles.IconCheck), path)
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	keys := config.NewSchemaProvider().GetSchema()
	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), keys, flags.output)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderKeys(keys))
	return nil
}

// Paths lists the files shellgrid reads and writes.
type Paths struct {
	ConfigFile string `json:"configFile" yaml:"configFile"`
	SchemaFile string `json:"schemaFile" yaml:"schemaFile"`
	Database   string `json:"database" yaml:"database"`
	Workspace  string `json:"workspace" yaml:"workspace"`
}

func runConfigPaths(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	paths := Paths{Workspace: a.Workspace.Folder, Database: "(memory)"}
	if a.Manager != nil {
		paths.ConfigFile = a.Manager.ConfigFile()
		paths.SchemaFile = a.Manager.SchemaFile()
	}
	if a.States != nil {
		paths.Database = a.DatabasePath()
	}

	if flags.output != outputText {
		return encode(cmd.OutOrStdout(), paths, flags.output)
	}
	t := a.Theme
	row := func(icon, label, value string) {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %-10s %s\n", lipgloss.NewStyle().Foreground(t.Accent).Render(icon), label, t.Subtle.Render(value))
	}
	row(styles.IconConfig, "config", paths.ConfigFile)
	row(styles.IconConfig, "schema", paths.SchemaFile)
	row(styles.IconDatabase, "database", paths.Database)
	row(styles.IconFolder, "workspace", paths.Workspace)
	return nil
}
