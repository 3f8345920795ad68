// Package cli wires the layout engine to the shellgrid command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/cli/styles"
	"github.com/bnema/shellgrid/internal/domain/build"
	"github.com/bnema/shellgrid/internal/infrastructure/config"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/memory"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/bnema/shellgrid/internal/ui/theme"
)

// Options control how NewApp wires the application.
type Options struct {
	// Workspace is the folder whose layout is loaded; defaults to the
	// working directory.
	Workspace string
	// Ephemeral keeps settings and layout state in memory only.
	Ephemeral bool
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// DatabasePath overrides the configured database location.
	DatabasePath string
	// Verbose enables debug logging.
	Verbose bool
	// Post dispatches settings file changes; nil delivers them inline.
	Post func(func())
}

// Workspace identifies the folder a layout belongs to.
type Workspace struct {
	ID     string `json:"id" yaml:"id"`
	Folder string `json:"folder" yaml:"folder"`
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Settings  port.Configuration
	Theme     *styles.Theme
	Palette   *theme.Service
	Store     port.StateStore
	BuildInfo build.Info
	Workspace Workspace
	Ephemeral bool

	// Manager and States are nil for ephemeral runs.
	Manager *config.Manager
	States  *sqlite.StateStore

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	workspace, err := resolveWorkspace(opts.Workspace)
	if err != nil {
		return nil, err
	}

	app := &App{Workspace: workspace, Ephemeral: opts.Ephemeral}

	if opts.Ephemeral {
		app.Config = config.DefaultConfig()
		app.Settings = config.NewMemoryConfiguration(nil)
	} else {
		managerOpts := []config.Option{}
		if opts.ConfigDir != "" {
			managerOpts = append(managerOpts, config.WithConfigDir(opts.ConfigDir))
		}
		if opts.Post != nil {
			managerOpts = append(managerOpts, config.WithDispatcher(opts.Post))
		}
		mgr, err := config.NewManager(managerOpts...)
		if err != nil {
			return nil, fmt.Errorf("create config manager: %w", err)
		}
		if err := mgr.Load(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		app.Manager = mgr
		app.Config = mgr.Get()
		app.Settings = mgr
	}

	logger := logging.New(logging.Settings(app.Config.Logging.Level, app.Config.Logging.Format, opts.Verbose))
	app.ctx = logging.WithWorkspace(logging.WithContext(context.Background(), logger), workspace.ID)

	app.Palette = theme.NewService(app.ctx, app.Config)
	app.Theme = styles.NewTheme(app.Palette.Palette())

	if opts.Ephemeral {
		app.Store = memory.NewStateStore()
	} else {
		dbPath := app.Config.Database.Path
		if opts.DatabasePath != "" {
			dbPath = opts.DatabasePath
		}
		app.db = sqlite.NewLazyDB(dbPath)
		app.States = sqlite.NewStateStore(app.db, workspace.ID)
		app.Store = app.States
		logger.Debug().Str("db_path", dbPath).Str("workspace", workspace.ID).Msg("layout state store ready")
	}

	return app, nil
}

// resolveWorkspace derives a stable ID from the absolute folder path.
func resolveWorkspace(folder string) (Workspace, error) {
	if folder == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Workspace{}, fmt.Errorf("resolve workspace: %w", err)
		}
		folder = wd
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolve workspace %q: %w", folder, err)
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(abs)))
	return Workspace{ID: id.String(), Folder: abs}, nil
}

// DatabasePath returns the layout database location, or "" for ephemeral
// runs.
func (a *App) DatabasePath() string {
	if a.db == nil {
		return ""
	}
	return a.db.Path()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
