// Package config locates shellgrid's files under the XDG base directories.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	appName      = "shellgrid"
	databaseName = "layout.sqlite"
	configName   = "config.toml"
	schemaName   = "config.schema.json"

	// DirPerm is used for every directory shellgrid creates.
	DirPerm = 0o750
	// FilePerm is used for config and schema files.
	FilePerm = 0o644
)

// Dirs are the per-application XDG directories.
type Dirs struct {
	Config string
	Data   string
	State  string
}

// Resolve returns $XDG_CONFIG_HOME/shellgrid, $XDG_DATA_HOME/shellgrid and
// $XDG_STATE_HOME/shellgrid, defaulting to ~/.config, ~/.local/share and
// ~/.local/state. With ENV=dev all three are ./.dev/shellgrid.
func Resolve() (Dirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return Dirs{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return Dirs{Config: dev, Data: dev, State: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, err
	}
	base := func(env string, fallback ...string) string {
		if v := os.Getenv(env); v != "" {
			return v
		}
		return filepath.Join(append([]string{home}, fallback...)...)
	}
	return Dirs{
		Config: filepath.Join(base("XDG_CONFIG_HOME", ".config"), appName),
		Data:   filepath.Join(base("XDG_DATA_HOME", ".local", "share"), appName),
		State:  filepath.Join(base("XDG_STATE_HOME", ".local", "state"), appName),
	}, nil
}

// ConfigFile is config.toml in the config directory.
func (d Dirs) ConfigFile() string { return filepath.Join(d.Config, configName) }

// SchemaFile is the generated JSON schema next to config.toml.
func (d Dirs) SchemaFile() string { return filepath.Join(d.Config, schemaName) }

// DatabaseFile is the layout state database. Layout state is user data,
// so it lives in the data directory.
func (d Dirs) DatabaseFile() string { return filepath.Join(d.Data, databaseName) }

// ManDir is man/man1 beside the data directory, which man searches by
// default.
func (d Dirs) ManDir() string { return filepath.Join(filepath.Dir(d.Data), "man", "man1") }

// Ensure creates the three directories.
func (d Dirs) Ensure() error {
	var errs []error
	for _, dir := range []string{d.Config, d.Data, d.State} {
		errs = append(errs, os.MkdirAll(dir, DirPerm))
	}
	return errors.Join(errs...)
}

// GetConfigDir returns the resolved config directory.
func GetConfigDir() (string, error) {
	d, err := Resolve()
	return d.Config, err
}

// GetDatabaseFile returns the resolved database path.
func GetDatabaseFile() (string, error) {
	d, err := Resolve()
	if err != nil {
		return "", err
	}
	return d.DatabaseFile(), nil
}

// EnsureDirectories resolves and creates the directories.
func EnsureDirectories() error {
	d, err := Resolve()
	if err != nil {
		return err
	}
	return d.Ensure()
}
