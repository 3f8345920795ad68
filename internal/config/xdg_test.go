package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_RespectsEnvironment(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", base)

	dirs, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "shellgrid"), dirs.Config)
	assert.Equal(t, filepath.Join(base, "data", "shellgrid"), dirs.Data)
	assert.Equal(t, filepath.Join(base, ".local", "state", "shellgrid"), dirs.State)
	assert.Equal(t, filepath.Join(base, "data", "man", "man1"), dirs.ManDir())

	db, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "shellgrid", "layout.sqlite"), db)

	require.NoError(t, EnsureDirectories())
	assert.DirExists(t, dirs.State)
}

func TestResolve_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Chdir(t.TempDir())

	dirs, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, dirs.Config, dirs.Data)
	assert.Contains(t, dirs.Config, filepath.Join(".dev", "shellgrid"))
}
