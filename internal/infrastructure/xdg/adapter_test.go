package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ManDir(t *testing.T) {
	adapter := New()

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("XDG_DATA_HOME", "/custom/data")

		dir, err := adapter.ManDir()

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/custom/data", "man", "man1"), dir)
	})

	t.Run("falls back to ~/.local/share", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("ENV", "")
		t.Setenv("HOME", home)
		t.Setenv("XDG_DATA_HOME", "")

		dir, err := adapter.ManDir()

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "man", "man1"), dir)
	})
}

func TestAdapter_Files(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	adapter := New()

	configFile, err := adapter.ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/cfg/shellgrid/config.toml", configFile)

	schema, err := adapter.SchemaFile()
	require.NoError(t, err)
	assert.Equal(t, "/cfg/shellgrid/config.schema.json", schema)

	db, err := adapter.DatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, "/data/shellgrid/layout.sqlite", db)
}
