package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	require.NotEmpty(t, sections)
	assert.True(t, strings.HasPrefix(sections[0], "[workbench"), sections[0])

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().ZenMode, decoded.ZenMode)
}

func TestWriteConfigOrdered_RawMap(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	raw := map[string]any{
		"zenMode": map[string]any{"restore": false},
		"workbench": map[string]any{
			"sideBar": map[string]any{"location": "right"},
		},
	}

	require.NoError(t, WriteConfigOrdered(raw, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[workbench.sideBar]")
	assert.Contains(t, string(content), "[zenMode]")

	entries, err := os.ReadDir(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}
