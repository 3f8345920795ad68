package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("SHELLGRID_DATABASE", filepath.Join(t.TempDir(), "layout.sqlite"))
	mgr, err := NewManager(WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "default", mgr.viper.GetString(entity.SettingActivityBarLocation))
	assert.Equal(t, "bottom", mgr.viper.GetString(entity.SettingPanelDefaultLocation))
	assert.True(t, mgr.viper.GetBool(entity.SettingZenModeRestore))
}

func TestLoad_CreatesDefaultConfigAndSchema(t *testing.T) {
	mgr := newTestManager(t)

	_, err := os.Stat(mgr.ConfigFile())
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(mgr.ConfigFile()), schemaFileName))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, "left", cfg.Workbench.SideBar.Location)
	assert.Nil(t, cfg.Workbench.ActivityBar.Visible)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestIsSet_IgnoresDefaults(t *testing.T) {
	mgr := newTestManager(t)

	// The default file spells out every key, so they count as set.
	assert.True(t, mgr.IsSet(entity.SettingSideBarLocation))
	assert.False(t, mgr.IsSet(entity.SettingActivityBarVisible))
}

func TestUpdateValue_WritesFileAndNotifies(t *testing.T) {
	mgr := newTestManager(t)

	var events []port.ConfigurationChangeEvent
	unsubscribe := mgr.OnDidChangeConfiguration(func(e port.ConfigurationChangeEvent) {
		events = append(events, e)
	})
	defer unsubscribe()

	require.NoError(t, mgr.UpdateValue(context.Background(), entity.SettingSideBarLocation, "right"))

	require.Len(t, events, 1)
	assert.True(t, events[0].AffectsConfiguration(entity.SettingSideBarLocation))
	assert.Equal(t, "right", mgr.GetValue(entity.SettingSideBarLocation))
	assert.Equal(t, "right", mgr.Get().Workbench.SideBar.Location)

	data, err := os.ReadFile(mgr.ConfigFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "sideBar")
	assert.Contains(t, string(data), "right")
}

func TestUpdateValue_SameValueIsNoop(t *testing.T) {
	mgr := newTestManager(t)

	fired := 0
	mgr.OnDidChangeConfiguration(func(port.ConfigurationChangeEvent) { fired++ })

	require.NoError(t, mgr.UpdateValue(context.Background(), entity.SettingSideBarLocation, "left"))
	assert.Zero(t, fired)
}

func TestUpdateValue_NewLegacyKey(t *testing.T) {
	mgr := newTestManager(t)

	require.NoError(t, mgr.UpdateValue(context.Background(), entity.SettingActivityBarVisible, false))

	assert.True(t, mgr.IsSet(entity.SettingActivityBarVisible))
	assert.Equal(t, false, mgr.GetValue(entity.SettingActivityBarVisible))
	require.NotNil(t, mgr.Get().Workbench.ActivityBar.Visible)
}

func TestReload_PicksUpExternalEdit(t *testing.T) {
	mgr := newTestManager(t)

	var changed []string
	mgr.OnDidChangeConfiguration(func(e port.ConfigurationChangeEvent) { changed = e.Keys() })

	raw, err := mgr.readRawLocked()
	require.NoError(t, err)
	setNested(raw, []string{"workbench", "panel", "defaultLocation"}, "right")
	require.NoError(t, WriteConfigOrdered(raw, mgr.ConfigFile()))

	require.NoError(t, mgr.Reload())
	assert.Equal(t, []string{"workbench.panel.defaultlocation"}, changed)
	assert.Equal(t, "right", mgr.Get().Workbench.Panel.DefaultLocation)
}

func TestLoad_RejectsInvalidValue(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELLGRID_DATABASE", filepath.Join(dir, "layout.sqlite"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName),
		[]byte("[workbench.sideBar]\nlocation = 'middle'\n"), 0o600))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), entity.SettingSideBarLocation)
}

func writeLegacyConfig(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName),
		[]byte("[workbench.activityBar]\nvisible = false\n\n[workbench.editor]\nshowTabs = false\n"), 0o600))
}

func TestMigrate_RewritesLegacyKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELLGRID_DATABASE", filepath.Join(dir, "layout.sqlite"))
	writeLegacyConfig(t, dir)

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	applied, err := mgr.Migrate(context.Background())
	require.NoError(t, err)
	assert.Len(t, applied, 2)

	cfg := mgr.Get()
	assert.Equal(t, "hidden", cfg.Workbench.ActivityBar.Location)
	assert.Nil(t, cfg.Workbench.ActivityBar.Visible)
	assert.Equal(t, "single", cfg.Workbench.Editor.ShowTabs)

	again, err := mgr.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestLoad_MigratesLegacyKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELLGRID_DATABASE", filepath.Join(dir, "layout.sqlite"))
	writeLegacyConfig(t, dir)

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "single", mgr.Get().Workbench.Editor.ShowTabs)
	assert.Equal(t, "hidden", mgr.GetValue(entity.SettingActivityBarLocation))
}

func TestDiffSettings(t *testing.T) {
	prev := map[string]any{"a": 1, "b": "x", "c": true}
	next := map[string]any{"a": 1, "b": "y", "d": false}

	assert.Equal(t, []string{"b", "c", "d"}, diffSettings(prev, next))
}
