package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	xdg "github.com/bnema/shellgrid/internal/config"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// Manager handles configuration loading, watching, and reloading. It also
// serves the dotted-key settings API the layout engine consumes.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	configDir   string
	xdgDefault  bool
	snapshot    map[string]any
	changes     event.Emitter[port.ConfigurationChangeEvent]
	dispatch    func(func())
	transformer port.ConfigTransformer
}

// Option customises a Manager.
type Option func(*Manager)

// WithConfigDir reads and writes config.toml in dir instead of the XDG
// config directory.
func WithConfigDir(dir string) Option {
	return func(m *Manager) { m.configDir = dir }
}

// WithDispatcher routes change notifications caused by file edits through
// post, typically onto the main loop. Changes made through UpdateValue are
// always delivered synchronously.
func WithDispatcher(post func(func())) Option {
	return func(m *Manager) { m.dispatch = post }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:       viper.New(),
		callbacks:   make([]func(*Config), 0),
		snapshot:    make(map[string]any),
		dispatch:    func(fn func()) { fn() },
		transformer: NewLegacyConfigTransformer(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := xdg.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
		m.xdgDefault = true
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.configDir)

	v.SetEnvPrefix("SHELLGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SHELLGRID_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHELLGRID_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHELLGRID_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHELLGRID_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "SHELLGRID_DATABASE"); err != nil {
		return nil, fmt.Errorf("failed to bind SHELLGRID_DATABASE: %w", err)
	}

	return m, nil
}

// ensureDirs creates the config directory, or every XDG directory when
// no override was given.
func (m *Manager) ensureDirs() error {
	if m.xdgDefault {
		return xdg.EnsureDirectories()
	}
	return os.MkdirAll(m.configDir, xdg.DirPerm)
}

// Load loads the configuration from file and environment variables,
// creating a default config file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDirs(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	// Legacy values would fail validation, so rewrite them first.
	migrated, err := m.migrateLocked()
	if err != nil {
		return err
	}
	if len(migrated) > 0 {
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read migrated config file: %w", err)
		}
	}

	_, err = m.refreshLocked()
	return err
}

func (m *Manager) setDefaults() {
	for key, value := range DefaultSettings() {
		m.viper.SetDefault(key, value)
	}
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := WriteConfigOrdered(DefaultConfig(), m.ConfigFile()); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if schemaErr := GenerateSchemaFile(m.SchemaFile()); schemaErr != nil {
		return schemaErr
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// refreshLocked rebuilds the typed config and the flattened snapshot and
// returns the dotted keys whose effective value changed. Must be called
// with m.mu held for write.
func (m *Manager) refreshLocked() ([]string, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(),
			err,
		)
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg

	next := make(map[string]any)
	for _, key := range m.viper.AllKeys() {
		next[key] = m.viper.Get(key)
	}
	changed := diffSettings(m.snapshot, next)
	m.snapshot = next
	return changed, nil
}

func diffSettings(prev, next map[string]any) []string {
	var changed []string
	for key, value := range next {
		if old, ok := prev[key]; !ok || !reflect.DeepEqual(old, value) {
			changed = append(changed, key)
		}
	}
	for key := range prev {
		if _, ok := next[key]; !ok {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}

func ensureDatabasePath(cfg *Config) error {
	if cfg.Database.Path != "" {
		return nil
	}
	dbPath, err := xdg.GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	cfg.Database.Path = dbPath
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of config.toml.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// SchemaFile returns the path of the JSON schema written next to
// config.toml.
func (m *Manager) SchemaFile() string {
	return filepath.Join(m.configDir, schemaFileName)
}

// GetValue implements port.Configuration.
func (m *Manager) GetValue(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.Get(key)
}

// IsSet implements port.Configuration. Only values from the config file or
// the environment count; defaults do not.
func (m *Manager) IsSet(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.InConfig(key) || m.viper.IsSet(key) && !m.hasDefault(key)
}

func (m *Manager) hasDefault(key string) bool {
	for k := range DefaultSettings() {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// UpdateValue implements port.Configuration. The value is written into
// config.toml, preserving the user's other entries, and listeners are
// notified before UpdateValue returns.
func (m *Manager) UpdateValue(ctx context.Context, key string, value any) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if m.viper.InConfig(key) && reflect.DeepEqual(m.viper.Get(key), value) {
		m.mu.Unlock()
		return nil
	}

	raw, err := m.readRawLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	setNested(raw, strings.Split(key, "."), value)

	if err := WriteConfigOrdered(raw, m.ConfigFile()); err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to re-read config after update: %w", err)
	}
	changed, err := m.refreshLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	cfg, callbacks := m.config, m.copyCallbacksLocked()
	m.mu.Unlock()

	log.Debug().Str("key", key).Interface("value", value).Strs("changed", changed).Msg("setting updated")
	m.notify(changed, cfg, callbacks)
	return nil
}

// readRawLocked returns config.toml as a nested map with the user's key
// spelling intact.
func (m *Manager) readRawLocked() (map[string]any, error) {
	raw := make(map[string]any)
	data, err := os.ReadFile(m.ConfigFile())
	if errors.Is(err, os.ErrNotExist) {
		return raw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return raw, nil
}

// setNested assigns value at path, matching existing keys case-insensitively.
func setNested(root map[string]any, path []string, value any) {
	current := root
	for i, segment := range path {
		name := segment
		for existing := range current {
			if strings.EqualFold(existing, segment) {
				name = existing
				break
			}
		}
		if i == len(path)-1 {
			current[name] = value
			return
		}
		next, ok := current[name].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[name] = next
		}
		current = next
	}
}

// OnDidChangeConfiguration implements port.Configuration.
func (m *Manager) OnDidChangeConfiguration(fn func(port.ConfigurationChangeEvent)) func() {
	return m.changes.Subscribe(fn)
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) copyCallbacksLocked() []func(*Config) {
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	return callbacks
}

func (m *Manager) notify(changed []string, cfg *Config, callbacks []func(*Config)) {
	if len(changed) == 0 {
		return
	}
	m.changes.Fire(port.NewConfigurationChangeEvent(changed...))
	for _, callback := range callbacks {
		callback(cfg)
	}
}

// Save writes a complete configuration to disk and reloads it.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	if err := WriteConfigOrdered(cfg, m.ConfigFile()); err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	changed, err := m.refreshLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	current, callbacks := m.config, m.copyCallbacksLocked()
	m.mu.Unlock()

	m.notify(changed, current, callbacks)
	return nil
}

// Migrate rewrites legacy layout settings in config.toml. It returns the
// descriptions of the applied rewrites; none means the file was current.
// Load migrates automatically, so call Migrate before Load to report what
// changed.
func (m *Manager) Migrate(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	m.setDefaults()
	applied, err := m.migrateLocked()
	if err != nil || len(applied) == 0 {
		m.mu.Unlock()
		return nil, err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	changed, err := m.refreshLocked()
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	cfg, callbacks := m.config, m.copyCallbacksLocked()
	m.mu.Unlock()

	logging.FromContext(ctx).Info().Strs("rewrites", applied).Msg("migrated legacy layout settings")
	m.notify(changed, cfg, callbacks)
	return applied, nil
}

// PendingMigrations describes the rewrites Migrate would apply, without
// touching the file.
func (m *Manager) PendingMigrations() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, err := m.readRawLocked()
	if err != nil {
		return nil, err
	}
	return m.transformer.TransformLegacyLayout(raw), nil
}

// migrateLocked applies the legacy transformer to config.toml on disk.
func (m *Manager) migrateLocked() ([]string, error) {
	raw, err := m.readRawLocked()
	if err != nil {
		return nil, err
	}
	applied := m.transformer.TransformLegacyLayout(raw)
	if len(applied) == 0 {
		return nil, nil
	}
	if err := WriteConfigOrdered(raw, m.ConfigFile()); err != nil {
		return nil, err
	}
	return applied, nil
}

var _ port.Configuration = (*Manager)(nil)
