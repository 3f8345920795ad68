package layoutstate

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

const (
	maxDefaultSideBarSize = 300.0
	sideBarWidthFraction  = 4.0
	panelHeightFraction   = 3.0
	panelWidthFraction    = 4.0
)

// StateChange is raised when a key's value changes through
// SetRuntimeValueAndFire or an external store update.
type StateChange struct {
	Key   *entity.StateKey
	Value any
}

// LoadOptions carries the startup facts that shape dynamic defaults.
type LoadOptions struct {
	ContainerDimension entity.Dimension
	// EmptyWorkspace hides the side bar by default when no folder is open.
	EmptyWorkspace bool
	// ResetLayout ignores stored values.
	ResetLayout bool
}

// Model is the single owner of the layout state cache. It is not safe for
// concurrent use; all calls are expected from the main loop.
type Model struct {
	store    port.StateStore
	cfg      port.Configuration
	legacy   *LegacyAdapter
	cache    map[string]any
	defaults map[string]any

	onDidChangeState event.Emitter[StateChange]
	disposers        []func()
	loaded           bool
}

// NewModel creates an unloaded model.
func NewModel(store port.StateStore, cfg port.Configuration) *Model {
	return &Model{
		store:    store,
		cfg:      cfg,
		legacy:   NewLegacyAdapter(cfg),
		cache:    make(map[string]any),
		defaults: make(map[string]any),
	}
}

// Load fills the cache from the store, the legacy settings and the
// (dynamic) defaults, then starts listening for external changes.
func (m *Model) Load(ctx context.Context, opts LoadOptions) {
	log := logging.FromContext(ctx)

	if !opts.ResetLayout {
		for _, key := range registry.ordered {
			value, ok := m.loadKeyFromStorage(ctx, key)
			if ok {
				m.cache[key.Name()] = value
			}
		}
	}

	for _, key := range []*entity.StateKey{ActivityBarHidden, StatusBarHidden, SideBarPosition} {
		if value, ok := m.legacy.Read(key); ok {
			m.cache[key.Name()] = value
		}
	}

	m.computeDynamicDefaults(opts)

	for _, key := range registry.ordered {
		if _, ok := m.cache[key.Name()]; !ok {
			m.cache[key.Name()] = m.DefaultValue(key)
		}
	}

	if !m.loaded {
		m.disposers = append(m.disposers,
			m.store.OnDidChangeValue(entity.ScopeProfile, func(e port.StateChangeEvent) {
				m.onStorageChanged(ctx, e)
			}),
			m.cfg.OnDidChangeConfiguration(func(e port.ConfigurationChangeEvent) {
				m.updateStateFromLegacySettings(ctx, e)
			}),
		)
	}
	m.loaded = true

	log.Debug().
		Float64("width", opts.ContainerDimension.Width).
		Float64("height", opts.ContainerDimension.Height).
		Bool("reset", opts.ResetLayout).
		Msg("layout state loaded")
}

func (m *Model) computeDynamicDefaults(opts LoadOptions) {
	dim := opts.ContainerDimension
	sideBarSize := min(maxDefaultSideBarSize, dim.Width/sideBarWidthFraction)

	m.defaults[SideBarSize.Name()] = sideBarSize
	m.defaults[AuxiliaryBarSize.Name()] = sideBarSize
	m.defaults[SideBarHidden.Name()] = opts.EmptyWorkspace
	m.defaults[AuxiliaryBarHidden.Name()] = true

	defaultPanelPosition := entity.PositionBottom
	location := port.ConfigString(m.cfg, entity.SettingPanelDefaultLocation, string(entity.PositionBottom))
	if pos, err := entity.ParsePosition(location); err == nil {
		defaultPanelPosition = pos
	}
	m.defaults[PanelPosition.Name()] = defaultPanelPosition

	effective := defaultPanelPosition
	if cached, ok := m.cache[PanelPosition.Name()].(entity.Position); ok {
		effective = cached
	}
	if effective.IsHorizontal() {
		m.defaults[PanelSize.Name()] = dim.Height / panelHeightFraction
	} else {
		m.defaults[PanelSize.Name()] = dim.Width / panelWidthFraction
	}
}

// DefaultValue returns the key's default, taking dynamic defaults computed
// at load time into account.
func (m *Model) DefaultValue(key *entity.StateKey) any {
	if v, ok := m.defaults[key.Name()]; ok {
		return v
	}
	return key.Default()
}

func (m *Model) loadKeyFromStorage(ctx context.Context, key *entity.StateKey) (any, bool) {
	log := logging.FromContext(ctx)

	raw, ok, err := m.store.Get(ctx, key.StorageKey(), key.Scope())
	if err != nil {
		log.Warn().Err(err).Str("key", key.Name()).Msg("failed to read layout state")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	value, err := decodeValue(key, raw)
	if errors.Is(err, errCoercion) {
		// Kept as stored; typed getters fall back to the default.
		log.Warn().Err(err).Str("key", key.Name()).Str("raw", raw).Msg("layout state value has unexpected type")
	}
	return value, true
}

func (m *Model) saveKeyToStorage(ctx context.Context, key *entity.StateKey) error {
	encoded, err := encodeValue(m.cache[key.Name()])
	if err != nil {
		return err
	}
	if err := m.store.Store(ctx, key.StorageKey(), encoded, key.Scope(), key.Target()); err != nil {
		return fmt.Errorf("store %s: %w", key.Name(), err)
	}
	return nil
}

func (m *Model) onStorageChanged(ctx context.Context, e port.StateChangeEvent) {
	for _, key := range registry.ordered {
		if !key.IsRuntime() || key.Scope() != entity.ScopeProfile || key.Target() != entity.TargetUser {
			continue
		}
		if key.StorageKey() != e.Key {
			continue
		}

		value, ok := m.loadKeyFromStorage(ctx, key)
		if !ok {
			value = m.DefaultValue(key)
		}
		if !reflect.DeepEqual(m.cache[key.Name()], value) {
			m.cache[key.Name()] = value
			m.onDidChangeState.Fire(StateChange{Key: key, Value: value})
		}
	}
}

// updateStateFromLegacySettings applies external edits of the legacy
// settings. Zen mode owns the activity and status bars while active.
func (m *Model) updateStateFromLegacySettings(ctx context.Context, e port.ConfigurationChangeEvent) {
	zen := m.IsZenModeActive()
	for _, key := range m.legacy.Affected(e) {
		if zen && key.ZenModeIgnore() {
			continue
		}
		if value, ok := m.legacy.Read(key); ok {
			m.SetRuntimeValueAndFire(ctx, key, value)
		}
	}
}

// RuntimeValue returns the cached value of key.
func (m *Model) RuntimeValue(key *entity.StateKey) any {
	return m.cache[key.Name()]
}

// RuntimeValueWithLegacyFallback re-derives legacy-backed keys from their
// settings before returning the cached value.
func (m *Model) RuntimeValueWithLegacyFallback(key *entity.StateKey) any {
	if value, ok := m.legacy.Read(key); ok {
		m.cache[key.Name()] = value
	}
	return m.cache[key.Name()]
}

// SetRuntimeValue updates the cache. Profile-scoped keys persist at once
// and legacy-backed keys mirror onto their settings, except for keys zen
// mode must not persist while it is active.
func (m *Model) SetRuntimeValue(ctx context.Context, key *entity.StateKey, value any) {
	value = normalizeValue(key, value)
	m.cache[key.Name()] = value

	if m.IsZenModeActive() && key.ZenModeIgnore() {
		return
	}

	if key.Scope() == entity.ScopeProfile {
		if err := m.saveKeyToStorage(ctx, key); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("key", key.Name()).Msg("failed to persist layout state")
		}
	}

	if m.legacy.Covers(key) {
		m.legacy.Write(ctx, key, value)
	}
}

// SetRuntimeValueAndFire sets a value and notifies listeners, but only
// when the value differs from the cache.
func (m *Model) SetRuntimeValueAndFire(ctx context.Context, key *entity.StateKey, value any) {
	value = normalizeValue(key, value)
	if reflect.DeepEqual(m.cache[key.Name()], value) {
		return
	}
	m.SetRuntimeValue(ctx, key, value)
	m.onDidChangeState.Fire(StateChange{Key: key, Value: value})
}

// InitializationValue returns the cached value of an initialization key.
func (m *Model) InitializationValue(key *entity.StateKey) any {
	return m.cache[key.Name()]
}

// SetInitializationValue updates the cache only; Save persists it.
func (m *Model) SetInitializationValue(key *entity.StateKey, value any) {
	m.cache[key.Name()] = normalizeValue(key, value)
}

// Save persists every key of the requested scopes. Zen-ignored keys are
// skipped while zen mode is active.
func (m *Model) Save(ctx context.Context, workspace, profile bool) error {
	zen := m.IsZenModeActive()

	var errs []error
	for _, key := range registry.ordered {
		if !(workspace && key.Scope() == entity.ScopeWorkspace) && !(profile && key.Scope() == entity.ScopeProfile) {
			continue
		}
		if zen && key.IsRuntime() && key.ZenModeIgnore() {
			continue
		}
		if err := m.saveKeyToStorage(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnDidChangeState registers a listener for value changes.
func (m *Model) OnDidChangeState(fn func(StateChange)) (unsubscribe func()) {
	return m.onDidChangeState.Subscribe(fn)
}

// Dispose stops listening to the store and configuration.
func (m *Model) Dispose() {
	for _, d := range m.disposers {
		d()
	}
	m.disposers = nil
	m.onDidChangeState.Clear()
}

// IsZenModeActive reports the cached zen mode flag.
func (m *Model) IsZenModeActive() bool {
	return m.Bool(ZenModeActive)
}

// Bool returns a boolean key, or its default when the cached value has
// another type.
func (m *Model) Bool(key *entity.StateKey) bool {
	if v, ok := m.cache[key.Name()].(bool); ok {
		return v
	}
	def, _ := m.DefaultValue(key).(bool)
	return def
}

// Number returns a numeric key, or its default when the cached value has
// another type.
func (m *Model) Number(key *entity.StateKey) float64 {
	if v, ok := m.cache[key.Name()].(float64); ok {
		return v
	}
	def, _ := m.DefaultValue(key).(float64)
	return def
}

// Position returns a position key.
func (m *Model) Position(key *entity.StateKey) entity.Position {
	if v, ok := m.cache[key.Name()].(entity.Position); ok {
		return v
	}
	def, _ := m.DefaultValue(key).(entity.Position)
	return def
}

// Alignment returns the panel alignment.
func (m *Model) Alignment() entity.PanelAlignment {
	if v, ok := m.cache[PanelAlignment.Name()].(entity.PanelAlignment); ok {
		return v
	}
	return entity.AlignmentCenter
}

// ZenExitInfo returns the zen mode exit snapshot.
func (m *Model) ZenExitInfo() entity.ZenModeExitInfo {
	if v, ok := m.cache[ZenModeExitInfo.Name()].(entity.ZenModeExitInfo); ok {
		return v
	}
	return entity.ZenModeExitInfo{}
}

// Describe lists every key with its current default for CLI listings.
func (m *Model) Describe() []entity.ConfigKeyInfo {
	infos := make([]entity.ConfigKeyInfo, 0, len(registry.ordered))
	for _, key := range registry.ordered {
		def, _ := encodeValue(m.DefaultValue(key))
		info := entity.ConfigKeyInfo{
			Key:     key.StorageKey(),
			Type:    key.ValueType().String(),
			Default: def,
			Section: key.Scope().String(),
		}
		info.Description = fmt.Sprintf("%s key, %s target", key.Kind(), key.Target())
		if key.ZenModeIgnore() {
			info.Description += ", not persisted during zen mode"
		}
		info.Values = enumValues(key)
		infos = append(infos, info)
	}
	return infos
}

func enumValues(key *entity.StateKey) []string {
	switch key.Default().(type) {
	case entity.Position:
		if key == SideBarPosition {
			return []string{string(entity.PositionLeft), string(entity.PositionRight)}
		}
		return []string{
			string(entity.PositionLeft), string(entity.PositionRight),
			string(entity.PositionBottom), string(entity.PositionTop),
		}
	case entity.PanelAlignment:
		return []string{
			string(entity.AlignmentLeft), string(entity.AlignmentCenter),
			string(entity.AlignmentRight), string(entity.AlignmentJustify),
		}
	}
	return nil
}

// ParseValue converts user input into a value for key, using the same
// coercion as stored values but rejecting mismatches.
func ParseValue(key *entity.StateKey, raw string) (any, error) {
	if key.ValueType() == entity.ValueBool && raw != "true" && raw != "false" {
		return nil, fmt.Errorf("%w: %q is not a boolean", errCoercion, raw)
	}
	value, err := decodeValue(key, raw)
	if err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case entity.Position:
		if _, err := entity.ParsePosition(string(v)); err != nil {
			return nil, err
		}
		if key == SideBarPosition && v != entity.PositionLeft && v != entity.PositionRight {
			return nil, fmt.Errorf("%w: side bar cannot be at %q", entity.ErrInvalidPosition, v)
		}
	case entity.PanelAlignment:
		if _, err := entity.ParsePanelAlignment(string(v)); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// FormatValue renders a value as it would be stored.
func FormatValue(v any) string {
	s, err := encodeValue(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
