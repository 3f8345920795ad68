package entity

import "reflect"

// StorageScope selects which persisted store a key lives in.
type StorageScope int

const (
	// ScopeWorkspace values belong to the opened folder/workspace.
	ScopeWorkspace StorageScope = iota
	// ScopeProfile values follow the user profile across workspaces.
	ScopeProfile
)

func (s StorageScope) String() string {
	if s == ScopeProfile {
		return "profile"
	}
	return "workspace"
}

// StorageTarget is the durability class of a stored value.
type StorageTarget int

const (
	// TargetMachine values stay on this machine.
	TargetMachine StorageTarget = iota
	// TargetUser values may be synced with the user's other machines.
	TargetUser
)

func (t StorageTarget) String() string {
	if t == TargetUser {
		return "user"
	}
	return "machine"
}

// StateKeyKind separates live values from startup-only seeds.
type StateKeyKind int

const (
	// KindRuntime keys change throughout the session.
	KindRuntime StateKeyKind = iota
	// KindInitialization keys seed initial sizes and are saved at shutdown.
	KindInitialization
)

func (k StateKeyKind) String() string {
	if k == KindInitialization {
		return "initialization"
	}
	return "runtime"
}

// ValueType is the coercion class derived from a key's default value.
type ValueType int

const (
	ValueBool ValueType = iota
	ValueNumber
	ValueString
	ValueObject
)

func (v ValueType) String() string {
	switch v {
	case ValueBool:
		return "bool"
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	}
	return "object"
}

// StateKey describes one layout setting. Keys are immutable once built and
// compared by pointer identity.
type StateKey struct {
	name          string
	scope         StorageScope
	target        StorageTarget
	kind          StateKeyKind
	defaultValue  any
	valueType     ValueType
	zenModeIgnore bool
}

// StateKeyOption customises a runtime key.
type StateKeyOption func(*StateKey)

// WithZenModeIgnore marks a key whose value zen mode may override but must
// not persist.
func WithZenModeIgnore() StateKeyOption {
	return func(k *StateKey) { k.zenModeIgnore = true }
}

// NewRuntimeKey creates a key for a live value.
func NewRuntimeKey(name string, scope StorageScope, target StorageTarget, def any, opts ...StateKeyOption) *StateKey {
	k := newStateKey(name, scope, target, KindRuntime, def)
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// NewInitializationKey creates a key read once at startup.
func NewInitializationKey(name string, scope StorageScope, target StorageTarget, def any) *StateKey {
	return newStateKey(name, scope, target, KindInitialization, def)
}

func newStateKey(name string, scope StorageScope, target StorageTarget, kind StateKeyKind, def any) *StateKey {
	return &StateKey{
		name:         name,
		scope:        scope,
		target:       target,
		kind:         kind,
		defaultValue: def,
		valueType:    valueTypeOf(def),
	}
}

func valueTypeOf(v any) ValueType {
	switch v.(type) {
	case bool:
		return ValueBool
	case int, int64, float64:
		return ValueNumber
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.String {
		return ValueString
	}
	return ValueObject
}

func (k *StateKey) Name() string          { return k.name }
func (k *StateKey) Scope() StorageScope   { return k.scope }
func (k *StateKey) Target() StorageTarget { return k.target }
func (k *StateKey) Kind() StateKeyKind    { return k.kind }
func (k *StateKey) Default() any          { return k.defaultValue }
func (k *StateKey) ValueType() ValueType  { return k.valueType }
func (k *StateKey) ZenModeIgnore() bool   { return k.zenModeIgnore }

// IsRuntime reports whether the key is a runtime key.
func (k *StateKey) IsRuntime() bool { return k.kind == KindRuntime }

// StorageKey is the name under which the value is persisted.
func (k *StateKey) StorageKey() string { return "workbench." + k.name }

func (k *StateKey) String() string { return k.name }
