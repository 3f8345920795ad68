package port

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ConfigurationChangeEvent lists the settings touched by one change.
type ConfigurationChangeEvent struct {
	keys []string
}

// NewConfigurationChangeEvent builds an event for the given dotted keys.
func NewConfigurationChangeEvent(keys ...string) ConfigurationChangeEvent {
	lowered := make([]string, 0, len(keys))
	for _, k := range keys {
		lowered = append(lowered, strings.ToLower(k))
	}
	return ConfigurationChangeEvent{keys: lowered}
}

// Keys returns the changed keys (lowercased).
func (e ConfigurationChangeEvent) Keys() []string {
	return e.keys
}

// AffectsConfiguration reports whether the change touches key, one of its
// children, or one of its parents. Matching is case-insensitive.
func (e ConfigurationChangeEvent) AffectsConfiguration(key string) bool {
	key = strings.ToLower(key)
	for _, changed := range e.keys {
		if changed == key ||
			strings.HasPrefix(changed, key+".") ||
			strings.HasPrefix(key, changed+".") {
			return true
		}
	}
	return false
}

// Configuration is the settings service the layout engine reads and,
// for auto-correction and legacy mirroring, writes.
type Configuration interface {
	// GetValue returns the effective value of a dotted key, or nil.
	GetValue(key string) any

	// IsSet reports whether the user configured the key explicitly.
	IsSet(key string) bool

	// UpdateValue writes a user setting.
	UpdateValue(ctx context.Context, key string, value any) error

	// OnDidChangeConfiguration registers a change listener.
	OnDidChangeConfiguration(fn func(ConfigurationChangeEvent)) (unsubscribe func())
}

// ConfigString reads a string setting, returning def when unset.
func ConfigString(c Configuration, key, def string) string {
	switch v := c.GetValue(key).(type) {
	case nil:
		return def
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ConfigBool reads a boolean setting, returning def when unset or invalid.
func ConfigBool(c Configuration, key string, def bool) bool {
	switch v := c.GetValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
