package config

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
)

// MemoryConfiguration is a port.Configuration that keeps settings in
// memory. It backs --ephemeral runs and tests.
type MemoryConfiguration struct {
	mu       sync.RWMutex
	defaults map[string]any
	values   map[string]any
	changes  event.Emitter[port.ConfigurationChangeEvent]
}

// NewMemoryConfiguration returns a configuration seeded with the defaults
// and the given user values. Keys are matched case-insensitively.
func NewMemoryConfiguration(values map[string]any) *MemoryConfiguration {
	c := &MemoryConfiguration{
		defaults: make(map[string]any),
		values:   make(map[string]any),
	}
	for k, v := range DefaultSettings() {
		c.defaults[strings.ToLower(k)] = v
	}
	for k, v := range values {
		c.values[strings.ToLower(k)] = v
	}
	return c
}

// GetValue implements port.Configuration.
func (c *MemoryConfiguration) GetValue(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	k := strings.ToLower(key)
	if v, ok := c.values[k]; ok {
		return v
	}
	return c.defaults[k]
}

// IsSet implements port.Configuration.
func (c *MemoryConfiguration) IsSet(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[strings.ToLower(key)]
	return ok
}

// UpdateValue implements port.Configuration. Listeners run synchronously
// when the value changed.
func (c *MemoryConfiguration) UpdateValue(_ context.Context, key string, value any) error {
	k := strings.ToLower(key)
	c.mu.Lock()
	if old, ok := c.values[k]; ok && reflect.DeepEqual(old, value) {
		c.mu.Unlock()
		return nil
	}
	c.values[k] = value
	c.mu.Unlock()

	c.changes.Fire(port.NewConfigurationChangeEvent(key))
	return nil
}

// Unset removes a user value so the default applies again.
func (c *MemoryConfiguration) Unset(key string) {
	k := strings.ToLower(key)
	c.mu.Lock()
	_, ok := c.values[k]
	delete(c.values, k)
	c.mu.Unlock()
	if ok {
		c.changes.Fire(port.NewConfigurationChangeEvent(key))
	}
}

// OnDidChangeConfiguration implements port.Configuration.
func (c *MemoryConfiguration) OnDidChangeConfiguration(fn func(port.ConfigurationChangeEvent)) func() {
	return c.changes.Subscribe(fn)
}

var _ port.Configuration = (*MemoryConfiguration)(nil)
