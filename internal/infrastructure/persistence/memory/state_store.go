// Package memory provides an in-process state store for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

type storedValue struct {
	value  string
	target entity.StorageTarget
}

// StateStore is a map-backed port.StateStore.
type StateStore struct {
	mu        sync.RWMutex
	scopes    map[entity.StorageScope]map[string]storedValue
	listeners map[entity.StorageScope]*event.Emitter[port.StateChangeEvent]
	writes    int
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{
		scopes: map[entity.StorageScope]map[string]storedValue{
			entity.ScopeWorkspace: {},
			entity.ScopeProfile:   {},
		},
		listeners: map[entity.StorageScope]*event.Emitter[port.StateChangeEvent]{
			entity.ScopeWorkspace: {},
			entity.ScopeProfile:   {},
		},
	}
}

// Get implements port.StateStore.
func (s *StateStore) Get(_ context.Context, key string, scope entity.StorageScope) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.scopes[scope][key]
	return v.value, ok, nil
}

// Store implements port.StateStore. Writing an unchanged value does not
// notify listeners.
func (s *StateStore) Store(_ context.Context, key, value string, scope entity.StorageScope, target entity.StorageTarget) error {
	s.mu.Lock()
	s.writes++
	prev, existed := s.scopes[scope][key]
	s.scopes[scope][key] = storedValue{value: value, target: target}
	s.mu.Unlock()

	if !existed || prev.value != value {
		s.listeners[scope].Fire(port.StateChangeEvent{Key: key, Scope: scope, Target: target})
	}
	return nil
}

// Remove implements port.StateStore.
func (s *StateStore) Remove(_ context.Context, key string, scope entity.StorageScope) error {
	s.mu.Lock()
	prev, existed := s.scopes[scope][key]
	delete(s.scopes[scope], key)
	s.mu.Unlock()

	if existed {
		s.listeners[scope].Fire(port.StateChangeEvent{Key: key, Scope: scope, Target: prev.target})
	}
	return nil
}

// Keys implements port.StateStore.
func (s *StateStore) Keys(_ context.Context, scope entity.StorageScope) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.scopes[scope]))
	for k := range s.scopes[scope] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// OnDidChangeValue implements port.StateStore.
func (s *StateStore) OnDidChangeValue(scope entity.StorageScope, fn func(port.StateChangeEvent)) func() {
	return s.listeners[scope].Subscribe(fn)
}

// Writes returns how many Store calls were made.
func (s *StateStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

var _ port.StateStore = (*StateStore)(nil)
