package port

import (
	"context"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// StateChangeEvent is raised when a stored value changes, whether the
// change came from this process or from another one sharing the store.
type StateChangeEvent struct {
	Key    string
	Scope  entity.StorageScope
	Target entity.StorageTarget
}

// StateStore is the opaque persisted key/value store backing layout state.
// Values are strings; callers encode booleans, numbers and objects.
type StateStore interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, key string, scope entity.StorageScope) (string, bool, error)

	// Store writes a value under key in the given scope.
	Store(ctx context.Context, key, value string, scope entity.StorageScope, target entity.StorageTarget) error

	// Remove deletes a value. Removing a missing key is not an error.
	Remove(ctx context.Context, key string, scope entity.StorageScope) error

	// Keys lists stored keys of a scope, sorted.
	Keys(ctx context.Context, scope entity.StorageScope) ([]string, error)

	// OnDidChangeValue registers a listener for changes in scope.
	// The returned function removes the listener.
	OnDidChangeValue(scope entity.StorageScope, fn func(StateChangeEvent)) (unsubscribe func())
}
