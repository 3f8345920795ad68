package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

const (
	getStateSQL = `SELECT value FROM layout_state WHERE workspace_id = ? AND scope = ? AND key = ?`

	upsertStateSQL = `INSERT INTO layout_state (workspace_id, scope, key, value, target, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (workspace_id, scope, key) DO UPDATE SET
    value = excluded.value,
    target = excluded.target,
    updated_at = excluded.updated_at
WHERE layout_state.value != excluded.value OR layout_state.target != excluded.target`

	deleteStateSQL = `DELETE FROM layout_state WHERE workspace_id = ? AND scope = ? AND key = ?`

	listStateSQL = `SELECT key, value, target FROM layout_state WHERE workspace_id = ? AND scope = ? ORDER BY key`

	touchWorkspaceSQL = `INSERT INTO workspaces (id, folder, last_used) VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET folder = excluded.folder, last_used = excluded.last_used`

	listWorkspacesSQL = `SELECT id, folder, last_used FROM workspaces ORDER BY last_used DESC`
)

// StateStore implements port.StateStore on the layout_state table.
// Workspace rows are keyed by the workspace ID; profile rows are shared.
type StateStore struct {
	provider    port.DatabaseProvider
	workspaceID string

	listeners map[entity.StorageScope]*event.Emitter[port.StateChangeEvent]

	mu     sync.Mutex
	seen   map[string]string
	synced bool
}

// WorkspaceRecord is one row of the workspaces table.
type WorkspaceRecord struct {
	ID       string    `json:"id" yaml:"id"`
	Folder   string    `json:"folder" yaml:"folder"`
	LastUsed time.Time `json:"lastUsed" yaml:"lastUsed"`
}

// NewStateStore creates a store for one workspace.
func NewStateStore(provider port.DatabaseProvider, workspaceID string) *StateStore {
	return &StateStore{
		provider:    provider,
		workspaceID: workspaceID,
		listeners: map[entity.StorageScope]*event.Emitter[port.StateChangeEvent]{
			entity.ScopeWorkspace: {},
			entity.ScopeProfile:   {},
		},
		seen: make(map[string]string),
	}
}

func (s *StateStore) rowOwner(scope entity.StorageScope) string {
	if scope == entity.ScopeProfile {
		return ""
	}
	return s.workspaceID
}

// Get implements port.StateStore.
func (s *StateStore) Get(ctx context.Context, key string, scope entity.StorageScope) (string, bool, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, getStateSQL, s.rowOwner(scope), scope.String(), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s state %q: %w", scope, key, err)
	}
	return value, true, nil
}

// Store implements port.StateStore. Listeners fire only when the stored
// row actually changed.
func (s *StateStore) Store(ctx context.Context, key, value string, scope entity.StorageScope, target entity.StorageTarget) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, upsertStateSQL,
		s.rowOwner(scope), scope.String(), key, value, target.String(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store %s state %q: %w", scope, key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store %s state %q: %w", scope, key, err)
	}

	if scope == entity.ScopeProfile {
		s.mu.Lock()
		s.seen[key] = value
		s.mu.Unlock()
	}

	if affected > 0 {
		logging.FromContext(ctx).Trace().
			Str("key", key).
			Str("scope", scope.String()).
			Msg("layout state stored")
		s.listeners[scope].Fire(port.StateChangeEvent{Key: key, Scope: scope, Target: target})
	}
	return nil
}

// Remove implements port.StateStore.
func (s *StateStore) Remove(ctx context.Context, key string, scope entity.StorageScope) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, deleteStateSQL, s.rowOwner(scope), scope.String(), key)
	if err != nil {
		return fmt.Errorf("remove %s state %q: %w", scope, key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove %s state %q: %w", scope, key, err)
	}

	if scope == entity.ScopeProfile {
		s.mu.Lock()
		delete(s.seen, key)
		s.mu.Unlock()
	}

	if affected > 0 {
		s.listeners[scope].Fire(port.StateChangeEvent{Key: key, Scope: scope})
	}
	return nil
}

type stateRow struct {
	key    string
	value  string
	target entity.StorageTarget
}

func (s *StateStore) list(ctx context.Context, scope entity.StorageScope) ([]stateRow, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listStateSQL, s.rowOwner(scope), scope.String())
	if err != nil {
		return nil, fmt.Errorf("list %s state: %w", scope, err)
	}
	defer func() { _ = rows.Close() }()

	var result []stateRow
	for rows.Next() {
		var (
			row    stateRow
			target string
		)
		if err := rows.Scan(&row.key, &row.value, &target); err != nil {
			return nil, fmt.Errorf("scan %s state: %w", scope, err)
		}
		if target == entity.TargetUser.String() {
			row.target = entity.TargetUser
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Keys implements port.StateStore.
func (s *StateStore) Keys(ctx context.Context, scope entity.StorageScope) ([]string, error) {
	rows, err := s.list(ctx, scope)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.key)
	}
	return keys, nil
}

// OnDidChangeValue implements port.StateStore.
func (s *StateStore) OnDidChangeValue(scope entity.StorageScope, fn func(port.StateChangeEvent)) func() {
	return s.listeners[scope].Subscribe(fn)
}

// Sync re-reads the profile rows and notifies listeners about values that
// another process changed or removed since the previous Sync. The first
// call only records a baseline.
func (s *StateStore) Sync(ctx context.Context) error {
	rows, err := s.list(ctx, entity.ScopeProfile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	var changed []port.StateChangeEvent
	current := make(map[string]string, len(rows))
	for _, row := range rows {
		current[row.key] = row.value
		if prev, ok := s.seen[row.key]; s.synced && (!ok || prev != row.value) {
			changed = append(changed, port.StateChangeEvent{Key: row.key, Scope: entity.ScopeProfile, Target: row.target})
		}
	}
	if s.synced {
		for key := range s.seen {
			if _, ok := current[key]; !ok {
				changed = append(changed, port.StateChangeEvent{Key: key, Scope: entity.ScopeProfile})
			}
		}
	}
	s.seen = current
	s.synced = true
	s.mu.Unlock()

	if len(changed) > 0 {
		logging.FromContext(ctx).Debug().Int("count", len(changed)).Msg("profile layout state changed externally")
	}
	for _, ev := range changed {
		s.listeners[entity.ScopeProfile].Fire(ev)
	}
	return nil
}

// TouchWorkspace records folder as the location of this store's workspace.
func (s *StateStore) TouchWorkspace(ctx context.Context, folder string) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, touchWorkspaceSQL, s.workspaceID, folder, time.Now().UTC()); err != nil {
		return fmt.Errorf("touch workspace: %w", err)
	}
	return nil
}

// Workspaces lists known workspaces, most recently used first.
func (s *StateStore) Workspaces(ctx context.Context) ([]WorkspaceRecord, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listWorkspacesSQL)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []WorkspaceRecord
	for rows.Next() {
		var (
			rec      WorkspaceRecord
			lastUsed string
		)
		if err := rows.Scan(&rec.ID, &rec.Folder, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		rec.LastUsed = parseTimestamp(lastUsed)
		result = append(result, rec)
	}
	return result, rows.Err()
}

// parseTimestamp accepts the driver's RFC 3339 encoding and SQLite's
// CURRENT_TIMESTAMP format.
func parseTimestamp(v string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateTime} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// WorkspaceID returns the ID workspace rows are keyed by.
func (s *StateStore) WorkspaceID() string {
	return s.workspaceID
}

var _ port.StateStore = (*StateStore)(nil)
