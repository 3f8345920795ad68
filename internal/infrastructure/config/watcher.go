package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/shellgrid/internal/logging"
)

// Watch reloads config.toml whenever it changes on disk. Listeners are
// notified through the manager's dispatcher. Calling Watch twice is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config-watcher"))
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Stringer("op", e.Op).Str("file", e.Name).Msg("config file event")
		changed, err := m.reread()
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("config reload failed")
		case len(changed) > 0:
			// Writes made by UpdateValue come back here with nothing new.
			log.Debug().Strs("changed", changed).Msg("config changed on disk")
		}
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// Reload re-reads config.toml now, exactly as a file event would.
func (m *Manager) Reload() error {
	_, err := m.reread()
	return err
}

// reread loads the file into viper, refreshes the typed config and
// dispatches a notification for the keys that changed.
func (m *Manager) reread() ([]string, error) {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	changed, err := m.refreshLocked()
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if len(changed) == 0 {
		m.mu.Unlock()
		return nil, nil
	}
	cfg, callbacks := m.config, m.copyCallbacksLocked()
	m.mu.Unlock()

	m.dispatch(func() { m.notify(changed, cfg, callbacks) })
	return changed, nil
}
