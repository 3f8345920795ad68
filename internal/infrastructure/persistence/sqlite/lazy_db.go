package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/logging"
)

// ErrClosed is returned by LazyDB.DB after Close.
var ErrClosed = errors.New("layout database closed")

// LazyDB opens the database on the first DB call. Loading the WASM engine
// and migrating costs tens of milliseconds, which commands like version
// or config schema should not pay.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	tried  bool
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on first use. A failed open is
// remembered and returned to every later caller.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if !l.tried {
		l.tried = true
		l.db, l.err = NewConnection(ctx, l.path)
		if l.err != nil {
			logging.FromContext(ctx).Error().Err(l.err).Str("path", l.path).Msg("layout database unavailable")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("open layout database: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file.
func (l *LazyDB) Path() string {
	return l.path
}
