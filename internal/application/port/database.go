// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout state database. The connection may
// be opened on first use, so commands that never read layout state never
// pay for it.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// Path is the database file, for display.
	Path() string
	IsInitialized() bool
	Close() error
}
