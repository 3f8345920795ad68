// Package xdg adapts the XDG directory lookup to port.XDGPaths.
package xdg

import (
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/config"
)

// Adapter resolves the directories on every call so environment changes
// are picked up.
type Adapter struct {
	resolve func() (config.Dirs, error)
}

// New returns an adapter over config.Resolve.
func New() *Adapter {
	return &Adapter{resolve: config.Resolve}
}

func (a *Adapter) path(pick func(config.Dirs) string) (string, error) {
	d, err := a.resolve()
	if err != nil {
		return "", err
	}
	return pick(d), nil
}

func (a *Adapter) ConfigDir() (string, error) {
	return a.path(func(d config.Dirs) string { return d.Config })
}

func (a *Adapter) DataDir() (string, error) {
	return a.path(func(d config.Dirs) string { return d.Data })
}

func (a *Adapter) ConfigFile() (string, error)   { return a.path(config.Dirs.ConfigFile) }
func (a *Adapter) SchemaFile() (string, error)   { return a.path(config.Dirs.SchemaFile) }
func (a *Adapter) DatabaseFile() (string, error) { return a.path(config.Dirs.DatabaseFile) }
func (a *Adapter) ManDir() (string, error)       { return a.path(config.Dirs.ManDir) }

var _ port.XDGPaths = (*Adapter)(nil)
