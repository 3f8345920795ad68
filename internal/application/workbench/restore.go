package workbench

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/logging"
)

type restoreState struct {
	ready    chan struct{}
	restored chan struct{}
	started  atomic.Bool
	done     atomic.Bool
}

func newRestoreState() *restoreState {
	return &restoreState{
		ready:    make(chan struct{}),
		restored: make(chan struct{}),
	}
}

// WhenReady is closed once editors, default views and pane containers
// have been opened.
func (l *Layout) WhenReady() <-chan struct{} {
	return l.restore.ready
}

// WhenRestored is closed once the editor groups finished restoring too.
func (l *Layout) WhenRestored() <-chan struct{} {
	return l.restore.restored
}

// IsRestored reports whether restoration has completed.
func (l *Layout) IsRestored() bool {
	return l.restore.done.Load()
}

// Restore re-applies zen mode and the centered editor, then opens editors
// and view containers in the background. Individual failures are logged
// and never abort the other tasks. It returns once the tasks are started.
func (l *Layout) Restore(ctx context.Context) error {
	if l.grid == nil {
		return fmt.Errorf("restore: %w", ErrGridNotCreated)
	}
	if !l.restore.started.CompareAndSwap(false, true) {
		return nil
	}
	ctx = logging.WithComponent(ctx, "layout")

	l.restoreZenMode(ctx)
	if l.IsMainEditorLayoutCentered() {
		l.CenterMainEditorLayout(ctx, true, true)
	}

	var ready, restored errgroup.Group
	editorsOpened := make(chan struct{})
	defaultViewsOpened := make(chan struct{})

	ready.Go(func() error {
		defer close(editorsOpened)
		l.restoreEditors(ctx)
		return nil
	})
	ready.Go(func() error {
		defer close(defaultViewsOpened)
		l.openDefaultViews(ctx)
		return nil
	})
	for loc, id := range map[port.ViewContainerLocation]string{
		port.LocationSidebar:      l.toRestore.sideBar,
		port.LocationPanel:        l.toRestore.panel,
		port.LocationAuxiliaryBar: l.toRestore.auxiliaryBar,
	} {
		if id == "" {
			continue
		}
		ready.Go(func() error {
			<-defaultViewsOpened
			l.restoreViewContainer(ctx, loc, id)
			return nil
		})
	}

	restored.Go(func() error {
		<-editorsOpened
		return nil
	})
	restored.Go(func() error {
		if err := l.deps.EditorGroups.WhenRestored(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("editor groups did not restore")
		}
		return nil
	})

	go func() {
		_ = ready.Wait()
		close(l.restore.ready)

		_ = restored.Wait()
		l.restore.done.Store(true)
		close(l.restore.restored)
		logging.FromContext(ctx).Info().Msg("workbench restored")
	}()
	return nil
}

// restoreEditors waits for the editor groups, then opens the requested
// editors one group at a time.
func (l *Layout) restoreEditors(ctx context.Context) {
	log := logging.FromContext(ctx)

	if err := l.deps.EditorGroups.WhenReady(ctx); err != nil {
		log.Warn().Err(err).Msg("editor groups not ready, skipping editors")
		return
	}
	if len(l.opts.EditorsToOpen) == 0 {
		return
	}

	var order []int
	byGroup := make(map[int][]port.EditorRequest)
	for _, req := range l.opts.EditorsToOpen {
		if _, seen := byGroup[req.Group]; !seen {
			order = append(order, req.Group)
		}
		byGroup[req.Group] = append(byGroup[req.Group], req)
	}
	for _, group := range order {
		if err := l.deps.Editors.OpenEditors(ctx, byGroup[group]); err != nil {
			log.Warn().Err(err).Int("group", group).Msg("failed to open editors")
		}
	}
}

func (l *Layout) openDefaultViews(ctx context.Context) {
	for _, view := range l.opts.DefaultViews {
		if err := l.deps.PaneComposites.OpenPaneComposite(ctx, view.ID, view.Location, false); err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Str("container", view.ID).
				Str("location", view.Location.String()).
				Msg("failed to open default view")
		}
	}
}

// restoreViewContainer opens the container picked at Init unless a
// default view already claimed the location. On failure the location's
// default container is tried.
func (l *Layout) restoreViewContainer(ctx context.Context, loc port.ViewContainerLocation, id string) {
	log := logging.FromContext(ctx).With().Str("location", loc.String()).Logger()

	if _, active := l.deps.PaneComposites.ActivePaneCompositeID(loc); active {
		return
	}
	err := l.deps.PaneComposites.OpenPaneComposite(ctx, id, loc, false)
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("container", id).Msg("failed to restore view container")

	fallback, ok := l.deps.ViewDescriptors.DefaultViewContainerID(loc)
	if !ok || fallback == id {
		return
	}
	if err := l.deps.PaneComposites.OpenPaneComposite(ctx, fallback, loc, false); err != nil {
		log.Warn().Err(err).Str("container", fallback).Msg("failed to open default view container")
	}
}
