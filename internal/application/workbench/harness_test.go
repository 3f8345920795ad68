package workbench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/infrastructure/config"
	"github.com/bnema/shellgrid/internal/infrastructure/headless"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/memory"
	"github.com/bnema/shellgrid/internal/ui/layout"
	"github.com/bnema/shellgrid/internal/ui/theme"
)

// harness is a workbench laid out at 1200x800 on headless parts.
type harness struct {
	ctx    context.Context
	layout *workbench.Layout

	parts         *headless.Parts
	store         *memory.StateStore
	cfg           *config.MemoryConfiguration
	host          *headless.Host
	window        *headless.Window
	panes         *headless.PaneComposites
	groups        *headless.EditorGroups
	editors       *headless.Editors
	notifications *headless.Notifications
}

type harnessConfig struct {
	store    *memory.StateStore
	settings map[string]any
	theme    port.ThemeService
	opts     workbench.Options
	noGrid   bool

	panes   port.PaneCompositeService
	views   port.ViewDescriptorService
	editors port.EditorService
}

type harnessOption func(*harnessConfig)

func withStore(s *memory.StateStore) harnessOption {
	return func(c *harnessConfig) { c.store = s }
}

func withSettings(settings map[string]any) harnessOption {
	return func(c *harnessConfig) { c.settings = settings }
}

func withTheme(t port.ThemeService) harnessOption {
	return func(c *harnessConfig) { c.theme = t }
}

func withOptions(opts workbench.Options) harnessOption {
	return func(c *harnessConfig) { c.opts = opts }
}

// withServices swaps the headless pane and editor services for others,
// typically mocks. Nil arguments keep the headless ones.
func withServices(panes port.PaneCompositeService, views port.ViewDescriptorService, editors port.EditorService) harnessOption {
	return func(c *harnessConfig) {
		c.panes, c.views, c.editors = panes, views, editors
	}
}

func withoutGrid() harnessOption {
	return func(c *harnessConfig) { c.noGrid = true }
}

func newHarness(t *testing.T, options ...harnessOption) *harness {
	t.Helper()

	hc := harnessConfig{
		store: memory.NewStateStore(),
		theme: theme.NewServiceFromPalette(theme.DefaultDarkPalette(), false),
		opts:  workbench.Options{IsNative: true},
	}
	for _, o := range options {
		o(&hc)
	}

	ctx := context.Background()
	parts := headless.NewParts()
	h := &harness{
		ctx:           ctx,
		parts:         parts,
		store:         hc.store,
		cfg:           config.NewMemoryConfiguration(hc.settings),
		host:          headless.NewHost(),
		window:        headless.NewWindow(entity.MainWindowID, 1200, 800),
		panes:         headless.NewPaneComposites(parts, headless.DefaultViewContainers()...),
		groups:        headless.NewEditorGroups(parts),
		editors:       headless.NewEditors(),
		notifications: headless.NewNotifications(),
	}

	var (
		panes   port.PaneCompositeService  = h.panes
		views   port.ViewDescriptorService = h.panes
		editors port.EditorService         = h.editors
	)
	if hc.panes != nil {
		panes = hc.panes
	}
	if hc.views != nil {
		views = hc.views
	}
	if hc.editors != nil {
		editors = hc.editors
	}

	h.layout = workbench.New(workbench.Deps{
		Store:           h.store,
		Config:          h.cfg,
		Grids:           layout.NewFactory(ctx),
		PaneComposites:  panes,
		ViewDescriptors: views,
		EditorGroups:    h.groups,
		Editors:         editors,
		Host:            h.host,
		Notifications:   h.notifications,
		Theme:           hc.theme,
		MainWindow:      h.window,
	}, hc.opts)
	t.Cleanup(h.layout.Dispose)

	for _, p := range entity.AllParts() {
		require.NoError(t, h.layout.RegisterPart(p, parts.Get(p)))
	}

	t.Cleanup(h.host.OnDidChangeFullScreen(func(c headless.FullScreenChange) {
		h.layout.OnFullscreenChanged(ctx, c.Window, c.FullScreen)
	}))

	h.layout.Init(ctx)
	if hc.noGrid {
		return h
	}
	require.NoError(t, h.layout.CreateGrid(ctx))
	h.layout.Layout(ctx)
	return h
}

func (h *harness) visible(p entity.Part) bool {
	return h.layout.IsVisible(p, entity.MainWindowID)
}

func (h *harness) rect(t *testing.T, p entity.Part) entity.Rect {
	t.Helper()
	r, ok := h.parts.Rects()[p]
	require.True(t, ok, "%s has no box", p.ShortName())
	return r
}

func (h *harness) showPanel(t *testing.T) {
	t.Helper()
	require.NoError(t, h.layout.SetPartHidden(h.ctx, false, entity.PartPanel))
	require.True(t, h.visible(entity.PartPanel))
}
