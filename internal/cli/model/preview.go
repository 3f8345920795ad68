// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/cli/styles"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// sideBarStep is how many pixels +/- resize the side bar by.
const sideBarStep = 20

// chromeLines is the summary, status line and short help around the map.
const chromeLines = 6

// PreviewModel is the Bubble Tea model for the interactive layout preview.
// It drives a live workbench session and redraws its grid after every
// command.
type PreviewModel struct {
	help     help.Model
	keys     styles.PreviewKeyMap
	table    table.Model
	renderer *styles.LayoutRenderer

	snapshot  cli.Snapshot
	status    string
	err       error
	showHelp  bool
	showTable bool
	width     int
	height    int

	ctx     context.Context
	session *cli.Session
	theme   *styles.Theme
}

// NewPreviewModel creates a preview over an open session.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, session *cli.Session) PreviewModel {
	logging.FromContext(ctx).Debug().Msg("creating preview model")

	m := PreviewModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPreviewKeyMap(),
		table:    styles.NewStyledTable(theme, styles.PartsTableColumns(), nil, 60, len(entity.AllParts())+1),
		renderer: styles.NewLayoutRenderer(theme),
		ctx:      ctx,
		session:  session,
		theme:    theme,
		width:    80,
		height:   24,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Parts):
			m.showTable = !m.showTable
			return m, nil
		}
		if m.showTable {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		m.status, m.err = m.apply(msg)
		m.refresh()
	}
	return m, nil
}

// apply runs the layout command bound to msg and describes it.
func (m PreviewModel) apply(msg tea.KeyMsg) (string, error) {
	ctx := m.ctx
	l := m.session.Layout

	toggle := func(p entity.Part) (string, error) {
		if err := l.TogglePart(ctx, p); err != nil {
			return "", err
		}
		state := "hidden"
		if l.IsVisible(p, entity.MainWindowID) {
			state = "shown"
		}
		return fmt.Sprintf("%s %s", p.ShortName(), state), nil
	}

	switch {
	case key.Matches(msg, m.keys.SideBar):
		return toggle(entity.PartSideBar)
	case key.Matches(msg, m.keys.Panel):
		return toggle(entity.PartPanel)
	case key.Matches(msg, m.keys.AuxiliaryBar):
		return toggle(entity.PartAuxiliaryBar)
	case key.Matches(msg, m.keys.ActivityBar):
		return toggle(entity.PartActivityBar)
	case key.Matches(msg, m.keys.StatusBar):
		return toggle(entity.PartStatusBar)

	case key.Matches(msg, m.keys.Zen):
		l.ToggleZenMode(ctx, false, false)
		return fmt.Sprintf("zen mode %s", onOff(l.IsZenModeActive())), nil

	case key.Matches(msg, m.keys.Maximize):
		l.ToggleMaximizedPanel(ctx)
		return fmt.Sprintf("panel maximized %s", onOff(l.IsPanelMaximized())), nil

	case key.Matches(msg, m.keys.Center):
		centered := !l.IsMainEditorLayoutCentered()
		l.CenterMainEditorLayout(ctx, centered, false)
		return fmt.Sprintf("centered editor %s", onOff(centered)), nil

	case key.Matches(msg, m.keys.SideBarSide):
		next := entity.PositionRight
		if l.SideBarPosition() == entity.PositionRight {
			next = entity.PositionLeft
		}
		if err := l.SetSideBarPosition(ctx, next); err != nil {
			return "", err
		}
		return "side bar " + next.String(), nil

	case key.Matches(msg, m.keys.PanelSide):
		next := NextPanelPosition(l.PanelPosition())
		if err := l.SetPanelPosition(ctx, next); err != nil {
			return "", err
		}
		return "panel " + next.String(), nil

	case key.Matches(msg, m.keys.Alignment):
		next := NextPanelAlignment(l.PanelAlignment())
		if err := l.SetPanelAlignment(ctx, next); err != nil {
			return "", err
		}
		return "panel alignment " + string(next), nil

	case key.Matches(msg, m.keys.Grow):
		return m.resizeSideBar(sideBarStep)
	case key.Matches(msg, m.keys.Shrink):
		return m.resizeSideBar(-sideBarStep)
	}
	return m.status, m.err
}

func (m PreviewModel) resizeSideBar(delta float64) (string, error) {
	l := m.session.Layout
	if err := l.ResizePart(m.ctx, entity.PartSideBar, delta, 0); err != nil {
		return "", err
	}
	return fmt.Sprintf("side bar width %s", styles.FormatPixels(l.Size(entity.PartSideBar).Width)), nil
}

// refresh re-reads the session after a command.
func (m *PreviewModel) refresh() {
	m.snapshot = m.session.Snapshot()
	rows := make([]table.Row, 0, len(m.snapshot.Parts))
	for _, p := range m.snapshot.Parts {
		rows = append(rows, partRow(p).ToRow())
	}
	m.table.SetRows(rows)
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	snap := m.snapshot
	summary := m.renderer.RenderSummary(Summary(snap))

	var body string
	if m.showTable {
		body = m.table.View()
	} else {
		rows := max(m.height-chromeLines, 3)
		body = m.renderer.RenderMap(MapBoxes(snap), snap.Window.Width, snap.Window.Height, m.width, rows)
	}

	status := m.theme.Subtle.Render(m.status)
	if m.err != nil {
		status = m.theme.ErrorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, summary, body, status, m.help.View(m.keys))
}

// Snapshot returns the layout as last drawn.
func (m PreviewModel) Snapshot() cli.Snapshot {
	return m.snapshot
}

// Err returns the error of the last command, if any.
func (m PreviewModel) Err() error {
	return m.err
}

// NextPanelPosition cycles bottom, right, left, top.
func NextPanelPosition(p entity.Position) entity.Position {
	switch p {
	case entity.PositionBottom:
		return entity.PositionRight
	case entity.PositionRight:
		return entity.PositionLeft
	case entity.PositionLeft:
		return entity.PositionTop
	default:
		return entity.PositionBottom
	}
}

// NextPanelAlignment cycles center, justify, left, right.
func NextPanelAlignment(a entity.PanelAlignment) entity.PanelAlignment {
	switch a {
	case entity.AlignmentCenter:
		return entity.AlignmentJustify
	case entity.AlignmentJustify:
		return entity.AlignmentLeft
	case entity.AlignmentLeft:
		return entity.AlignmentRight
	default:
		return entity.AlignmentCenter
	}
}

// Summary builds the header of a snapshot.
func Summary(snap cli.Snapshot) styles.LayoutSummary {
	return styles.LayoutSummary{
		Workspace:      snap.Workspace.Folder,
		Width:          snap.Window.Width,
		Height:         snap.Window.Height,
		SideBar:        snap.SideBarPosition.String(),
		Panel:          snap.PanelPosition.String(),
		Alignment:      string(snap.PanelAlignment),
		Zen:            snap.ZenMode,
		PanelMaximized: snap.PanelMaximized,
		Centered:       snap.EditorCentered,
	}
}

// MapBoxes lists the visible parts of a snapshot with their boxes.
func MapBoxes(snap cli.Snapshot) []styles.MapBox {
	boxes := make([]styles.MapBox, 0, len(snap.Parts))
	for _, p := range snap.Parts {
		if !p.Visible || p.Width <= 0 || p.Height <= 0 {
			continue
		}
		part, err := entity.ParsePart(p.Part)
		if err != nil {
			continue
		}
		boxes = append(boxes, styles.MapBox{
			Part: part,
			Rect: entity.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
		})
	}
	return boxes
}

// PartRows converts a snapshot's parts for the parts table.
func PartRows(snap cli.Snapshot) []styles.PartRow {
	rows := make([]styles.PartRow, 0, len(snap.Parts))
	for _, p := range snap.Parts {
		rows = append(rows, partRow(p))
	}
	return rows
}

func partRow(p cli.PartBox) styles.PartRow {
	return styles.PartRow{Part: p.Part, Visible: p.Visible, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
