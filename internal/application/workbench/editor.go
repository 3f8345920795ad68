package workbench

import (
	"context"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// IsMainEditorLayoutCentered reports the stored centered-layout flag.
func (l *Layout) IsMainEditorLayoutCentered() bool {
	return l.model.Bool(layoutstate.EditorCentered)
}

// CenterMainEditorLayout centers the editor groups. With auto-resize on,
// a layout that cannot be centered meaningfully (several groups without
// a maximized one, or a diff editor) stays uncentered in the view but
// keeps the stored flag.
func (l *Layout) CenterMainEditorLayout(ctx context.Context, active, skipLayout bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.EditorCentered, active)

	apply := active
	if port.ConfigBool(l.deps.Config, entity.SettingCenteredLayoutAutoResize, true) {
		groups := l.deps.EditorGroups
		if (groups.GroupCount() > 1 && !groups.HasMaximizedGroup()) || l.deps.Editors.ActiveEditorIsComplex() {
			apply = false
		}
	}

	if l.deps.EditorGroups.IsLayoutCentered() != apply {
		l.deps.EditorGroups.CenterLayout(apply)
		if !skipLayout {
			l.Layout(ctx)
		}
	}

	logging.FromContext(ctx).Debug().Bool("active", active).Bool("applied", apply).Msg("centered editor layout")
	l.events.didChangeMainEditorCentered.Fire(active)
}
