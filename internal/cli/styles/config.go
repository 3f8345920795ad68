package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// ConfigRenderer renders the output of the config commands.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer returns a renderer using theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// line renders one indented "icon text" row.
func (r *ConfigRenderer) line(icon string, color lipgloss.Color, text string) string {
	return "  " + fg(color).Render(icon) + " " + text + "\n"
}

func (r *ConfigRenderer) fileLine(path string) string {
	return r.line(IconConfig, r.theme.Accent, "Config "+r.theme.Subtle.Render(path))
}

// RenderConfigInfo shows the config file and the number of pending rewrites.
func (r *ConfigRenderer) RenderConfigInfo(path string, pending int) string {
	out := "\n" + r.fileLine(path)
	if pending > 0 {
		count := fg(r.theme.Warning).Render(fmt.Sprint(pending))
		out += r.line(IconInfo, r.theme.Accent, count+" legacy settings to migrate")
	}
	return out
}

// RenderRewrites lists the pending legacy rewrites.
func (r *ConfigRenderer) RenderRewrites(rewrites []string) string {
	if len(rewrites) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Rewrites (%d):\n", len(rewrites))
	for _, rw := range rewrites {
		sb.WriteString("  " + r.line(IconCursor, r.theme.Accent, r.theme.Normal.Render(rw)))
	}
	return sb.String()
}

// RenderMigrationSuccess reports how many settings were rewritten.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	text := fmt.Sprintf("Migrated %s legacy settings in %s",
		r.theme.Highlight.Render(fmt.Sprint(count)), r.theme.Subtle.Render(filepath.Base(path)))
	return "\n" + r.line(IconCheck, r.theme.Success, text)
}

// RenderUpToDate reports a config file with nothing to migrate.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	return "\n" + r.fileLine(path) + r.line(IconCheck, r.theme.Success, "Config is up to date")
}

// RenderError renders a config error.
func (r *ConfigRenderer) RenderError(err error) string {
	return "\n" + r.line(IconX, r.theme.Error, fmt.Sprintf("Config error: %v", err))
}

// RenderMigrateHint points at the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return "\n  " + r.theme.Subtle.Render("Run 'shellgrid config migrate' to rewrite legacy layout settings.") + "\n"
}

// RenderNoConfigFile reports a config file that does not exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	return "\n" + r.fileLine(path) + "  " + r.theme.Subtle.Render("Config file will be created on first run with all defaults.") + "\n"
}

// RenderKeys lists setting or state keys grouped by section.
func (r *ConfigRenderer) RenderKeys(keys []entity.ConfigKeyInfo) string {
	t := r.theme
	var sb strings.Builder
	section := ""
	for _, k := range keys {
		if k.Section != section {
			section = k.Section
			fmt.Fprintf(&sb, "\n  %s\n", t.Subtitle.Render(section))
		}
		def := "default " + k.Default
		if len(k.Values) > 0 {
			def += " | " + strings.Join(k.Values, ", ")
		}
		fmt.Fprintf(&sb, "    %s %s\n      %s\n", t.Highlight.Render(k.Key), t.Subtle.Render(k.Type), t.Normal.Render(def))
		if k.Description != "" {
			fmt.Fprintf(&sb, "      %s\n", t.Subtle.Render(k.Description))
		}
	}
	return sb.String()
}
