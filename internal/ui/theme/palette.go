// Package theme resolves the color palette used for window borders and
// the terminal preview.
package theme

import (
	"fmt"
	"regexp"

	"github.com/bnema/shellgrid/internal/infrastructure/config"
)

// Palette holds semantic color tokens as hex strings.
type Palette struct {
	Background     string
	Surface        string // title bar, status bar, panel
	SurfaceVariant string // side bar, auxiliary bar
	Text           string
	Muted          string
	Accent         string // active window border, status bar
	Border         string // inactive window border

	// Status colors are fixed per scheme.
	Success     string
	Warning     string
	Destructive string
}

// DefaultDarkPalette is the palette of the dark scheme.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#1e1e1e",
		Surface:        "#252526",
		SurfaceVariant: "#2d2d30",
		Text:           "#d4d4d4",
		Muted:          "#8b8b8b",
		Accent:         "#3794ff",
		Border:         "#3c3c3c",
		Success:        "#89d185",
		Warning:        "#cca700",
		Destructive:    "#f14c4c",
	}
}

// DefaultLightPalette is the palette of the light scheme.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#ffffff",
		Surface:        "#f3f3f3",
		SurfaceVariant: "#e8e8e8",
		Text:           "#333333",
		Muted:          "#717171",
		Accent:         "#005fb8",
		Border:         "#d4d4d4",
		Success:        "#388a34",
		Warning:        "#bf8803",
		Destructive:    "#e51400",
	}
}

// editable names the tokens a config file may override, in the order they
// are reported.
var editable = []struct {
	name string
	get  func(*Palette) *string
	from func(*config.ColorPalette) string
}{
	{"background", func(p *Palette) *string { return &p.Background }, func(c *config.ColorPalette) string { return c.Background }},
	{"surface", func(p *Palette) *string { return &p.Surface }, func(c *config.ColorPalette) string { return c.Surface }},
	{"surfaceVariant", func(p *Palette) *string { return &p.SurfaceVariant }, func(c *config.ColorPalette) string { return c.SurfaceVariant }},
	{"text", func(p *Palette) *string { return &p.Text }, func(c *config.ColorPalette) string { return c.Text }},
	{"muted", func(p *Palette) *string { return &p.Muted }, func(c *config.ColorPalette) string { return c.Muted }},
	{"accent", func(p *Palette) *string { return &p.Accent }, func(c *config.ColorPalette) string { return c.Accent }},
	{"border", func(p *Palette) *string { return &p.Border }, func(c *config.ColorPalette) string { return c.Border }},
}

// PaletteFromConfig overlays the non-empty colors of cfg on the default
// palette of the scheme.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	p := DefaultLightPalette()
	if isDark {
		p = DefaultDarkPalette()
	}
	if cfg == nil {
		return p
	}
	for _, tok := range editable {
		*tok.get(&p) = Coalesce(tok.from(cfg), *tok.get(&p))
	}
	return p
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var hexColor = regexp.MustCompile(`^#(?:[[:xdigit:]]{3}|[[:xdigit:]]{6}|[[:xdigit:]]{8})$`)

// ValidateHexColor accepts #rgb, #rrggbb, #rrggbbaa and the empty string.
func ValidateHexColor(color string) error {
	if color != "" && !hexColor.MatchString(color) {
		return fmt.Errorf("invalid hex color %q", color)
	}
	return nil
}

// Validate checks every editable token.
func (p Palette) Validate() error {
	for _, tok := range editable {
		if err := ValidateHexColor(*tok.get(&p)); err != nil {
			return fmt.Errorf("%s: %w", tok.name, err)
		}
	}
	return nil
}
