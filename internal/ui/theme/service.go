package theme

import (
	"context"

	"github.com/bnema/shellgrid/internal/infrastructure/config"
	"github.com/bnema/shellgrid/internal/logging"
)

// Service implements port.ThemeService from the appearance settings.
type Service struct {
	palette      Palette
	windowBorder bool
}

// NewService resolves the palette for the configured color scheme.
func NewService(ctx context.Context, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := cfg.Appearance
	dark := ResolveColorScheme(a.ColorScheme)

	overrides := &a.LightPalette
	if dark {
		overrides = &a.DarkPalette
	}
	palette := PaletteFromConfig(overrides, dark)
	log := logging.FromContext(ctx)
	if err := palette.Validate(); err != nil {
		log.Warn().Err(err).Msg("ignoring palette overrides")
		palette = PaletteFromConfig(nil, dark)
	}

	log.Debug().
		Str("scheme", a.ColorScheme).
		Bool("dark", dark).
		Bool("window_border", a.WindowBorder).
		Msg("theme resolved")

	return &Service{palette: palette, windowBorder: a.WindowBorder}
}

// NewServiceFromPalette builds a service around an explicit palette.
func NewServiceFromPalette(p Palette, windowBorder bool) *Service {
	return &Service{palette: p, windowBorder: windowBorder}
}

// Palette returns the resolved palette.
func (s *Service) Palette() Palette {
	return s.palette
}

// WindowBorderColors implements port.ThemeService. The accent marks the
// active window; inactive windows get the border color.
func (s *Service) WindowBorderColors() (active, inactive string) {
	if !s.windowBorder {
		return "", ""
	}
	return s.palette.Accent, s.palette.Border
}
