package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWorkbench(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateZenMode(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateEnum(field, value string, allowed ...string) []string {
	if slices.Contains(allowed, value) {
		return nil
	}
	return []string{fmt.Sprintf("%s must be one of %s (got %q)", field, strings.Join(allowed, ", "), value)}
}

func validateWorkbench(config *Config) []string {
	var validationErrors []string
	wb := config.Workbench
	validationErrors = append(validationErrors, validateEnum(entity.SettingActivityBarLocation, wb.ActivityBar.Location,
		"default", "top", "bottom", "hidden")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingSideBarLocation, wb.SideBar.Location,
		"left", "right")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingPanelDefaultLocation, wb.Panel.DefaultLocation,
		"left", "right", "bottom", "top")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingPanelOpensMaximized, wb.Panel.OpensMaximized,
		"always", "never", "preserve")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingEditorActionsLocation, wb.Editor.EditorActionsLocation,
		"default", "titleBar", "hidden")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingEditorShowTabs, wb.Editor.ShowTabs,
		"multiple", "single", "none")...)
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	w := config.Window
	validationErrors = append(validationErrors, validateEnum(entity.SettingMenuBarVisibility, w.MenuBarVisibility,
		"classic", "visible", "toggle", "hidden", "compact")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingTitleBarStyle, w.TitleBarStyle,
		"native", "custom")...)
	validationErrors = append(validationErrors, validateEnum(entity.SettingCustomTitleBarVisibility, w.CustomTitleBarVisibility,
		"auto", "windowed", "never")...)
	return validationErrors
}

func validateZenMode(config *Config) []string {
	return validateEnum(entity.SettingZenModeShowTabs, config.ZenMode.ShowTabs, "multiple", "single", "none")
}

// hexColorRegex matches #RGB, #RRGGBB and #RRGGBBAA.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

func validatePalette(section string, p ColorPalette) []string {
	var validationErrors []string
	colors := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surfaceVariant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorRegex.MatchString(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.%s must be a hex color (got %q)", section, c.name, c.value))
		}
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	a := config.Appearance
	validationErrors := validateEnum("appearance.colorScheme", a.ColorScheme, "system", "dark", "light")
	validationErrors = append(validationErrors, validatePalette("appearance.darkPalette", a.DarkPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.lightPalette", a.LightPalette)...)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validateEnum("logging.level", config.Logging.Level,
		"trace", "debug", "info", "warn", "error")...)
	validationErrors = append(validationErrors, validateEnum("logging.format", config.Logging.Format,
		"console", "json")...)
	return validationErrors
}

// normalizeConfig fixes casing and fills empty values with defaults so
// that hand-edited files validate.
func normalizeConfig(config *Config) {
	d := DefaultConfig()

	norm := func(v *string, def string, canonical ...string) {
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			*v = def
			return
		}
		for _, c := range canonical {
			if strings.EqualFold(trimmed, c) {
				*v = c
				return
			}
		}
		*v = trimmed
	}

	wb := &config.Workbench
	norm(&wb.ActivityBar.Location, d.Workbench.ActivityBar.Location, "default", "top", "bottom", "hidden")
	norm(&wb.SideBar.Location, d.Workbench.SideBar.Location, "left", "right")
	norm(&wb.Panel.DefaultLocation, d.Workbench.Panel.DefaultLocation, "left", "right", "bottom", "top")
	norm(&wb.Panel.OpensMaximized, d.Workbench.Panel.OpensMaximized, "always", "never", "preserve")
	norm(&wb.Editor.EditorActionsLocation, d.Workbench.Editor.EditorActionsLocation, "default", "titleBar", "hidden")
	norm(&wb.Editor.ShowTabs, d.Workbench.Editor.ShowTabs, "multiple", "single", "none")

	w := &config.Window
	norm(&w.MenuBarVisibility, d.Window.MenuBarVisibility, "classic", "visible", "toggle", "hidden", "compact")
	norm(&w.TitleBarStyle, d.Window.TitleBarStyle, "native", "custom")
	norm(&w.CustomTitleBarVisibility, d.Window.CustomTitleBarVisibility, "auto", "windowed", "never")

	norm(&config.ZenMode.ShowTabs, d.ZenMode.ShowTabs, "multiple", "single", "none")

	norm(&config.Appearance.ColorScheme, d.Appearance.ColorScheme, "system", "dark", "light")

	norm(&config.Logging.Level, d.Logging.Level, "trace", "debug", "info", "warn", "error")
	norm(&config.Logging.Format, d.Logging.Format, "console", "json")
}
