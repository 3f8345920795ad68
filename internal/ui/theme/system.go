package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// themeEnv overrides terminal detection, for example "Adwaita:dark".
const themeEnv = "SHELLGRID_THEME"

// DetectSystemDarkMode reports whether the environment prefers dark colors.
func DetectSystemDarkMode() bool {
	if v, ok := os.LookupEnv(themeEnv); ok && v != "" {
		return strings.Contains(strings.ToLower(v), "dark")
	}
	return lipgloss.HasDarkBackground()
}

// ResolveColorScheme turns appearance.colorScheme into a dark flag. Any value
// other than dark or light follows the system.
func ResolveColorScheme(scheme string) bool {
	s := strings.TrimPrefix(strings.ToLower(scheme), "prefer-")
	if s == "dark" || s == "light" {
		return s == "dark"
	}
	return DetectSystemDarkMode()
}
