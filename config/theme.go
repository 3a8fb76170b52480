package config

import (
	"log/slog"

	dark "github.com/thiagokokada/dark-mode-go"
)

// Theme modes
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// detectDarkMode is swapped in tests
var detectDarkMode = dark.IsDarkMode

// DarkTheme resolves the theme mode to dark (true) or light (false).
// Auto asks the desktop and falls back to dark when it cannot tell.
func (c Config) DarkTheme() bool {
	switch c.Theme.Mode {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	isDark, err := detectDarkMode()
	if err != nil {
		slog.Debug("dark mode detection failed", "error", err)
		return true
	}
	return isDark
}
