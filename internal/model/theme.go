package model

// Theme is the process-wide UI color preference.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the alternative theme.
	ThemeDark Theme = "dark"
)

// ParseTheme interprets a persisted raw theme string. Anything other than an
// explicit "dark" falls back to light.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle flips between the two themes.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
