package layouts

// SiteName is appended to every page title.
const SiteName = "Everything Talent"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}

// Theme is the colour scheme a page is rendered in.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored preference to a Theme, defaulting to dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// HTMLClass is the class set on the root element.
func (t Theme) HTMLClass() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}
