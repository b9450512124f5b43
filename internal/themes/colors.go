package themes

// Colors represents all generated colors for a site theme
type Colors struct {
	Primary    string // Main brand color
	Secondary  string // Accent/highlight color
	Background string // Page background
	Surface    string // Card/container background
	Text       string // Main text color
	TextMuted  string // Secondary/muted text
	Border     string // Border/divider color
}

// ColorsForSite builds the full color set from a site's configured brand
// colors. Blank values fall back to the slate palette.
func ColorsForSite(primary, secondary string) *Colors {
	fallback := GetPalette("slate")
	if primary == "" {
		primary = fallback.Primary
	}
	if secondary == "" {
		secondary = fallback.Secondary
	}

	return &Colors{
		Primary:    primary,
		Secondary:  secondary,
		Background: "#ffffff",
		Surface:    "#f9fafb",
		Text:       "#111827",
		TextMuted:  "#6b7280",
		Border:     "#e5e7eb",
	}
}
