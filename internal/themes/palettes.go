package themes

// Palette defines the base colors for a theme
type Palette struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// GetPalette returns a palette by name, or the slate palette when the name is
// unknown.
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"slate": {
			Name:      "slate",
			Primary:   "#64748b",
			Secondary: "#0f172a",
		},
		"indigo": {
			Name:      "indigo",
			Primary:   "#4f46e5",
			Secondary: "#f97316",
		},
		"rose": {
			Name:      "rose",
			Primary:   "#e11d48",
			Secondary: "#64748b",
		},
		"emerald": {
			Name:      "emerald",
			Primary:   "#059669",
			Secondary: "#f59e0b",
		},
	}

	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["slate"]
}
