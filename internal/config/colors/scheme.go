package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, tabs, progress bars)
	Accent string `yaml:"accent"`

	// Badge colors, one per status variant
	Success   string `yaml:"success"`   // Completed
	Warning   string `yaml:"warning"`   // In Progress
	Info      string `yaml:"info"`      // Planned
	Secondary string `yaml:"secondary"` // anything else

	// UI element colors
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// fields lists every color slot except the preset name
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Success, &c.Warning, &c.Info, &c.Secondary,
		&c.Border, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal, &c.Error,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst := c.fields()
	src := preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst := c.fields()
	src := other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
