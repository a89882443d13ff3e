package config

// KeyMappings defines all configurable key bindings of the browser.
// Arrow keys and ctrl+c always work in addition to these.
type KeyMappings struct {
	// Navigation
	PrevProject  string `yaml:"prev_project"`
	NextProject  string `yaml:"next_project"`
	PrevCategory string `yaml:"prev_category"`
	NextCategory string `yaml:"next_category"`

	// Views
	OpenProject string `yaml:"open_project"`
	Back        string `yaml:"back"`
	Search      string `yaml:"search"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		PrevProject:  "k",
		NextProject:  "j",
		PrevCategory: "shift+tab",
		NextCategory: "tab",

		// Views
		OpenProject: "enter",
		Back:        "esc",
		Search:      "/",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevProject, defaults.PrevProject)
	fill(&k.NextProject, defaults.NextProject)
	fill(&k.PrevCategory, defaults.PrevCategory)
	fill(&k.NextCategory, defaults.NextCategory)
	fill(&k.OpenProject, defaults.OpenProject)
	fill(&k.Back, defaults.Back)
	fill(&k.Search, defaults.Search)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
