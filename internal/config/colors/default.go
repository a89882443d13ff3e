package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Badges
		Success:   "#5FD75F",
		Warning:   "#FFD700",
		Info:      "#00AFFF",
		Secondary: "#8A8A8A",

		// UI elements
		Border:         "#5F87D7",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Error:  "#FF5F5F",
	}
}
