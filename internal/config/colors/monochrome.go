package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Success:   "#FFFFFF",
		Warning:   "#D0D0D0",
		Info:      "#A8A8A8",
		Secondary: "#808080",

		Border:         "#808080",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",
		Error:  "#FFFFFF",
	}
}
