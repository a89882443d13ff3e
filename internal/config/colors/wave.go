package colors

// Kanagawa palette
const (
	sumiInk4    = "#54546D"
	waveBlue1   = "#223249"
	waveAqua2   = "#7AA89F"
	oniViolet   = "#957FB8"
	crystalBlue = "#7E9CD8"
	springGreen = "#98BB6C"
	carpYellow  = "#E6C384"
	springBlue  = "#7FB4CA"
	fujiGray    = "#727169"
	fujiWhite   = "#DCD7BA"
	peachRed    = "#FF5D62"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Success:   springGreen,
		Warning:   carpYellow,
		Info:      springBlue,
		Secondary: fujiGray,

		Border:         sumiInk4,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,
		Error:  peachRed,
	}
}
