package catalog

import "strings"

// Badge variants for project status
const (
	VariantSuccess   = "success"
	VariantWarning   = "warning"
	VariantInfo      = "info"
	VariantSecondary = "secondary"
)

// Category icon identifiers
const (
	IconGlobe  = "globe"
	IconMobile = "mobile"
	IconChart  = "chart"
	IconCode   = "code"
)

// StatusVariant maps a project status to its badge variant
func StatusVariant(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return VariantSuccess
	case "in progress":
		return VariantWarning
	case "planned":
		return VariantInfo
	default:
		return VariantSecondary
	}
}

// CategoryIcon maps a project category to an icon name
func CategoryIcon(category string) string {
	switch strings.ToLower(category) {
	case "web application":
		return IconGlobe
	case "mobile application":
		return IconMobile
	case "data visualization":
		return IconChart
	default:
		return IconCode
	}
}
