package catalog

import "strings"

// DateLabel is a "Month Year" label split for display
type DateLabel struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// SplitDateLabel splits a combined date label on whitespace. The last token is
// the year and everything before it, joined by single spaces, is the month.
//
//	"Aug 2025"      -> {Aug, 2025}
//	"Q3 Early 2025" -> {Q3 Early, 2025}
//	"2025"          -> {"", 2025}
//	""              -> {"", ""}
func SplitDateLabel(value string) DateLabel {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return DateLabel{}
	}

	last := len(tokens) - 1
	return DateLabel{
		Month: strings.Join(tokens[:last], " "),
		Year:  tokens[last],
	}
}
