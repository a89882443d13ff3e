package huhforms

import (
	"charm.land/huh/v2"

	"github.com/bach-end/Portfolio/internal/sitesetup"
)

// SetupForm asks for the details written into the website sources.
// Empty answers keep the template placeholder.
func SetupForm(answers *sitesetup.Answers, confirm *bool) *huh.Form {
	def := sitesetup.DefaultAnswers()

	input := func(key, title, placeholder string, value *string) huh.Field {
		return huh.NewInput().
			Key(key).
			Title(title).
			Placeholder(placeholder).
			Value(value)
	}

	return huh.NewForm(
		huh.NewGroup(
			input("name", "What is your full name?", def.Name, &answers.Name),
			input("title", "What is your professional title?", def.Title, &answers.Title),
			input("email", "What is your email address?", def.Email, &answers.Email),
		),
		huh.NewGroup(
			input("phone", "What is your phone number?", def.Phone, &answers.Phone),
			input("location", "Where are you located?", def.Location, &answers.Location),
			input("github", "What is your GitHub username?", def.GitHub, &answers.GitHub),
			huh.NewConfirm().
				Key("confirm").
				Title("Update the website files?").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	)
}
