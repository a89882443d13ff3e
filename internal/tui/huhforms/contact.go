package huhforms

import (
	"charm.land/huh/v2"

	"github.com/bach-end/Portfolio/internal/models"
	contactservice "github.com/bach-end/Portfolio/internal/services/contact"
)

// ContactForm creates the "Get in Touch" form. Fields already set in msg are prefilled.
func ContactForm(msg *models.ContactMessage, confirm *bool) *huh.Form {
	required := func(err error) func(string) error {
		return func(s string) error {
			if len(s) == 0 {
				return err
			}
			return nil
		}
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Description("Please enter your full name").
			Placeholder("Your full name").
			Validate(required(contactservice.ErrNameRequired)).
			Value(&msg.Name),

		huh.NewInput().
			Key("email").
			Title("Email").
			Description("I'll use this to respond to your message").
			Placeholder("your.email@example.com").
			Validate(contactservice.ValidateEmail).
			Value(&msg.Email),

		huh.NewInput().
			Key("subject").
			Title("Subject (optional)").
			Placeholder("What's this about?").
			CharLimit(200).
			Value(&msg.Subject),

		huh.NewText().
			Key("message").
			Title("Message").
			Description("Please provide details about your project or inquiry").
			Placeholder("Tell me about your project or just say hello...").
			CharLimit(5000).
			Lines(5).
			Validate(required(contactservice.ErrMessageRequired)).
			Value(&msg.Message),

		huh.NewConfirm().
			Key("confirm").
			Title("Send this message?").
			Affirmative("Send").
			Negative("Cancel").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
