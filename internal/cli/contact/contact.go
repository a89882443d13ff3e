package contact

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
	"github.com/bach-end/Portfolio/internal/tui/huhforms"
)

// ContactCmd returns the contact command
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send the team a message",
		Long: `Fill in the contact form and send it.

Name, email and message are required; the subject is optional. When a
required field is missing and the terminal is interactive, a form opens
with the provided flags prefilled.

Messages are not delivered anywhere: submission is simulated and logged.

Examples:
  portfolio contact
  portfolio contact --name "Jamie Doe" --email jamie@example.com --message "Hello!"
  portfolio contact --name Jamie --email jamie@example.com --message Hi --json`,
		Args: cobra.NoArgs,
		RunE: runContact,
	}

	cmd.Flags().String("name", "", "Your full name (required)")
	cmd.Flags().String("email", "", "Your email address (required)")
	cmd.Flags().String("subject", "", "What the message is about")
	cmd.Flags().StringP("message", "m", "", "Message body (required)")
	cmd.Flags().Bool("no-input", false, "Never open the interactive form")
	cli.AddJSONFlag(cmd)

	return cmd
}

func runContact(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	var msg models.ContactMessage
	msg.Name, _ = cmd.Flags().GetString("name")
	msg.Email, _ = cmd.Flags().GetString("email")
	msg.Subject, _ = cmd.Flags().GetString("subject")
	msg.Message, _ = cmd.Flags().GetString("message")
	noInput, _ := cmd.Flags().GetBool("no-input")

	contactService := cliInstance.App.ContactService

	if contactService.Validate(msg) != nil && !noInput && !formatter.JSON && cli.IsInteractive() {
		confirm := true
		form := huhforms.ContactForm(&msg, &confirm).
			WithTheme(huhforms.CreateTheme(cliInstance.Config.ColorScheme))
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Message discarded")
				return nil
			}
			return cli.ReportError(formatter, err)
		}
		if !confirm {
			fmt.Println("Message discarded")
			return nil
		}
	}

	if !formatter.JSON {
		fmt.Println(styles.SubtitleStyle.Render("Sending..."))
	}

	receipt, err := contactService.Submit(ctx, msg)
	if err != nil {
		slog.Error("failed to submit contact message", "error", err)
		return cli.ReportError(formatter, err)
	}

	if formatter.JSON {
		return cli.PrintJSON("receipt", receipt)
	}

	fmt.Println("✅ Thank you for your message! I'll get back to you as soon as possible.")
	fmt.Println(styles.SubtitleStyle.Render("I typically respond within 24 hours."))
	return nil
}
