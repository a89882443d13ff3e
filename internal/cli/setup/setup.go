package setup

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	contactservice "github.com/bach-end/Portfolio/internal/services/contact"
	"github.com/bach-end/Portfolio/internal/sitesetup"
	"github.com/bach-end/Portfolio/internal/tui/huhforms"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Personalize a checkout of the portfolio website",
		Long: `Replace the website template's placeholder details with your own.

The command rewrites these files under --root, skipping any that are missing:
  src/pages/Home.jsx, src/pages/About.jsx, src/pages/Contact.jsx,
  src/components/Footer.jsx, src/pages/Privacy.jsx, index.html

Answers come from flags; on an interactive terminal a form asks for the
rest. Blank answers keep the placeholder.

Examples:
  portfolio setup --root ./website
  portfolio setup --root ./website --name "Jamie Doe" --github jamied --yes`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	def := sitesetup.DefaultAnswers()
	cmd.Flags().String("root", ".", "Website source directory")
	cmd.Flags().String("name", "", fmt.Sprintf("Full name (default %q)", def.Name))
	cmd.Flags().String("title", "", fmt.Sprintf("Professional title (default %q)", def.Title))
	cmd.Flags().String("email", "", fmt.Sprintf("Email address (default %q)", def.Email))
	cmd.Flags().String("phone", "", fmt.Sprintf("Phone number (default %q)", def.Phone))
	cmd.Flags().String("location", "", fmt.Sprintf("Location (default %q)", def.Location))
	cmd.Flags().String("github", "", fmt.Sprintf("GitHub username (default %q)", def.GitHub))
	cmd.Flags().BoolP("yes", "y", false, "Use flags and defaults without asking")
	cli.AddJSONFlag(cmd)

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	root, _ := cmd.Flags().GetString("root")
	skipForm, _ := cmd.Flags().GetBool("yes")

	var answers sitesetup.Answers
	answers.Name, _ = cmd.Flags().GetString("name")
	answers.Title, _ = cmd.Flags().GetString("title")
	answers.Email, _ = cmd.Flags().GetString("email")
	answers.Phone, _ = cmd.Flags().GetString("phone")
	answers.Location, _ = cmd.Flags().GetString("location")
	answers.GitHub, _ = cmd.Flags().GetString("github")

	if !skipForm && !formatter.JSON && cli.IsInteractive() {
		fmt.Println("🎨 Welcome to the Portfolio Setup!")
		fmt.Println()

		colors := cli.ConfigFromContext(ctx).ColorScheme

		confirm := true
		form := huhforms.SetupForm(&answers, &confirm).WithTheme(huhforms.CreateTheme(colors))
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Setup cancelled")
				return nil
			}
			return cli.ReportError(formatter, err)
		}
		if !confirm {
			fmt.Println("Setup cancelled")
			return nil
		}
	}

	answers = answers.WithDefaults()
	if err := contactservice.ValidateEmail(answers.Email); err != nil {
		return cli.ReportError(formatter, fmt.Errorf("email: %w", err))
	}

	results, err := sitesetup.Apply(root, answers)
	if err != nil {
		return cli.ReportErrorCode(formatter, "SETUP_FAILED", cli.ExitError, err,
			"Point --root at the website source directory")
	}

	if formatter.JSON {
		return cli.PrintJSON("files", results)
	}

	fmt.Println("📝 Updating files with your information...")
	fmt.Println()
	updated := 0
	for _, r := range results {
		switch r.Status {
		case sitesetup.StatusUpdated:
			updated++
			fmt.Printf("✅ Updated %s %s\n", r.Path, styles.SubtitleStyle.Render(fmt.Sprintf("(%d replacements)", r.Replacements)))
		case sitesetup.StatusUnchanged:
			fmt.Printf("➖ %s already up to date\n", r.Path)
		case sitesetup.StatusMissing:
			fmt.Printf("⚠️  Skipped %s (not found)\n", r.Path)
		}
	}

	fmt.Println()
	fmt.Printf("🎉 Setup complete! %d of %d files updated.\n", updated, len(results))
	fmt.Println()
	fmt.Println(styles.SectionStyle.Render("Next steps"))
	fmt.Println("1. Run \"npm install\" to install dependencies")
	fmt.Println("2. Run \"npm run dev\" to start the development server")
	fmt.Println("3. Update src/data/projects.json with your projects")
	fmt.Println("4. Replace placeholder images with your own")
	return nil
}
