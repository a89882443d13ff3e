package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/contact"
	"github.com/bach-end/Portfolio/internal/cli/project"
	"github.com/bach-end/Portfolio/internal/cli/setup"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/cli/team"
	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/launcher"
	"github.com/bach-end/Portfolio/internal/logging"
)

// Version is set at build time with -ldflags "-X github.com/bach-end/Portfolio/cmd.Version=..."
var Version = "dev"

// skipCatalog marks commands that run without loading the catalog
const skipCatalog = "portfolio/skip-catalog"

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio - the BachEnd team portfolio in your terminal",
		Long: `Portfolio shows the BachEnd team's projects, people and milestones.

Run without arguments to open the interactive browser, or use the
subcommands for scriptable output (every listing accepts --json).`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initialize,
		RunE:              runBrowser,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
				if err := c.Close(); err != nil {
					slog.Error("failed to close application", "error", err)
				}
			}
		},
	}

	rootCmd.PersistentFlags().String("data-dir", "", "Directory with projects.json, team.json and milestones.json (default: built-in data)")

	setupCmd := setup.SetupCmd()
	setupCmd.Annotations = map[string]string{skipCatalog: "true"}

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(contact.ContactCmd())
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// initialize loads config, logging, styles and the catalog before any command runs
func initialize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cfg, err := config.Load()
	if err != nil {
		return cli.ReportErrorCode(formatter, "CONFIG_ERROR", cli.ExitDataErr, err,
			"Fix or remove the config file and try again")
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	styles.Init(cfg.ColorScheme)

	ctx = cli.WithConfig(ctx, cfg)
	defer func() { cmd.SetContext(ctx) }()

	if cmd.Annotations[skipCatalog] == "true" {
		return nil
	}
	// tests inject a CLI over a fixture catalog
	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}

	cliInstance, err := cli.NewCLI(cfg)
	if err != nil {
		slog.Error("failed to load catalog", "data_dir", cfg.DataDir, "error", err)
		return cli.ReportErrorCode(formatter, "DATA_ERROR", cli.ExitDataErr, err,
			"Check the data_dir setting, --data-dir or PORTFOLIO_DATA_DIR")
	}
	ctx = cli.WithCLI(ctx, cliInstance)
	return nil
}

func runBrowser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if !cli.IsInteractive() {
		return cli.ReportErrorCode(formatter, "NOT_A_TERMINAL", cli.ExitUsage,
			errors.New("the browser needs an interactive terminal"),
			"Use 'portfolio project list' for plain output")
	}

	if err := launcher.Launch(ctx, cliInstance.App, cliInstance.Config); err != nil {
		slog.Error("failed to run browser", "error", err)
		return cli.ReportError(formatter, err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'portfolio --help' for usage.")
	}
	return cli.ExitCode(err)
}
