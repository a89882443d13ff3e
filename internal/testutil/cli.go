package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/app"
	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/data"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// ExecuteCommand runs a cobra command and captures its output
func ExecuteCommand(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = cmd.Execute()
	})

	return output, executeErr
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// SetupCLITest builds a CLI over the fixture catalog with no submission delay
func SetupCLITest(t *testing.T) *cli.CLI {
	t.Helper()
	return SetupCLITestWithCatalog(t, FixtureCatalog())
}

// SetupCLITestWithCatalog builds a CLI over catalog
func SetupCLITestWithCatalog(t *testing.T, catalog *data.Catalog) *cli.CLI {
	t.Helper()

	cfg := config.Default()
	cfg.Contact.SubmitDelay = 0

	return &cli.CLI{
		App:    app.New(catalog, app.WithSubmitDelay(0)),
		Config: cfg,
	}
}

// ExecuteCLICommand executes a CLI command with a test CLI instance
// injected into its context
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), c, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli instance cannot be nil - SetupCLITest must be called first")
	}

	SetupCobraCommand(cmd, args)

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(cli.WithCLI(ctx, c))
	})

	return output, executeErr
}
