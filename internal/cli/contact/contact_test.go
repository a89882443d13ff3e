package contact

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/app"
	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/testutil"
)

func TestMain(m *testing.M) {
	cli.IsInteractive = func() bool { return false }
	m.Run()
}

func TestContactCommand(t *testing.T) {
	c := testutil.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantExit int
		check    func(t *testing.T, output string)
	}{
		{
			name: "valid message",
			args: []string{"--name", "Jamie", "--email", "jamie@example.com", "--message", "Hello"},
			check: func(t *testing.T, output string) {
				assert.Contains(t, ansi.Strip(output), "Thank you for your message")
			},
		},
		{
			name: "valid message json",
			args: []string{"--name", "Jamie", "--email", "jamie@example.com", "--subject", "Hi", "-m", "Hello", "--json"},
			check: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				receipt := result["receipt"].(map[string]any)
				msg := receipt["message"].(map[string]any)
				assert.Equal(t, "Hi", msg["subject"])
				assert.NotEmpty(t, receipt["submittedAt"])
			},
		},
		{
			name:     "missing name without terminal",
			args:     []string{"--email", "jamie@example.com", "--message", "Hello", "--json"},
			wantErr:  true,
			wantExit: cli.ExitValidation,
			check: func(t *testing.T, output string) {
				errMap := testutil.ParseJSON(t, output)["error"].(map[string]any)
				assert.Equal(t, "VALIDATION_ERROR", errMap["code"])
				assert.Equal(t, "name is required", errMap["message"])
			},
		},
		{
			name:     "invalid email",
			args:     []string{"--name", "Jamie", "--email", "nope", "--message", "Hello", "--json"},
			wantErr:  true,
			wantExit: cli.ExitValidation,
		},
		{
			name:     "missing message",
			args:     []string{"--name", "Jamie", "--email", "jamie@example.com", "--no-input"},
			wantErr:  true,
			wantExit: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutil.ExecuteCLICommand(t, c, ContactCmd(), tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantExit, cli.ExitCode(err))
			} else {
				require.NoError(t, err)
			}
			if tt.check != nil {
				tt.check(t, output)
			}
		})
	}
}

func TestContactCommand_Cancelled(t *testing.T) {
	c := testutil.SetupCLITest(t)
	c.App = app.New(testutil.FixtureCatalog(), app.WithSubmitDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	output, err := testutil.ExecuteCLICommandWithContext(t, ctx, c, ContactCmd(),
		[]string{"--name", "Jamie", "--email", "jamie@example.com", "--message", "Hello", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	errMap := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "CANCELLED", errMap["code"])
}
