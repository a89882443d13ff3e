package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/data"
	contactservice "github.com/bach-end/Portfolio/internal/services/contact"
	projectservice "github.com/bach-end/Portfolio/internal/services/project"
	teamservice "github.com/bach-end/Portfolio/internal/services/team"
)

// ============================================================================
// Flag Registration Tests
// ============================================================================

func TestAddJSONFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "stats"}
	AddJSONFlag(cmd)

	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.Nil(t, cmd.Flags().Lookup("quiet"), "json-only commands have no quiet mode")

	require.NoError(t, cmd.Flags().Parse([]string{"--json"}))
	formatter := FormatterFromFlags(cmd)
	assert.True(t, formatter.JSON)
	assert.False(t, formatter.Quiet)
}

func TestAddOutputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	AddOutputFlags(cmd)

	require.NoError(t, cmd.Flags().Parse([]string{"--json", "--quiet"}))
	formatter := FormatterFromFlags(cmd)
	assert.True(t, formatter.JSON)
	assert.True(t, formatter.Quiet)

	jsonFlag := cmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "Output in JSON format", jsonFlag.Usage)
}

// ============================================================================
// Error Classification Tests
// ============================================================================

func TestReportError_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"project not found", fmt.Errorf("%w: x", projectservice.ErrProjectNotFound), "PROJECT_NOT_FOUND", ExitNotFound},
		{"member not found", teamservice.ErrMemberNotFound, "MEMBER_NOT_FOUND", ExitNotFound},
		{"empty id", projectservice.ErrEmptyID, "INVALID_ID", ExitUsage},
		{"invalid email", contactservice.ErrInvalidEmail, "VALIDATION_ERROR", ExitValidation},
		{"missing message", contactservice.ErrMessageRequired, "VALIDATION_ERROR", ExitValidation},
		{"duplicate id", fmt.Errorf("projects.json: %w", data.ErrDuplicateID), "DATA_ERROR", ExitDataErr},
		{"cancelled", context.Canceled, "CANCELLED", ExitError},
		{"anything else", errors.New("boom"), "INTERNAL_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, classify(tt.err).code)

			var err error
			capture(t, &os.Stdout, func() {
				err = ReportError(&OutputFormatter{JSON: true}, tt.err)
			})
			assert.Equal(t, tt.wantExit, ExitCode(err))
			assert.True(t, Reported(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestReportError_Nil(t *testing.T) {
	assert.NoError(t, ReportError(&OutputFormatter{}, nil))
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(errors.New("unknown flag: --nope")))
	assert.Equal(t, ExitNotFound, ExitCode(WithExitCode(ExitNotFound, errors.New("x"))))

	wrapped := fmt.Errorf("outer: %w", WithExitCode(ExitDataErr, errors.New("inner")))
	assert.Equal(t, ExitDataErr, ExitCode(wrapped))
	assert.False(t, Reported(errors.New("plain")))
	assert.Nil(t, WithExitCode(ExitError, nil))
}

// ============================================================================
// Context Tests
// ============================================================================

func TestGetCLIFromContext(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoCLI)

	c := &CLI{}
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	assert.NoError(t, err)
	assert.Same(t, c, got)
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, config.Default(), ConfigFromContext(context.Background()))

	cfg := config.Default()
	cfg.LogLevel = "debug"
	assert.Same(t, cfg, ConfigFromContext(WithConfig(context.Background(), cfg)))

	fromCLI := config.Default()
	fromCLI.DataDir = "/srv/portfolio"
	assert.Same(t, fromCLI, ConfigFromContext(WithCLI(context.Background(), &CLI{Config: fromCLI})))
}
