package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/data"
	contactservice "github.com/bach-end/Portfolio/internal/services/contact"
	projectservice "github.com/bach-end/Portfolio/internal/services/project"
	teamservice "github.com/bach-end/Portfolio/internal/services/team"
)

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	AddJSONFlag(cmd)
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddJSONFlag registers --json alone, for commands with no IDs to print
func AddJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// errorClass describes how one family of errors is shown and exited with
type errorClass struct {
	code       string
	exit       int
	suggestion string
}

// classify maps domain errors to CLI error codes
func classify(err error) errorClass {
	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return errorClass{"PROJECT_NOT_FOUND", ExitNotFound, "Run 'portfolio project list' to see available project IDs"}
	case errors.Is(err, teamservice.ErrMemberNotFound):
		return errorClass{"MEMBER_NOT_FOUND", ExitNotFound, "Run 'portfolio team list' to see available member IDs"}
	case errors.Is(err, projectservice.ErrEmptyID), errors.Is(err, teamservice.ErrEmptyID):
		return errorClass{"INVALID_ID", ExitUsage, ""}
	case errors.Is(err, contactservice.ErrNameRequired),
		errors.Is(err, contactservice.ErrNameTooLong),
		errors.Is(err, contactservice.ErrEmailRequired),
		errors.Is(err, contactservice.ErrInvalidEmail),
		errors.Is(err, contactservice.ErrSubjectTooLong),
		errors.Is(err, contactservice.ErrMessageRequired),
		errors.Is(err, contactservice.ErrMessageTooLong):
		return errorClass{"VALIDATION_ERROR", ExitValidation, ""}
	case errors.Is(err, data.ErrDuplicateID), errors.Is(err, data.ErrMissingID), errors.Is(err, fs.ErrNotExist):
		return errorClass{"DATA_ERROR", ExitDataErr, "Check the data_dir setting or PORTFOLIO_DATA_DIR"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorClass{"CANCELLED", ExitError, ""}
	case errors.Is(err, ErrNoCLI):
		return errorClass{"INITIALIZATION_ERROR", ExitError, ""}
	default:
		return errorClass{"INTERNAL_ERROR", ExitError, ""}
	}
}

// ReportError writes err through the formatter and returns it tagged with
// the matching exit code
func ReportError(f *OutputFormatter, err error) error {
	if err == nil {
		return nil
	}
	class := classify(err)
	if fmtErr := f.ErrorWithSuggestion(class.code, err.Error(), class.suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return WithExitCode(class.exit, err)
}

// ReportErrorCode writes err with an explicit code and exit status
func ReportErrorCode(f *OutputFormatter, code string, exit int, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return WithExitCode(exit, err)
}
