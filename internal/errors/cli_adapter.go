package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
	}
}

// WithOutput redirects error messages (used by tests).
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	a.stderr = w
	return a
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if se, ok := As(err); ok {
		return a.exitCodeFromScratch(se)
	}

	return 1
}

// exitCodeFromScratch maps ScratchError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromScratch(err *ScratchError) int {
	switch err.Category {
	case CategoryContainment:
		return 3
	case CategoryNotFound:
		return 4
	case CategoryProcess:
		return 6
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryFileSystem:
		return 11
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display, prefixed with the failing command.
func (a *CLIErrorAdapter) FormatError(command string, err error) string {
	if err == nil {
		return ""
	}

	prefix := "scratch failed"
	if command != "" {
		prefix = fmt.Sprintf("scratch %s failed", command)
	}

	if se, ok := As(err); ok && a.verbose && len(se.Context) > 0 {
		return fmt.Sprintf("%s: %v %v", prefix, err, se.Context)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

// Report writes the formatted error to stderr, logs it when appropriate and returns the exit code.
func (a *CLIErrorAdapter) Report(command string, err error) int {
	if err == nil {
		return 0
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(a.stderr, a.FormatError(command, err))
	return a.ExitCodeFor(err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(command string, err error) {
	if err == nil {
		return
	}
	os.Exit(a.Report(command, err))
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if se, ok := As(err); ok {
		return se.Category == CategoryInternal
	}

	return false
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if se, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(se.Category)),
			slog.String("severity", string(se.Severity)),
		}
		if se.Cause != nil {
			attrs = append(attrs, slog.String("cause", se.Cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), a.slogLevelFromSeverity(se.Severity), se.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "category", string(GetCategory(err)), "error", err)
}

// slogLevelFromSeverity converts ScratchError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
