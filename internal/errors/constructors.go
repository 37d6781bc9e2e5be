package errors

import (
	"fmt"
	"strings"
)

// Convenience functions for common error patterns

// Configuration errors

func NoEditorResolved(envVars []string) *ScratchError {
	return New(CategoryConfig, SeverityFatal,
		fmt.Sprintf("No editor could be resolved. Set %s to a command such as \"code --wait\".", joinOr(envVars))).
		WithContext("env", envVars)
}

func InvalidEditorCommand(command string, cause error) *ScratchError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Invalid editor command: %q", command)).
		WithContext("command", command)
}

func ConflictingLanguageFlags(selected, accepted []string) *ScratchError {
	return New(CategoryConfig, SeverityFatal,
		fmt.Sprintf("Choose exactly one language flag: %s (got %s).", joinOr(accepted), strings.Join(selected, ", "))).
		WithContext("selected", selected)
}

func UnknownLanguage(tag string) *ScratchError {
	return New(CategoryConfig, SeverityFatal, fmt.Sprintf("Unsupported language: %q", tag)).
		WithContext("language", tag)
}

// Containment errors

func OutsideTempRoot(target, tempRoot string) *ScratchError {
	return New(CategoryContainment, SeverityFatal,
		fmt.Sprintf("Target must be inside your OS temp directory (%s).", tempRoot)).
		WithContext("target", target)
}

func NotAWorkspace(target string) *ScratchError {
	return New(CategoryContainment, SeverityFatal,
		"Target must point to a scratch workspace (scratch-*) or a file inside it.").
		WithContext("target", target)
}

// Not found errors

func WorkspaceMissing(path string) *ScratchError {
	return New(CategoryNotFound, SeverityFatal, fmt.Sprintf("Scratch workspace does not exist: %s", path)).
		WithContext("workspace", path)
}

// PreservedWorkspaceMissing reports that a workspace kept for recovery is gone.
func PreservedWorkspaceMissing(path string) *ScratchError {
	return New(CategoryNotFound, SeverityWarning, fmt.Sprintf("Preserved workspace no longer exists: %s", path)).
		WithContext("workspace", path)
}

// Process errors

func EditorStartFailed(command string, cause error) *ScratchError {
	return Wrap(cause, CategoryProcess, SeverityError, fmt.Sprintf("Failed to open editor (%s)", command)).
		WithContext("command", command)
}

func EditorSignaled(signal string) *ScratchError {
	return New(CategoryProcess, SeverityError, fmt.Sprintf("Editor exited due to signal: %s", signal)).
		WithContext("signal", signal)
}

func EditorExitCode(code int) *ScratchError {
	return New(CategoryProcess, SeverityError, fmt.Sprintf("Editor exited with code %d", code)).
		WithContext("code", code)
}

// Filesystem errors

func FileSystemError(operation, path string, cause error) *ScratchError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *ScratchError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

// joinOr renders ["A","B","C"] as "A, B, or C".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
