package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyWorkspace   = "workspace"
	KeyLanguage    = "language"
	KeyEditor      = "editor"
	KeyArgs        = "args"
	KeyWaits       = "waits_for_exit"
	KeyDestination = "destination"
	KeySessionID   = "session_id"
	KeyState       = "state"
	KeyTempRoot    = "temp_root"
	KeyTarget      = "target"
	KeyCount       = "count"
	KeySource      = "source"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Workspace(p string) slog.Attr { return slog.String(KeyWorkspace, p) }
func Language(l string) slog.Attr { return slog.String(KeyLanguage, l) }
func Editor(cmd string) slog.Attr { return slog.String(KeyEditor, cmd) }
func Args(a []string) slog.Attr { return slog.Any(KeyArgs, a) }
func Waits(w bool) slog.Attr { return slog.Bool(KeyWaits, w) }
func Destination(p string) slog.Attr { return slog.String(KeyDestination, p) }
func SessionID(id string) slog.Attr { return slog.String(KeySessionID, id) }
func State(s string) slog.Attr { return slog.String(KeyState, s) }
func TempRoot(p string) slog.Attr { return slog.String(KeyTempRoot, p) }
func Target(p string) slog.Attr { return slog.String(KeyTarget, p) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Source(name string) slog.Attr { return slog.String(KeySource, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
