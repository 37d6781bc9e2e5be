package editor

import (
	"path/filepath"
	"slices"
	"strings"
)

// Executables that take over the terminal and therefore always block.
var terminalEditors = []string{"vim", "vi", "nvim", "nano", "hx", "emacs"}

// Default-application launchers that hand off and return immediately.
var detachedOpeners = []string{"xdg-open", "start"}

// InferWaitBehavior reports whether running command with args is expected to
// block until the user closes the file. Unknown executables are assumed not to.
func InferWaitBehavior(command string, args []string) bool {
	executable := strings.ToLower(filepath.Base(command))
	executable = strings.TrimSuffix(executable, ".exe")

	normalized := make([]string, len(args))
	for i, arg := range args {
		normalized[i] = strings.ToLower(arg)
	}
	has := func(flags ...string) bool {
		for _, f := range flags {
			if slices.Contains(normalized, f) {
				return true
			}
		}
		return false
	}

	switch {
	case executable == "code" || executable == "code-insiders":
		return has("--wait", "-w")
	case executable == "open":
		return has("-w")
	case executable == "cmd":
		return has("/wait")
	case slices.Contains(terminalEditors, executable):
		return true
	case slices.Contains(detachedOpeners, executable):
		return false
	}
	return false
}
