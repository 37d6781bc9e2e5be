package editor

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/logfields"
)

// Environment variables consulted, highest priority first.
const (
	EnvScratchEditor = "SCRATCH_EDITOR"
	EnvVisual        = "VISUAL"
	EnvEditor        = "EDITOR"
)

// EnvVars lists the editor environment variables in priority order.
var EnvVars = []string{EnvScratchEditor, EnvVisual, EnvEditor}

// Invocation describes how to run the editor. It is immutable once resolved.
type Invocation struct {
	Command      string
	Args         []string
	WaitsForExit bool
	Label        string
}

// source is one named, optional configuration value.
type source struct {
	name  string
	value string
}

// probe is a platform default considered when nothing is configured.
type probe struct {
	invocation Invocation
	available  func(r *Resolver) bool
}

// Resolver determines the editor invocation from an override, the environment
// and the platform. The lookups are fields so tests can fix them.
type Resolver struct {
	Getenv   func(string) string
	LookPath func(string) (string, error)
	GOOS     string
}

// NewResolver returns a Resolver bound to the real process environment.
func NewResolver() *Resolver {
	return &Resolver{
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		GOOS:     runtime.GOOS,
	}
}

func (r *Resolver) onPath(command string) bool {
	_, err := r.LookPath(command)
	return err == nil
}

var platformProbes = []probe{
	{
		invocation: Invocation{Command: "code", Args: []string{"-n", "--wait"}, WaitsForExit: true, Label: "Visual Studio Code"},
		available:  func(r *Resolver) bool { return r.onPath("code") },
	},
	{
		invocation: Invocation{Command: "open", Args: []string{"-W"}, WaitsForExit: true, Label: "default macOS editor"},
		available:  func(r *Resolver) bool { return r.GOOS == "darwin" && r.onPath("open") },
	},
	{
		invocation: Invocation{Command: "cmd", Args: []string{"/c", "start", "", "/WAIT"}, WaitsForExit: true, Label: "default Windows editor"},
		available:  func(r *Resolver) bool { return r.GOOS == "windows" },
	},
	{
		invocation: Invocation{Command: "xdg-open", WaitsForExit: false, Label: "default Linux editor"},
		available:  func(r *Resolver) bool { return r.onPath("xdg-open") },
	},
}

// sources lists the configured values in priority order.
func (r *Resolver) sources(override string) []source {
	out := []source{{name: "--editor", value: override}}
	for _, name := range EnvVars {
		out = append(out, source{name: name, value: r.Getenv(name)})
	}
	return out
}

// Resolve returns the editor invocation. An empty override means none was given.
func (r *Resolver) Resolve(override string) (Invocation, error) {
	for _, src := range r.sources(override) {
		if src.value == "" {
			continue
		}
		words, err := ParseCommand(src.value)
		if err != nil {
			return Invocation{}, err
		}
		inv := Invocation{
			Command:      words[0],
			Args:         words[1:],
			WaitsForExit: InferWaitBehavior(words[0], words[1:]),
			Label:        words[0],
		}
		slog.Debug("Resolved editor from configuration",
			logfields.Source(src.name), logfields.Editor(inv.Command), logfields.Waits(inv.WaitsForExit))
		return inv, nil
	}

	for _, p := range platformProbes {
		if p.available(r) {
			inv := p.invocation
			inv.Args = append([]string(nil), p.invocation.Args...)
			slog.Debug("Resolved platform default editor", logfields.Editor(inv.Command), logfields.Waits(inv.WaitsForExit))
			return inv, nil
		}
	}

	return Invocation{}, serrors.NoEditorResolved(EnvVars)
}
