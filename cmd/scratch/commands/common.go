// Package commands defines the scratch command line.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scratch/internal/session"
)

// Global holds the process-wide collaborators bound into every command.
type Global struct {
	Stdin  io.Reader
	Stdout io.Writer

	// NewRunner builds the session runner for `new`. Nil means the real one.
	NewRunner func(in io.Reader, out io.Writer) *session.Runner
}

// NewGlobal returns a Global bound to the process streams.
func NewGlobal() *Global {
	return &Global{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func (g *Global) runner() *session.Runner {
	if g.NewRunner != nil {
		return g.NewRunner(g.Stdin, g.Stdout)
	}
	return session.NewRunner(g.Stdin, g.Stdout)
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	New      NewCmd      `cmd:"" default:"withargs" help:"Create a scratch workspace and open it in your editor (default)"`
	Clean    CleanCmd    `cmd:"" help:"Delete one scratch workspace by path"`
	CleanAll CleanAllCmd `cmd:"" name:"clean-all" help:"Delete every scratch workspace in the temp directory"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
