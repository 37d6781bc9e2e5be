package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/logfields"
)

// Result reports how the editor was run.
type Result struct {
	// Waited is true when the invocation is known to block until the user closed the editor.
	Waited bool
	Editor Invocation
}

// Launcher runs the resolved editor against a workspace, sharing the caller's
// standard streams so the editor's own UI stays visible.
type Launcher struct {
	Resolver *Resolver
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewLauncher returns a Launcher bound to the process environment and streams.
func NewLauncher() *Launcher {
	return &Launcher{
		Resolver: NewResolver(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Launch resolves the editor, starts it with workspacePath appended to its
// arguments and waits for the process to exit. Only a clean zero exit succeeds.
func (l *Launcher) Launch(ctx context.Context, workspacePath, override string) (Result, error) {
	inv, err := l.Resolver.Resolve(override)
	if err != nil {
		return Result{}, err
	}

	args := append(append([]string(nil), inv.Args...), workspacePath)
	cmd := exec.CommandContext(ctx, inv.Command, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	slog.Info("Opening editor",
		logfields.Editor(inv.Command), logfields.Args(args), logfields.Waits(inv.WaitsForExit))

	if err := cmd.Start(); err != nil {
		return Result{}, serrors.EditorStartFailed(inv.Command, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, serrors.EditorStartFailed(inv.Command, err)
		}
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return Result{}, serrors.EditorSignaled(status.Signal().String())
		}
		return Result{}, serrors.EditorExitCode(exitErr.ExitCode())
	}

	return Result{Waited: inv.WaitsForExit, Editor: inv}, nil
}
