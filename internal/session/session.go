// Package session runs one scratch session: it provisions a workspace, opens it
// in an editor, asks whether to keep the result and always finishes with a
// cleanup step that either deletes or preserves the workspace.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/multierr"

	"git.home.luguber.info/inful/scratch/internal/editor"
	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/language"
	"git.home.luguber.info/inful/scratch/internal/logfields"
	"git.home.luguber.info/inful/scratch/internal/prompt"
	"git.home.luguber.info/inful/scratch/internal/templates"
	"git.home.luguber.info/inful/scratch/internal/workspace"
)

// Launcher opens the workspace in an editor.
type Launcher interface {
	Launch(ctx context.Context, workspacePath, override string) (editor.Result, error)
}

// Options are the per-session choices made on the command line.
type Options struct {
	Language language.Language
	Editor   string // editor command override, empty for none
	Dest     string // save destination override, empty for the timestamped default
	KeepTemp bool
}

// Summary describes how a session ended.
type Summary struct {
	ID        string
	Workspace string
	SavedTo   string
	Preserved bool
	State     State
}

// Runner wires a session's collaborators together.
type Runner struct {
	Workspaces *workspace.Manager
	Templates  templates.Provider
	Launcher   Launcher
	Prompter   prompt.Prompter
	Out        io.Writer
	Clock      clockwork.Clock
	Getwd      func() (string, error)
}

// NewRunner returns a Runner using the OS temp directory, the embedded
// templates, the real editor and the given terminal streams.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{
		Workspaces: workspace.NewManager(""),
		Templates:  templates.Default,
		Launcher:   editor.NewLauncher(),
		Prompter:   prompt.New(in, out),
		Out:        out,
		Clock:      clockwork.NewRealClock(),
		Getwd:      os.Getwd,
	}
}

// session is the in-memory record of one run.
type session struct {
	id       string
	opts     Options
	tpl      templates.Template
	ws       *workspace.Workspace
	state    State
	preserve bool
	failed   bool
	savedTo  string
	logger   *slog.Logger
}

func (s *session) transition(to State) error {
	if !CanTransition(s.state, to) {
		return invalidTransition(s.state, to)
	}
	s.logger.Debug("Session state change", logfields.State(to.String()))
	s.state = to
	return nil
}

func (s *session) summary() *Summary {
	return &Summary{
		ID:        s.id,
		Workspace: s.ws.Path,
		SavedTo:   s.savedTo,
		Preserved: s.preserve,
		State:     s.state,
	}
}

// Run executes a full session. The cleanup step runs whatever happens; when it
// fails after an earlier failure, both errors are returned.
func (r *Runner) Run(ctx context.Context, opts Options) (summary *Summary, err error) {
	tpl, err := r.Templates.Get(opts.Language)
	if err != nil {
		return nil, err
	}

	ws, err := r.Workspaces.Create(opts.Language)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:       uuid.NewString(),
		opts:     opts,
		tpl:      tpl,
		ws:       ws,
		state:    StateCreated,
		preserve: opts.KeepTemp,
	}
	s.logger = slog.Default().With(logfields.SessionID(s.id), logfields.Workspace(ws.Path))
	s.logger.Info("Session started", logfields.Language(string(opts.Language)))

	defer func() {
		err = multierr.Append(err, r.cleanup(s))
		summary = s.summary()
	}()

	for s.state != StateCleanup {
		next, stepErr := r.step(ctx, s)
		if stepErr == nil {
			stepErr = s.transition(next)
		}
		if stepErr != nil {
			r.fail(s, stepErr)
			s.state = StateCleanup
			return nil, stepErr
		}
	}
	return nil, nil
}

// step performs the work of the current state and returns the next one.
func (r *Runner) step(ctx context.Context, s *session) (State, error) {
	if err := ctx.Err(); err != nil {
		return s.state, err
	}

	switch s.state {
	case StateCreated:
		return r.materialize(s)
	case StateEditing:
		return r.edit(ctx, s)
	case StateDeciding:
		return r.decide(ctx, s)
	case StateSaving:
		return r.save(ctx, s)
	case StateDiscarding:
		r.printf("Scratchpad discarded.\n")
		return StateCleanup, nil
	}
	return s.state, invalidTransition(s.state, StateCleanup)
}

func (r *Runner) materialize(s *session) (State, error) {
	if err := s.ws.Materialize(s.tpl); err != nil {
		return s.state, err
	}
	r.printf("Created %s scratchpad at %s\n", strings.ToUpper(string(s.opts.Language)), s.ws.Path)
	r.printf("Entrypoint: %s\n", s.tpl.Entrypoint)
	return StateEditing, nil
}

func (r *Runner) edit(ctx context.Context, s *session) (State, error) {
	res, err := r.Launcher.Launch(ctx, s.ws.Path, s.opts.Editor)
	if err != nil {
		return s.state, err
	}
	s.logger.Debug("Editor returned", logfields.Editor(res.Editor.Command), logfields.Waits(res.Waited))

	if !res.Waited {
		r.printf("%s may not block until close. Press Enter here when you are done editing.\n", res.Editor.Label)
		if err := r.Prompter.Acknowledge(ctx, "Continue: "); err != nil {
			return s.state, err
		}
	}
	return StateDeciding, nil
}

func (r *Runner) decide(ctx context.Context, s *session) (State, error) {
	save, err := r.Prompter.YesNo(ctx, "Save this scratchpad? [y/N]: ", false)
	if err != nil {
		return s.state, err
	}
	if save {
		return StateSaving, nil
	}
	return StateDiscarding, nil
}

func (r *Runner) save(ctx context.Context, s *session) (State, error) {
	cwd, err := r.Getwd()
	if err != nil {
		return s.state, err
	}

	def := DefaultDestinationPath(cwd, s.opts.Language, r.Clock.Now())
	if s.opts.Dest != "" {
		def = resolvePath(cwd, s.opts.Dest)
	}

	requested, err := r.Prompter.Text(ctx, fmt.Sprintf("Save destination [%s]: ", def), def)
	if err != nil {
		return s.state, err
	}

	dest, err := r.resolveDestination(ctx, s, cwd, resolvePath(cwd, requested))
	if err != nil {
		return s.state, err
	}

	if err := workspace.Copy(s.ws.Path, dest); err != nil {
		return s.state, err
	}
	s.savedTo = dest
	s.logger.Info("Workspace saved", logfields.Destination(dest))
	r.printf("Saved scratchpad to %s\n", dest)
	return StateCleanup, nil
}

// resolveDestination loops until dest is free, or the user agrees to overwrite it.
// Destinations overlapping the workspace are never accepted.
func (r *Runner) resolveDestination(ctx context.Context, s *session, cwd, dest string) (string, error) {
	for {
		switch {
		case workspace.IsWithin(dest, s.ws.Path) || workspace.IsWithin(s.ws.Path, dest):
			r.printf("Destination overlaps the temporary workspace (%s).\n", dest)
		case !workspace.Exists(dest):
			return dest, nil
		default:
			overwrite, err := r.Prompter.YesNo(ctx, fmt.Sprintf("Destination exists (%s). Overwrite it? [y/N]: ", dest), false)
			if err != nil {
				return "", err
			}
			if overwrite {
				if err := workspace.Remove(dest); err != nil {
					return "", err
				}
				s.logger.Info("Removed existing destination", logfields.Destination(dest))
				return dest, nil
			}
		}

		next, err := r.Prompter.Text(ctx, "Enter another destination path: ",
			DefaultDestinationPath(cwd, s.opts.Language, r.Clock.Now()))
		if err != nil {
			return "", err
		}
		dest = resolvePath(cwd, next)
	}
}

// fail switches the session to preserve mode so no work is lost.
func (r *Runner) fail(s *session, err error) {
	s.logger.Error("Session failed", logfields.State(s.state.String()), logfields.Error(err))
	s.failed = true
	if !s.preserve {
		s.preserve = true
		r.printf("Session failed. Preserving temporary workspace at %s\n", s.ws.Path)
	}
}

// cleanup is the final step of every session. After a failure it reports a
// preserved workspace that has vanished, since the recovery path printed is wrong.
func (r *Runner) cleanup(s *session) error {
	s.state = StateCleanup
	defer func() { s.state = StateTerminal }()

	if s.preserve {
		if s.opts.KeepTemp {
			r.printf("Temporary directory preserved (--keep-temp): %s\n", s.ws.Path)
		} else {
			r.printf("Temporary directory preserved for recovery: %s\n", s.ws.Path)
		}
		if !s.ws.Exists() {
			s.logger.Warn("Preserved workspace is no longer on disk")
			if s.failed {
				return serrors.PreservedWorkspaceMissing(s.ws.Path)
			}
			return nil
		}
		s.logger.Info("Workspace preserved")
		return nil
	}

	if err := s.ws.Remove(); err != nil {
		s.logger.Error("Workspace cleanup failed", logfields.Error(err))
		return err
	}
	r.printf("Cleaned up temporary workspace.\n")
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format, args...)
}

// DefaultDestinationPath returns <cwd>/scratch-<lang>-<YYYYMMDD>-<HHMMSS> using the UTC time of now.
func DefaultDestinationPath(cwd string, lang language.Language, now time.Time) string {
	name := fmt.Sprintf("%s-%s-%s", workspace.Prefix, lang, now.UTC().Format("20060102-150405"))
	return filepath.Join(cwd, name)
}

func resolvePath(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}
