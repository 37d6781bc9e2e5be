package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/scratch/internal/language"
	"git.home.luguber.info/inful/scratch/internal/logfields"
	"git.home.luguber.info/inful/scratch/internal/prompt"
	"git.home.luguber.info/inful/scratch/internal/session"
)

// NewCmd implements the default 'new' command.
type NewCmd struct {
	TS   bool `name:"ts" help:"TypeScript scratchpad (default)"`
	JS   bool `name:"js" help:"JavaScript scratchpad"`
	PY   bool `name:"py" help:"Python scratchpad"`
	Go   bool `name:"go" help:"Go scratchpad"`
	C    bool `name:"c" help:"C scratchpad"`
	CPP  bool `name:"cpp" help:"C++ scratchpad"`
	Java bool `name:"java" help:"Java scratchpad"`

	Editor   string `help:"Editor command, e.g. \"code --wait\" (overrides SCRATCH_EDITOR, VISUAL and EDITOR)"`
	Dest     string `help:"Default save destination offered when keeping the scratchpad"`
	KeepTemp bool   `name:"keep-temp" help:"Keep the temporary workspace after the session"`
}

// Options translates the flags into session options.
func (n *NewCmd) Options() (session.Options, error) {
	lang, err := language.Resolve(language.Flags{
		TS: n.TS, JS: n.JS, PY: n.PY, Go: n.Go, C: n.C, CPP: n.CPP, Java: n.Java,
	})
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Language: lang,
		Editor:   n.Editor,
		Dest:     n.Dest,
		KeepTemp: n.KeepTemp,
	}, nil
}

func (n *NewCmd) Run(g *Global, _ *CLI) error {
	opts, err := n.Options()
	if err != nil {
		return err
	}

	if !prompt.IsTerminal(g.Stdin) {
		slog.Warn("Standard input is not a terminal; prompts read piped input")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := g.runner().Run(ctx, opts)
	if summary != nil {
		slog.Debug("Session finished",
			logfields.SessionID(summary.ID),
			logfields.Workspace(summary.Workspace),
			logfields.State(summary.State.String()))
	}
	return err
}
