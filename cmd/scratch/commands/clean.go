package commands

import (
	"git.home.luguber.info/inful/scratch/internal/workspace"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	Target string `arg:"" help:"Scratch workspace, or any path inside one"`
}

func (c *CleanCmd) Run(g *Global, _ *CLI) error {
	cleaner, err := workspace.NewCleaner("", g.Stdout)
	if err != nil {
		return err
	}
	_, err = cleaner.CleanTarget(c.Target)
	return err
}

// CleanAllCmd implements the 'clean-all' command.
type CleanAllCmd struct {
	TempRoot string `name:"temp-root" help:"Directory to scan instead of the OS temp directory"`
}

func (c *CleanAllCmd) Run(g *Global, _ *CLI) error {
	cleaner, err := workspace.NewCleaner(c.TempRoot, g.Stdout)
	if err != nil {
		return err
	}
	_, err = cleaner.CleanAll()
	return err
}
