package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scratch/cmd/scratch/commands"
	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := commands.NewGlobal()

	parser := kong.Parse(cli,
		kong.Name("scratch"),
		kong.Description("Throwaway coding workspaces in your OS temp directory."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := parser.Run(global, cli); err != nil {
		adapter := serrors.NewCLIErrorAdapter(cli.Verbose, nil)
		adapter.HandleError(commandName(parser.Command()), err)
	}
}

// commandName strips argument placeholders from kong's command path ("clean <target>" -> "clean").
func commandName(path string) string {
	name, _, _ := strings.Cut(path, " ")
	return name
}
