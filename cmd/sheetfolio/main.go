// Sheetfolio - spreadsheet-backed personal finance sync engine
// Entry point for the CLI
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/findosh/sheetfolio/internal/cli"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
