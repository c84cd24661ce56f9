package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/wrenlabs/budget/cli"
)

var (
	// Version is set via ldflags when building.
	Version = ""

	// CommitSHA is set via ldflags when building.
	CommitSHA = ""

	cliStruct struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	cli.Version = Version
	cli.CommitSHA = CommitSHA

	ctx := kong.Parse(&cliStruct,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("budget"),
		kong.Description("A personal budget modelling engine and CLI."),
		kong.UsageOnError(),
		kong.Bind(&cliStruct.Globals),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
