package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals holds flags shared by all subcommands
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to HCL config file" default:"holdem-odds.hcl"`
	Debug   bool             `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Play PlayCmd `cmd:"" default:"withargs" help:"Play an interactive hand against simulated opponents"`
	Odds OddsCmd `cmd:"" help:"Estimate win probability for a hand and board"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Texas Hold'em win-probability estimator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
