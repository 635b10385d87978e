package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Bot    BotCmd    `cmd:"" help:"Connect a bot to a game server"`
	Repeat RepeatCmd `cmd:"" help:"Run repeated matches between two bots"`
	Odds   OddsCmd   `cmd:"" help:"Print the exact opponent-hand probability table for a game state"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("engarde"),
		kong.Description("Probability-driven client for the En Garde dueling card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
