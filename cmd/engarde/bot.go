package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fencework/engarde/sdk"
	"github.com/fencework/engarde/sdk/bots"
)

// resultPrefix marks the machine-readable outcome line on stdout; the
// repeat runner greps for it.
const resultPrefix = "MATCH_RESULT"

// BotCmd connects one bot to a running game server and plays a match.
type BotCmd struct {
	Server   string `help:"Server URL (tcp://host:port, ws://..., or host:port); defaults to the config file, then tcp://127.0.0.1:12052"`
	Name     string `help:"Display name sent to the server (defaults to the strategy name)"`
	Strategy string `help:"Decision strategy (algorithm, aggressive, random); defaults to the config file"`
	Seed     int64  `help:"Random seed for the random strategy (0 = clock)"`
	Config   string `help:"HCL config file; flags override it" type:"existingfile" optional:""`
}

func (c *BotCmd) Run(logger *log.Logger) error {
	config := sdk.DefaultConfig()
	if c.Config != "" {
		loaded, err := sdk.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		config = loaded
	}
	if c.Server != "" {
		config.Server.URL = c.Server
	}
	if c.Strategy != "" {
		config.Bot.Strategy = c.Strategy
	}
	if c.Seed != 0 {
		config.Bot.Seed = c.Seed
	}
	name := c.Name
	if name == "" {
		name = config.Bot.Strategy
	}

	logger = logger.With("bot", name)
	handler, err := bots.New(config.Bot.Strategy, config.Bot.Seed, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot := sdk.New(name, handler, logger)
	timeout := time.Duration(config.Server.ConnectTimeout) * time.Second
	if err := bot.Connect(config.Server.URL, timeout); err != nil {
		return err
	}

	result, err := bot.Run(ctx)
	if err != nil {
		return err
	}
	if result.Won {
		fmt.Printf("%s win %d-%d\n", resultPrefix, result.Score0, result.Score1)
	} else {
		fmt.Printf("%s loss %d-%d\n", resultPrefix, result.Score0, result.Score1)
	}
	return nil
}
