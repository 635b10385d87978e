package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fencework/engarde/internal/spawner"
	"github.com/fencework/engarde/internal/statistics"
)

// RepeatCmd plays N matches between two built-in strategies by spawning a
// bot subprocess per seat. The game server itself is external; point
// --server at a running instance that pairs consecutive connections.
type RepeatCmd struct {
	Matches int           `help:"Number of matches to play" default:"10"`
	Server  string        `help:"Server URL both bots connect to" default:"tcp://127.0.0.1:12052"`
	BotA    string        `help:"Strategy for bot A" default:"algorithm" enum:"algorithm,aggressive,random"`
	BotB    string        `help:"Strategy for bot B" default:"random" enum:"algorithm,aggressive,random"`
	Timeout time.Duration `help:"Per-match timeout" default:"5m"`
	Plain   bool          `help:"Log lines instead of the progress UI"`
}

func (c *RepeatCmd) Run(logger *log.Logger) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating own binary: %w", err)
	}

	var ui *progressUI
	if !c.Plain {
		ui = newProgressUI(c.Matches, c.BotA, c.BotB)
		ui.Start()
		defer ui.Stop()
	}

	stats := &statistics.RunStats{}
	procs := spawner.New(logger, nil)
	defer procs.StopAll()

	for i := 0; i < c.Matches; i++ {
		result := c.runMatch(logger, procs, self, i)
		stats.Record(result)
		if ui != nil {
			ui.Report(*stats)
		} else {
			logger.Info("match finished",
				"match", result.MatchID,
				"number", i+1,
				"a_won", result.AWon,
				"failed", result.Failed)
		}
	}

	if ui != nil {
		ui.Stop()
	}
	fmt.Println(stats.Summary())
	return nil
}

func (c *RepeatCmd) runMatch(logger *log.Logger, procs *spawner.Spawner, self string, number int) statistics.MatchResult {
	matchID := uuid.NewString()
	result := statistics.MatchResult{MatchID: matchID}
	logger = logger.With("match", matchID)

	spawnBot := func(strategy, seat string) (*spawner.Process, error) {
		return procs.Spawn(spawner.Spec{
			Command: self,
			Args: []string{
				"bot",
				"--server", c.Server,
				"--strategy", strategy,
				"--name", fmt.Sprintf("%s-%s-%d", strategy, seat, number),
			},
		})
	}

	botA, err := spawnBot(c.BotA, "a")
	if err != nil {
		logger.Error("spawning bot A failed", "error", err)
		result.Failed = true
		return result
	}
	botB, err := spawnBot(c.BotB, "b")
	if err != nil {
		logger.Error("spawning bot B failed", "error", err)
		botA.Stop()
		result.Failed = true
		return result
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	group, _ := errgroup.WithContext(ctx)
	group.Go(botA.Wait)
	group.Go(botB.Wait)

	waited := make(chan error, 1)
	go func() { waited <- group.Wait() }()
	select {
	case err = <-waited:
	case <-ctx.Done():
		logger.Error("match timed out")
		botA.Stop()
		botB.Stop()
		result.Failed = true
		return result
	}
	if err != nil {
		logger.Error("bot process failed", "error", err)
		result.Failed = true
		return result
	}

	switch {
	case strings.Contains(botA.Stdout(), resultPrefix+" win"):
		result.AWon = true
	case strings.Contains(botB.Stdout(), resultPrefix+" win"):
		result.AWon = false
	default:
		logger.Error("no result line from either bot")
		result.Failed = true
	}
	return result
}
