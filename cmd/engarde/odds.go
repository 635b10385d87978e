package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fencework/engarde/analysis"
	"github.com/fencework/engarde/game"
)

// OddsCmd prints the exact per-rank distribution of the opponent's hand
// for a given unseen-card tally, and optionally scores an attack from a
// concrete hand and distance.
type OddsCmd struct {
	Deck     int    `help:"Cards left in the deck" default:"15"`
	Rest     string `help:"Unseen copies per rank, comma separated" default:"5,5,5,5,5"`
	Hand     string `help:"Own hand as comma-separated ranks (enables action scoring)" optional:""`
	Distance int    `help:"Board distance for action scoring" default:"0"`
}

func (c *OddsCmd) Run(_ *log.Logger) error {
	rest, err := parseRest(c.Rest)
	if err != nil {
		return err
	}
	table := analysis.TableForDeck(rest, c.Deck)

	fmt.Printf("unseen cards: %d in deck + %d opponent hand\n\n", c.Deck, game.HandSize)
	fmt.Println("P(opponent holds k copies):")
	fmt.Println("rank  k=0      k=1      k=2      k=3      k=4      k=5")
	for _, rank := range game.Ranks() {
		row := make([]string, 0, game.HandSize+1)
		for k := 0; k <= game.HandSize; k++ {
			q, _ := game.QuantityFromInt(k)
			row = append(row, table.Prob(rank, q).FloatString(5))
		}
		fmt.Printf("%4d  %s\n", rank, strings.Join(row, "  "))
	}

	if c.Hand == "" {
		return nil
	}
	hand, err := parseHand(c.Hand)
	if err != nil {
		return err
	}
	rank, ok := game.RankFromInt(c.Distance)
	if !ok {
		return fmt.Errorf("distance %d is out of attack range", c.Distance)
	}
	held := hand.Count(rank)
	if held == 0 {
		return fmt.Errorf("no rank-%d card in hand to attack with at distance %d", rank, c.Distance)
	}
	attack := game.Attack{Card: rank, Quantity: held}

	fmt.Printf("\nattack %s at distance %d:\n", attack, c.Distance)
	if safe, ok := analysis.SafePossibility(c.Distance, rest, hand, table, attack); ok {
		fmt.Printf("  safety: %s (%s)\n", safe.FloatString(5), safe.RatString())
	}
	if win, ok := analysis.WinPossAttack(rest, hand, table, attack); ok {
		fmt.Printf("  win:    %s (%s)\n", win.FloatString(5), win.RatString())
	}
	return nil
}

func parseRest(s string) (game.RestCounts, error) {
	parts := strings.Split(s, ",")
	rest := game.NewRestCounts()
	if len(parts) != game.NumRanks {
		return rest, fmt.Errorf("--rest needs %d comma-separated counts", game.NumRanks)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return rest, fmt.Errorf("invalid rest count %q: %w", part, err)
		}
		q, ok := game.QuantityFromInt(n)
		if !ok {
			return rest, fmt.Errorf("rest count %d out of range 0-%d", n, game.MaxQuantity)
		}
		rest[i] = q
	}
	return rest, nil
}

func parseHand(s string) (game.Hand, error) {
	var cards []game.CardRank
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", part, err)
		}
		rank, ok := game.RankFromInt(n)
		if !ok {
			return nil, fmt.Errorf("card rank %d out of range", n)
		}
		cards = append(cards, rank)
	}
	if len(cards) > game.HandSize {
		return nil, fmt.Errorf("hand holds at most %d cards", game.HandSize)
	}
	return game.NewHand(cards...), nil
}
