// Package bots contains the built-in strategy handlers.
package bots

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/fencework/engarde/sdk"
)

// Names lists the built-in strategies.
func Names() []string {
	return []string{"algorithm", "aggressive", "random"}
}

// New returns the named handler. The seed only affects the random
// strategy; zero means a time-based seed.
func New(name string, seed int64, logger *log.Logger) (sdk.Handler, error) {
	switch name {
	case "algorithm":
		return NewAlgorithm(logger), nil
	case "aggressive":
		return NewAggressive(), nil
	case "random":
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
