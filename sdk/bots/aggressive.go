package bots

import (
	"errors"

	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/sdk"
)

// Aggressive always takes the most forward legal action: attack when the
// distance allows it, otherwise the biggest advance.
type Aggressive struct{}

// NewAggressive creates the handler.
func NewAggressive() *Aggressive {
	return &Aggressive{}
}

// Act implements sdk.Handler.
func (a *Aggressive) Act(state *sdk.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, errors.New("no legal action")
	}
	sdk.SortActions(actions)
	return actions[0], nil
}
