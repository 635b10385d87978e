package bots

import (
	"errors"
	"math/rand"
	"time"

	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/sdk"
)

// Random plays a uniformly random legal action. Useful as a baseline
// opponent.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates the handler. A zero seed falls back to the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Act implements sdk.Handler.
func (r *Random) Act(state *sdk.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, errors.New("no legal action")
	}
	return actions[r.rng.Intn(len(actions))], nil
}
