package bots

import (
	"errors"
	"math/big"

	"github.com/charmbracelet/log"

	"github.com/fencework/engarde/analysis"
	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/internal/protocol"
	"github.com/fencework/engarde/sdk"
	"github.com/fencework/engarde/strategy"
)

// Algorithm is the probability-driven handler. It layers the opening
// advance, the endgame solver, the mid-game attack-or-reposition decision
// and an ordered fallback over the exact probability table, rebuilt from
// the session tally at every decision.
type Algorithm struct {
	logger *log.Logger
}

// NewAlgorithm creates the handler.
func NewAlgorithm(logger *log.Logger) *Algorithm {
	return &Algorithm{logger: logger}
}

// Act implements sdk.Handler.
func (a *Algorithm) Act(state *sdk.State) (game.Action, error) {
	counts, ok := game.CountsFromHand(state.Hand)
	if !ok {
		return nil, errors.New("malformed hand")
	}
	distance := state.Distance()
	rest := state.Rest
	table := analysis.TableForDeck(rest, state.DeckSize)

	acceptable := strategy.NewAcceptableNumbers(counts, rest, distance)
	if action, err := strategy.InitialMove(counts, distance, acceptable); err == nil {
		a.logger.Debug("opening move", "action", action.String())
		return action, nil
	}

	if target, ok := strategy.LastMove(rest, counts, state.P1Position, state.P0Position, state.Parries, table); ok {
		if rank, ok := game.RankFromInt(target); ok {
			action := game.Attack{Card: rank, Quantity: counts.Get(rank)}
			a.logger.Debug("endgame attack", "action", action.String())
			return action, nil
		}
	}

	if action, ok := strategy.MiddleMove(state.Hand, distance, rest, table); ok {
		a.logger.Debug("mid-game move", "action", action.String())
		return action, nil
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, errors.New("no legal action")
	}
	sdk.SortActions(actions)
	a.logger.Debug("fallback move", "action", actions[0].String())
	return actions[0], nil
}

// Evaluate implements sdk.Evaluator: each candidate movement is weighted
// by its safety probability, normalized across the candidates.
func (a *Algorithm) Evaluate(state *sdk.State) *protocol.Evaluation {
	evaluation := protocol.NewEvaluation()
	table := analysis.TableForDeck(state.Rest, state.DeckSize)
	distance := state.Distance()

	var moves []game.Move
	safeties := map[game.Move]*big.Rat{}
	total := new(big.Rat)
	for _, action := range state.LegalActions() {
		move, isMove := action.(game.Move)
		if !isMove {
			continue
		}
		safe, ok := analysis.SafePossibility(distance, state.Rest, state.Hand, table, move)
		if !ok {
			safe = new(big.Rat)
		}
		moves = append(moves, move)
		safeties[move] = safe
		total.Add(total, safe)
	}
	if total.Sign() == 0 {
		return evaluation
	}
	// Drop the placeholder default before reporting real weights.
	evaluation.Eval1F = nil
	for _, move := range moves {
		weight := new(big.Rat).Quo(safeties[move], total)
		evaluation.Set(move, weight)
	}
	return evaluation
}
