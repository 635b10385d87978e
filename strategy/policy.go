package strategy

import (
	"errors"
	"math/big"

	"github.com/fencework/engarde/analysis"
	"github.com/fencework/engarde/game"
)

// ErrNotOpening is returned by InitialMove when the distance is 12 or
// less and the opening heuristic no longer applies; the caller falls
// through to the mid-game policy.
var ErrNotOpening = errors.New("strategy: distance 12 or less is not an opening position")

// threeQuarters is the acceptance bar for the mid-game policy.
var threeQuarters = big.NewRat(3, 4)

// InitialMove picks the opening advance while the players are still far
// apart (distance above 12). It spends the highest gated rank in hand;
// failing that, a low-average hand advances with a 2 and any other hand
// commits a 5.
func InitialMove(counts game.RankCounts, distance int, acceptable AcceptableNumbers) (game.Action, error) {
	if distance <= 12 {
		return nil, ErrNotOpening
	}
	ranks := game.Ranks()
	for i := len(ranks) - 1; i >= 0; i-- {
		rank := ranks[i]
		if acceptable.Allows(rank) && counts.Get(rank) > 0 {
			return game.Move{Card: rank, Direction: game.Forward}, nil
		}
	}
	if averageBelow3(counts) && counts.Get(game.Rank2) > 0 {
		return game.Move{Card: game.Rank2, Direction: game.Forward}, nil
	}
	return game.Move{Card: game.Rank5, Direction: game.Forward}, nil
}

// averageBelow3 reports whether the mean rank of the hand is under 3.
func averageBelow3(counts game.RankCounts) bool {
	sum := 0
	for _, rank := range game.Ranks() {
		sum += rank.Int() * counts.Get(rank).Int()
	}
	return sum < 3*game.HandSize
}

// ActionToGo returns the single move that changes the distance to target,
// or false when already there or when no card rank spans the gap.
func ActionToGo(target, distance int) (game.Action, bool) {
	switch {
	case target > distance:
		rank, ok := game.RankFromInt(target - distance)
		if !ok {
			return nil, false
		}
		return game.Move{Card: rank, Direction: game.Back}, true
	case target < distance:
		rank, ok := game.RankFromInt(distance - target)
		if !ok {
			return nil, false
		}
		return game.Move{Card: rank, Direction: game.Forward}, true
	default:
		return nil, false
	}
}

// ShouldGoTo2Or7 proposes the positional adjustment toward the two
// comfortable fighting distances, preferring 7 over 2. A candidate is
// taken only when it advances, the card is held and the gate permits it.
func ShouldGoTo2Or7(counts game.RankCounts, distance int, rest game.RestCounts, _ *analysis.Table) (game.Action, bool) {
	acceptable := NewAcceptableNumbers(counts, rest, distance)
	for _, target := range []int{7, 2} {
		action, ok := ActionToGo(target, distance)
		if !ok {
			continue
		}
		move, isMove := action.(game.Move)
		if !isMove || move.Direction != game.Forward {
			continue
		}
		if counts.Get(move.Card) > 0 && acceptable.Allows(move.Card) {
			return move, true
		}
	}
	return nil, false
}

// MiddleMove is the mid-game decision. Within attack range it commits every
// held copy of the matching rank when the win chance clears 3/4; otherwise
// it takes the positional adjustment when that move's safety clears 3/4.
// The attack branch wins when both qualify. Returns false when neither
// does, leaving the caller to fall back to a default legal action.
func MiddleMove(hand game.Hand, distance int, rest game.RestCounts, table *analysis.Table) (game.Action, bool) {
	counts, ok := game.CountsFromHand(hand)
	if !ok {
		return nil, false
	}

	if attack, ok := attackWithAll(counts, distance); ok {
		if win, ok := analysis.WinPossAttack(rest, hand, table, attack); ok && win.Cmp(threeQuarters) >= 0 {
			return attack, true
		}
	}

	if move, ok := ShouldGoTo2Or7(counts, distance, rest, table); ok {
		if safe, ok := analysis.SafePossibility(distance, rest, hand, table, move); ok && safe.Cmp(threeQuarters) >= 0 {
			return move, true
		}
	}
	return nil, false
}

// attackWithAll builds the attack that spends every held copy of the rank
// matching the distance. False when out of attack range or no copy is held.
func attackWithAll(counts game.RankCounts, distance int) (game.Action, bool) {
	rank, ok := game.RankFromInt(distance)
	if !ok {
		return nil, false
	}
	held := counts.Get(rank)
	if held == 0 {
		return nil, false
	}
	return game.Attack{Card: rank, Quantity: held}, true
}

// LastMove is the endgame solver. Once the undetermined pool has shrunk to
// at most one card beyond what the opponent's parries absorbed, the final
// draw is knowable enough to prove a forcing attack: if the exact rank
// matching the distance is held and the attack wins with probability
// exactly 1, the distance to strike at is returned.
func LastMove(rest game.RestCounts, counts game.RankCounts, farPos, nearPos int, parried int, table *analysis.Table) (int, bool) {
	if rest.Total() > 1+parried {
		return 0, false
	}
	distance := farPos - nearPos
	rank, ok := game.RankFromInt(distance)
	if !ok {
		return 0, false
	}
	held := counts.Get(rank)
	if held == 0 {
		return 0, false
	}
	hand, ok := game.HandFromCounts(counts)
	if !ok {
		return 0, false
	}
	win, ok := analysis.WinPossAttack(rest, hand, table, game.Attack{Card: rank, Quantity: held})
	if !ok || win.Cmp(big.NewRat(1, 1)) != 0 {
		return 0, false
	}
	return distance, true
}
