// Package strategy chooses actions. It layers an opening move, a mid-game
// attack-or-reposition decision, a positional adjustment toward the
// comfortable fighting distances, and an endgame solver, all on top of the
// exact probabilities from the analysis package.
package strategy

import "github.com/fencework/engarde/game"

// AcceptableNumbers gates which ranks the policy may spend, recomputed per
// decision from the hand, the unseen tally and the board distance. The
// rules conserve scarce cards: rank 1 is hoarded for the endgame, rank 2
// needs a spare, and the high ranks stay reserved at long range unless two
// are held.
type AcceptableNumbers [game.NumRanks]bool

// NewAcceptableNumbers computes the gate.
func NewAcceptableNumbers(counts game.RankCounts, rest game.RestCounts, distance int) AcceptableNumbers {
	return AcceptableNumbers{
		canUse1(counts, rest),
		canUse2(counts),
		canUse3(counts),
		canUse4and5(counts, distance),
		canUse4and5(counts, distance),
	}
}

// Allows reports whether the gate permits spending the rank.
func (a AcceptableNumbers) Allows(rank game.CardRank) bool {
	return a[rank.Int()-1]
}

// Rank 1 is the only card that attacks at distance 1, so it is held back
// until enough copies have already surfaced.
func canUse1(counts game.RankCounts, rest game.RestCounts) bool {
	played := game.MaxQuantity.SaturatingSub(rest.Get(game.Rank1))
	return counts.Get(game.Rank1) > game.Quantity(3).SaturatingSub(played)
}

func canUse2(counts game.RankCounts) bool {
	return counts.Get(game.Rank2) > 1
}

func canUse3(counts game.RankCounts) bool {
	return counts.Get(game.Rank3) > 0
}

// At long range a lone high card strands the player, so 4 and 5 need a
// second high card before either may be spent.
func canUse4and5(counts game.RankCounts, distance int) bool {
	if distance < 12 {
		return true
	}
	high := counts.Get(game.Rank4).Int() + counts.Get(game.Rank5).Int()
	return high >= 2
}
