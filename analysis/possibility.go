package analysis

import (
	"math/big"

	"github.com/fencework/engarde/game"
)

func zero() *big.Rat { return new(big.Rat) }
func one() *big.Rat  { return big.NewRat(1, 1) }

// SafePossibility returns the exact probability that the opponent cannot
// punish the given action on their reply. The second return is false when
// the question does not apply: the hand is malformed, or the opponent rank
// the action exposes falls outside the playable range.
//
// The guard cases return exactly 1: when every unseen copy of the relevant
// rank is already in the acting player's own hand, the opponent cannot
// out-hold it.
func SafePossibility(distance int, rest game.RestCounts, hand game.Hand, table *Table, action game.Action) (*big.Rat, bool) {
	switch a := action.(type) {
	case game.Attack:
		if rest.Get(a.Card) <= hand.Count(a.Card) {
			return one(), true
		}
		counts, ok := game.CountsFromHand(hand)
		if !ok {
			return nil, false
		}
		return attackPossibility(counts, table, a.Card), true

	case game.Move:
		if a.Direction == game.Forward {
			// Landing on exactly twice the card's rank means one copy is
			// spent reaching a distance the same rank attacks at.
			dup := distance == 2*a.Card.Int()
			var reserved game.Quantity
			if dup {
				reserved = 1
			}
			if rest.Get(a.Card) <= hand.Count(a.Card).SaturatingSub(reserved) {
				return one(), true
			}
			counter, ok := game.RankFromInt(distance - a.Card.Int())
			if !ok {
				return nil, false
			}
			counts, ok := game.CountsFromHand(hand)
			if !ok {
				return nil, false
			}
			return movePossibility(counts, table, counter, dup), true
		}

		if rest.Get(a.Card) <= hand.Count(a.Card) {
			return one(), true
		}
		counter, ok := game.RankFromInt(distance + a.Card.Int())
		if !ok {
			return nil, false
		}
		counts, ok := game.CountsFromHand(hand)
		if !ok {
			return nil, false
		}
		return movePossibility(counts, table, counter, false), true
	}
	return nil, false
}

// WinPossAttack returns the exact probability that an attack defeats the
// opponent outright. Moves never win on the spot, so any Move yields zero.
// Returns false only when the hand is malformed.
func WinPossAttack(rest game.RestCounts, hand game.Hand, table *Table, action game.Action) (*big.Rat, bool) {
	attack, isAttack := action.(game.Attack)
	if !isAttack {
		return zero(), true
	}
	if rest.Get(attack.Card) < hand.Count(attack.Card) {
		return one(), true
	}
	counts, ok := game.CountsFromHand(hand)
	if !ok {
		return nil, false
	}
	sum := zero()
	for _, k := range []game.Quantity{0, 1, 2, game.LethalCount} {
		// Winning needs strictly more copies than the opponent, not a tie.
		if counts.Get(attack.Card) > k {
			sum.Add(sum, table.Prob(attack.Card, k))
		}
	}
	return sum, true
}

// attackPossibility sums the probability of the opponent holding k copies
// for k up to LethalCount, counting only the k values the acting hand can
// still match. Three copies end the exchange outright, so higher holdings
// are irrelevant.
func attackPossibility(counts game.RankCounts, table *Table, rank game.CardRank) *big.Rat {
	sum := zero()
	for _, k := range []game.Quantity{0, 1, 2, game.LethalCount} {
		if counts.Get(rank) >= k {
			sum.Add(sum, table.Prob(rank, k))
		}
	}
	return sum
}

// movePossibility is the move variant: the opponent punishes with the rank
// matching the post-move distance, and when dup holds one of our copies of
// that rank is already committed to the move itself.
func movePossibility(counts game.RankCounts, table *Table, rank game.CardRank, dup bool) *big.Rat {
	var reserved game.Quantity
	if dup {
		reserved = 1
	}
	held := counts.Get(rank).SaturatingSub(reserved)
	sum := zero()
	for _, k := range []game.Quantity{1, 2, game.LethalCount} {
		if held >= k {
			sum.Add(sum, table.Prob(rank, k))
		}
	}
	return sum
}
