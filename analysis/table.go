// Package analysis computes exact probabilities over the opponent's unseen
// hand and scores candidate actions for safety and win chance. Everything
// here is pure: plain value inputs, exact big.Rat outputs, no carried state.
package analysis

import (
	"fmt"
	"math/big"

	"github.com/fencework/engarde/game"
)

// Table holds, per card rank, the probability that the opponent's
// HandSize-card hand contains exactly k copies of that rank, for
// k = 0..HandSize. Probabilities are exact rationals so downstream
// comparisons against 1 and against thresholds like 3/4 are exact.
//
// A table is a snapshot of its inputs: rebuild it whenever the rest counts
// or the deck size change.
type Table struct {
	ranks [game.NumRanks][game.HandSize + 1]big.Rat
}

// NewTable builds the probability table from the unseen-copy tally and the
// total number of unseen cards (deck plus the opponent's hand, i.e. every
// card outside the acting player's own hand).
//
// Panics if totalUnseen is smaller than a full opponent hand; that cannot
// arise from a legal game state.
func NewTable(rest game.RestCounts, totalUnseen int) *Table {
	if totalUnseen < game.HandSize {
		panic(fmt.Sprintf("analysis: totalUnseen %d is less than a full hand", totalUnseen))
	}
	var t Table
	for _, rank := range game.Ranks() {
		dist := hypergeometric(uint64(rest.Get(rank).Int()), uint64(totalUnseen))
		t.ranks[rank.Int()-1] = dist
	}
	return &t
}

// TableForDeck is NewTable with the unseen total derived from the deck
// size, the way the session loop sees it.
func TableForDeck(rest game.RestCounts, deckSize int) *Table {
	return NewTable(rest, deckSize+game.HandSize)
}

// Prob returns P(opponent holds exactly k copies of rank). The result is a
// fresh value; mutating it does not touch the table.
func (t *Table) Prob(rank game.CardRank, k game.Quantity) *big.Rat {
	return new(big.Rat).Set(&t.ranks[rank.Int()-1][k.Int()])
}

// hypergeometric returns the distribution of "copies of one rank in a
// random HandSize-card draw" when target of the totalUnseen unseen cards
// are that rank:
//
//	P(k) = C(HandSize,k) * Perm(target,k) * Perm(total-target, HandSize-k) / Perm(total, HandSize)
//
// which is the textbook hypergeometric PMF C(t,k)*C(N-t,n-k)/C(N,n) with
// the k! and (n-k)! factors moved around.
func hypergeometric(target, total uint64) [game.HandSize + 1]big.Rat {
	var dist [game.HandSize + 1]big.Rat
	den := perm(total, game.HandSize)
	for k := uint64(0); k <= game.HandSize; k++ {
		num := comb(game.HandSize, k) * perm(target, k) * perm(total-target, game.HandSize-k)
		dist[k].SetFrac64(int64(num), int64(den))
	}
	return dist
}

// perm is the falling factorial n*(n-1)*...*(n-r+1), zero when n < r.
func perm(n, r uint64) uint64 {
	if n < r {
		return 0
	}
	p := uint64(1)
	for i := n - r + 1; i <= n; i++ {
		p *= i
	}
	return p
}

func comb(n, r uint64) uint64 {
	fact := uint64(1)
	for i := uint64(1); i <= r; i++ {
		fact *= i
	}
	return perm(n, r) / fact
}
