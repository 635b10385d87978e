package game

import "sort"

// Hand is the acting player's cards, kept sorted ascending for
// determinism. A hand holds at most HandSize cards.
type Hand []CardRank

// NewHand builds a sorted hand from the given ranks.
func NewHand(ranks ...CardRank) Hand {
	h := make(Hand, len(ranks))
	copy(h, ranks)
	sort.Slice(h, func(i, j int) bool { return h[i] < h[j] })
	return h
}

// Count returns how many cards of the given rank the hand holds.
func (h Hand) Count(rank CardRank) Quantity {
	n := 0
	for _, c := range h {
		if c == rank {
			n++
		}
	}
	// A well-formed hand holds at most HandSize cards of one rank.
	q, _ := QuantityFromInt(n)
	return q
}

// RankCounts is a per-rank count table derived from a hand.
type RankCounts [NumRanks]Quantity

// Get returns the count for a rank.
func (c RankCounts) Get(rank CardRank) Quantity {
	return c[rank.index()]
}

// Total returns the summed count across all ranks.
func (c RankCounts) Total() int {
	total := 0
	for _, q := range c {
		total += q.Int()
	}
	return total
}

// CountsFromHand converts a hand into a per-rank count table. Returns
// false if the hand is malformed: longer than HandSize, containing an
// out-of-range rank, or holding more than MaxQuantity copies of a rank.
func CountsFromHand(hand Hand) (RankCounts, bool) {
	var counts RankCounts
	if len(hand) > HandSize {
		return counts, false
	}
	for _, c := range hand {
		if c < Rank1 || c > Rank5 {
			return RankCounts{}, false
		}
		i := c.index()
		if counts[i] >= MaxQuantity {
			return RankCounts{}, false
		}
		counts[i]++
	}
	return counts, true
}

// HandFromCounts expands a count table back into a sorted hand. Returns
// false if the total exceeds HandSize.
func HandFromCounts(counts RankCounts) (Hand, bool) {
	if counts.Total() > HandSize {
		return nil, false
	}
	hand := make(Hand, 0, HandSize)
	for _, rank := range Ranks() {
		for i := 0; i < counts.Get(rank).Int(); i++ {
			hand = append(hand, rank)
		}
	}
	return hand, true
}
