// Package game defines the value types of the En Garde card game: card
// ranks, bounded card counts, hands, actions and the rest-count tally the
// probability engine reads.
package game

const (
	// NumRanks is the number of distinct card ranks in the game
	NumRanks = 5

	// HandSize is the number of cards each player holds
	HandSize = 5
)

// CardRank identifies a card type, 1 through 5. The rank doubles as a
// distance value: a move shifts the player by the rank, an attack is only
// legal when the rank equals the current distance.
type CardRank uint8

const (
	Rank1 CardRank = 1
	Rank2 CardRank = 2
	Rank3 CardRank = 3
	Rank4 CardRank = 4
	Rank5 CardRank = 5
)

// RankFromInt converts an integer to a CardRank. Returns false for values
// outside 1..5.
func RankFromInt(n int) (CardRank, bool) {
	if n < 1 || n > NumRanks {
		return 0, false
	}
	return CardRank(n), true
}

// Ranks returns all card ranks in ascending order.
func Ranks() [NumRanks]CardRank {
	return [NumRanks]CardRank{Rank1, Rank2, Rank3, Rank4, Rank5}
}

// Int returns the rank as an int.
func (r CardRank) Int() int {
	return int(r)
}

// index returns the zero-based array slot for the rank.
func (r CardRank) index() int {
	return int(r) - 1
}

// Quantity is a count of cards of one rank, bounded to [0, HandSize].
// All arithmetic saturates; a Quantity never underflows or exceeds MaxQuantity.
type Quantity uint8

const (
	// MaxQuantity is the largest possible count of a single rank
	MaxQuantity Quantity = HandSize

	// LethalCount is the attack quantity that cannot be parried
	LethalCount Quantity = 3
)

// QuantityFromInt converts an integer to a Quantity. Returns false for
// values outside [0, MaxQuantity].
func QuantityFromInt(n int) (Quantity, bool) {
	if n < 0 || n > int(MaxQuantity) {
		return 0, false
	}
	return Quantity(n), true
}

// Int returns the quantity as an int.
func (q Quantity) Int() int {
	return int(q)
}

// SaturatingAdd adds two quantities, clamping at MaxQuantity.
func (q Quantity) SaturatingAdd(other Quantity) Quantity {
	n := q + other
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}

// SaturatingSub subtracts a quantity, clamping at zero.
func (q Quantity) SaturatingSub(other Quantity) Quantity {
	if other >= q {
		return 0
	}
	return q - other
}

// SaturatingMul multiplies the quantity by n, clamping at MaxQuantity.
func (q Quantity) SaturatingMul(n uint8) Quantity {
	m := uint16(q) * uint16(n)
	if m > uint16(MaxQuantity) {
		return MaxQuantity
	}
	return Quantity(m)
}
