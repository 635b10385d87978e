package game

// RestCounts tallies, per rank, the copies not yet observed as played by
// either side: cards still in the deck or in the opponent's hand. A fresh
// round starts with MaxQuantity of every rank. The session loop owns the
// tally and applies one Observe per play; the probability and decision
// functions only read it.
type RestCounts [NumRanks]Quantity

// NewRestCounts returns the start-of-round tally: every rank at MaxQuantity.
func NewRestCounts() RestCounts {
	var r RestCounts
	for i := range r {
		r[i] = MaxQuantity
	}
	return r
}

// Get returns the unseen count for a rank.
func (r RestCounts) Get(rank CardRank) Quantity {
	return r[rank.index()]
}

// Total returns the summed unseen count across all ranks.
func (r RestCounts) Total() int {
	total := 0
	for _, q := range r {
		total += q.Int()
	}
	return total
}

// Observe records a played action. A move removes one copy of its rank; an
// attack removes its quantity from both players' accounting, so twice the
// quantity comes off the tally. Subtraction saturates at zero.
func (r *RestCounts) Observe(action Action) {
	switch a := action.(type) {
	case Move:
		i := a.Card.index()
		r[i] = r[i].SaturatingSub(1)
	case Attack:
		i := a.Card.index()
		r[i] = r[i].SaturatingSub(a.Quantity.SaturatingMul(2))
	}
}
