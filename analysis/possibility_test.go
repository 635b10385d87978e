package analysis

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencework/engarde/game"
)

func TestAttackSafetyGuardHoldingEveryUnseenCopy(t *testing.T) {
	// All three remaining 3s are in our hand: no reply can out-hold us.
	hand := game.NewHand(game.Rank3, game.Rank3, game.Rank3)
	rest := game.RestCounts{5, 5, 3, 5, 5}
	table := TableForDeck(rest, 10)

	safe, ok := SafePossibility(3, rest, hand, table, game.Attack{Card: game.Rank3, Quantity: 3})
	require.True(t, ok)
	assert.Zero(t, safe.Cmp(big.NewRat(1, 1)))
}

func TestWinGuardHoldingMoreThanUnseen(t *testing.T) {
	hand := game.NewHand(game.Rank3, game.Rank3, game.Rank3)
	rest := game.RestCounts{5, 5, 2, 5, 5}
	table := TableForDeck(rest, 10)

	win, ok := WinPossAttack(rest, hand, table, game.Attack{Card: game.Rank3, Quantity: 3})
	require.True(t, ok)
	assert.Zero(t, win.Cmp(big.NewRat(1, 1)))
}

func TestMoveNeverWinsOutright(t *testing.T) {
	rest := game.NewRestCounts()
	table := TableForDeck(rest, 15)
	hand := game.NewHand(game.Rank2, game.Rank4)

	win, ok := WinPossAttack(rest, hand, table, game.Move{Card: game.Rank2, Direction: game.Forward})
	require.True(t, ok)
	assert.Zero(t, win.Sign())
}

func TestMoveSafetyNoResultWhenReplyRankOutOfRange(t *testing.T) {
	rest := game.NewRestCounts()
	table := TableForDeck(rest, 15)
	hand := game.NewHand(game.Rank5)

	// Distance 3, retreating with a 5 would expose distance 8: no rank-8
	// card exists, so the question has no answer.
	_, ok := SafePossibility(3, rest, hand, table, game.Move{Card: game.Rank5, Direction: game.Back})
	assert.False(t, ok)

	// Same for advancing past the opponent.
	_, ok = SafePossibility(3, rest, hand, table, game.Move{Card: game.Rank4, Direction: game.Forward})
	assert.False(t, ok)
}

func TestForwardMoveReservesTheDoubledCard(t *testing.T) {
	// Distance 4, moving forward with a 2 lands at distance 2: the moved 2
	// is spent, so a single remaining 2 cannot answer a two-card reply.
	rest := game.RestCounts{5, 3, 5, 5, 5}
	table := TableForDeck(rest, 10)

	oneCopy := game.NewHand(game.Rank2)
	twoCopies := game.NewHand(game.Rank2, game.Rank2)

	safeOne, ok := SafePossibility(4, rest, oneCopy, table, game.Move{Card: game.Rank2, Direction: game.Forward})
	require.True(t, ok)
	safeTwo, ok := SafePossibility(4, rest, twoCopies, table, game.Move{Card: game.Rank2, Direction: game.Forward})
	require.True(t, ok)

	assert.True(t, safeOne.Cmp(safeTwo) < 0, "reserving the moved copy must cost safety: %s vs %s",
		safeOne.RatString(), safeTwo.RatString())
}

func TestPossibilitiesStayInUnitIntervalAndWinNeverExceedsSafety(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	zero := new(big.Rat)
	one := big.NewRat(1, 1)

	for trial := 0; trial < 300; trial++ {
		var rest game.RestCounts
		for i := range rest {
			rest[i] = game.Quantity(rng.Intn(6))
		}
		table := TableForDeck(rest, rng.Intn(16))

		var cards []game.CardRank
		for n := rng.Intn(game.HandSize + 1); len(cards) < n; {
			rank, _ := game.RankFromInt(1 + rng.Intn(5))
			cards = append(cards, rank)
		}
		hand := game.NewHand(cards...)

		rank, _ := game.RankFromInt(1 + rng.Intn(5))
		attack := game.Attack{Card: rank, Quantity: hand.Count(rank)}
		distance := rank.Int()

		safe, ok := SafePossibility(distance, rest, hand, table, attack)
		require.True(t, ok)
		win, ok := WinPossAttack(rest, hand, table, attack)
		require.True(t, ok)

		assert.True(t, safe.Cmp(zero) >= 0 && safe.Cmp(one) <= 0, "safety %s out of range", safe.RatString())
		assert.True(t, win.Cmp(zero) >= 0 && win.Cmp(one) <= 0, "win %s out of range", win.RatString())
		assert.True(t, win.Cmp(safe) <= 0,
			"winning outright implies surviving: win %s > safe %s", win.RatString(), safe.RatString())
	}
}
