package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencework/engarde/analysis"
	"github.com/fencework/engarde/game"
)

func TestInitialMoveOnlyAppliesBeyondDistance12(t *testing.T) {
	rest := game.NewRestCounts()
	counts := game.RankCounts{0, 0, 1, 0, 0}
	for _, distance := range []int{12, 8, 3} {
		gate := NewAcceptableNumbers(counts, rest, distance)
		_, err := InitialMove(counts, distance, gate)
		assert.ErrorIs(t, err, ErrNotOpening, "distance %d", distance)
	}
}

func TestInitialMoveSpendsHighestGatedRank(t *testing.T) {
	rest := game.NewRestCounts()
	counts := game.RankCounts{0, 0, 0, 1, 1}
	gate := NewAcceptableNumbers(counts, rest, 13)

	action, err := InitialMove(counts, 13, gate)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Card: game.Rank5, Direction: game.Forward}, action)
}

func TestInitialMoveLowHandFallsBackToRank2(t *testing.T) {
	rest := game.NewRestCounts()
	// Nothing gated: a lone 2 and a lone 4, mean rank 6/5.
	counts := game.RankCounts{0, 1, 0, 1, 0}
	gate := NewAcceptableNumbers(counts, rest, 13)

	action, err := InitialMove(counts, 13, gate)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Card: game.Rank2, Direction: game.Forward}, action)
}

func TestInitialMoveDefaultsToRank5(t *testing.T) {
	rest := game.NewRestCounts()
	// Nothing gated and no 2 held.
	counts := game.RankCounts{3, 0, 0, 0, 1}
	gate := NewAcceptableNumbers(counts, rest, 13)

	action, err := InitialMove(counts, 13, gate)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Card: game.Rank5, Direction: game.Forward}, action)
}

func TestActionToGo(t *testing.T) {
	action, ok := ActionToGo(7, 9)
	require.True(t, ok)
	assert.Equal(t, game.Move{Card: game.Rank2, Direction: game.Forward}, action)

	action, ok = ActionToGo(7, 5)
	require.True(t, ok)
	assert.Equal(t, game.Move{Card: game.Rank2, Direction: game.Back}, action)

	_, ok = ActionToGo(7, 7)
	assert.False(t, ok, "already at the target")

	_, ok = ActionToGo(13, 7)
	assert.False(t, ok, "no card spans a gap of 6")
}

func TestShouldGoTo2Or7PrefersSeven(t *testing.T) {
	rest := game.NewRestCounts()
	counts := game.RankCounts{0, 2, 0, 0, 0}

	action, ok := ShouldGoTo2Or7(counts, 9, rest, nil)
	require.True(t, ok)
	assert.Equal(t, game.Move{Card: game.Rank2, Direction: game.Forward}, action)
}

func TestShouldGoTo2Or7FallsThroughToTwo(t *testing.T) {
	rest := game.NewRestCounts()
	counts := game.RankCounts{0, 2, 0, 0, 0}

	// Distance 4: reaching 7 would mean retreating, reaching 2 advances.
	action, ok := ShouldGoTo2Or7(counts, 4, rest, nil)
	require.True(t, ok)
	assert.Equal(t, game.Move{Card: game.Rank2, Direction: game.Forward}, action)
}

func TestShouldGoTo2Or7RespectsTheGate(t *testing.T) {
	rest := game.NewRestCounts()
	// A lone 2 is not spendable, and no rank spans 9 -> 2.
	counts := game.RankCounts{0, 1, 0, 0, 0}

	_, ok := ShouldGoTo2Or7(counts, 9, rest, nil)
	assert.False(t, ok)
}

func TestMiddleMoveAttacksOnCertainWin(t *testing.T) {
	hand := game.NewHand(game.Rank3, game.Rank3, game.Rank3)
	rest := game.RestCounts{5, 5, 2, 5, 5}
	table := analysis.TableForDeck(rest, 10)

	action, ok := MiddleMove(hand, 3, rest, table)
	require.True(t, ok)
	assert.Equal(t, game.Attack{Card: game.Rank3, Quantity: 3}, action)
}

func TestMiddleMoveDeclinesWithoutAConfidentOption(t *testing.T) {
	// A lone 3 at distance 3: the attack is far from a 3/4 win chance and
	// no positional card is held.
	hand := game.NewHand(game.Rank3)
	rest := game.NewRestCounts()
	table := analysis.TableForDeck(rest, 20)

	_, ok := MiddleMove(hand, 3, rest, table)
	assert.False(t, ok)
}

func TestMiddleMoveNeverAttacksOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rest := game.NewRestCounts()
	table := analysis.TableForDeck(rest, 15)

	for trial := 0; trial < 100; trial++ {
		var cards []game.CardRank
		for i := 0; i < game.HandSize; i++ {
			rank, _ := game.RankFromInt(1 + rng.Intn(5))
			cards = append(cards, rank)
		}
		hand := game.NewHand(cards...)
		distance := 6 + rng.Intn(18)

		action, ok := MiddleMove(hand, distance, rest, table)
		if !ok {
			continue
		}
		_, isAttack := action.(game.Attack)
		assert.False(t, isAttack, "attacked at distance %d with hand %v", distance, hand)
	}
}

func TestLastMoveProvesTheForcedStrike(t *testing.T) {
	// One undetermined card, and both remaining 3s are in hand: an attack
	// across distance 3 cannot be answered.
	rest := game.RestCounts{0, 0, 1, 0, 0}
	counts := game.RankCounts{0, 0, 2, 0, 0}
	table := analysis.TableForDeck(rest, 0)

	distance, ok := LastMove(rest, counts, 13, 10, 0, table)
	require.True(t, ok)
	assert.Equal(t, 3, distance)
}

func TestLastMoveWaitsForThePoolToShrink(t *testing.T) {
	rest := game.RestCounts{0, 1, 1, 0, 0}
	counts := game.RankCounts{0, 0, 2, 0, 0}
	table := analysis.TableForDeck(rest, 1)

	_, ok := LastMove(rest, counts, 13, 10, 0, table)
	assert.False(t, ok)

	// Each parried card widens the allowance.
	distance, ok := LastMove(rest, counts, 13, 10, 1, table)
	require.True(t, ok)
	assert.Equal(t, 3, distance)
}

func TestLastMoveNeedsTheExactRankInHand(t *testing.T) {
	rest := game.RestCounts{0, 0, 1, 0, 0}
	counts := game.RankCounts{0, 2, 0, 0, 0}
	table := analysis.TableForDeck(rest, 0)

	_, ok := LastMove(rest, counts, 13, 10, 0, table)
	assert.False(t, ok)
}

func TestLastMoveNeedsAPlayableDistance(t *testing.T) {
	rest := game.RestCounts{0, 0, 1, 0, 0}
	counts := game.RankCounts{0, 0, 2, 0, 0}
	table := analysis.TableForDeck(rest, 0)

	_, ok := LastMove(rest, counts, 20, 10, 0, table)
	assert.False(t, ok)
}

func TestLastMoveRejectsAnUncertainWin(t *testing.T) {
	// Two 3s unseen against two held: the opponent may hold a matching
	// pair, so the win is not exact.
	rest := game.RestCounts{0, 0, 2, 0, 0}
	counts := game.RankCounts{0, 0, 2, 0, 0}
	table := analysis.TableForDeck(rest, 3)

	_, ok := LastMove(rest, counts, 13, 10, 1, table)
	assert.False(t, ok)
}
