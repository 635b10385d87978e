package bots

import (
	"encoding/json"
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/internal/protocol"
	"github.com/fencework/engarde/sdk"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func TestRegistryKnowsEveryName(t *testing.T) {
	for _, name := range Names() {
		handler, err := New(name, 1, discard())
		require.NoError(t, err, name)
		assert.NotNil(t, handler, name)
	}
	_, err := New("clairvoyant", 1, discard())
	assert.Error(t, err)
}

func TestAlgorithmOpensWithAHighCard(t *testing.T) {
	state := sdk.NewState(protocol.Player0)
	state.SetHand(game.NewHand(game.Rank1, game.Rank2, game.Rank3, game.Rank4, game.Rank5))

	action, err := NewAlgorithm(discard()).Act(state)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Card: game.Rank5, Direction: game.Forward}, action)
}

func TestAlgorithmTakesTheCertainAttack(t *testing.T) {
	state := sdk.NewState(protocol.Player0)
	state.P0Position = 10
	state.P1Position = 13
	state.DeckSize = 10
	state.SetHand(game.NewHand(game.Rank3, game.Rank3, game.Rank3))
	// Only two 3s unseen: the all-in attack wins outright.
	state.Rest = game.RestCounts{5, 5, 2, 5, 5}

	action, err := NewAlgorithm(discard()).Act(state)
	require.NoError(t, err)
	assert.Equal(t, game.Attack{Card: game.Rank3, Quantity: 3}, action)
}

func TestAlgorithmAlwaysPicksALegalAction(t *testing.T) {
	handler := NewAlgorithm(discard())
	boards := []struct{ p0, p1, deck int }{
		{1, 23, 25},
		{5, 18, 20},
		{8, 15, 12},
		{10, 13, 6},
		{11, 12, 2},
	}
	hands := []game.Hand{
		game.NewHand(game.Rank1, game.Rank1, game.Rank2, game.Rank3, game.Rank5),
		game.NewHand(game.Rank2, game.Rank2, game.Rank4, game.Rank4, game.Rank5),
		game.NewHand(game.Rank3, game.Rank3, game.Rank3),
	}
	for _, board := range boards {
		for _, hand := range hands {
			state := sdk.NewState(protocol.Player0)
			state.P0Position = board.p0
			state.P1Position = board.p1
			state.DeckSize = board.deck
			state.SetHand(hand)

			action, err := handler.Act(state)
			require.NoError(t, err, "board %+v hand %v", board, hand)
			assert.Contains(t, state.LegalActions(), action, "board %+v hand %v", board, hand)
		}
	}
}

func TestAlgorithmEvaluationWeightsSumToOne(t *testing.T) {
	state := sdk.NewState(protocol.Player0)
	state.P0Position = 9
	state.P1Position = 14
	state.DeckSize = 15
	state.SetHand(game.NewHand(game.Rank2, game.Rank3, game.Rank3))

	evaluation := NewAlgorithm(discard()).Evaluate(state)
	require.NotNil(t, evaluation)

	data, err := json.Marshal(evaluation)
	require.NoError(t, err)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(data, &fields))

	sum := 0.0
	for key, value := range fields {
		if key == "Type" || key == "From" || key == "To" {
			continue
		}
		weight, err := strconv.ParseFloat(value, 64)
		require.NoError(t, err, key)
		assert.GreaterOrEqual(t, weight, 0.0, key)
		sum += weight
	}
	// Weights are truncated to three decimals, so the sum falls just
	// short of exactly one.
	assert.InDelta(t, 1.0, sum, 0.01)
}

func TestAggressivePrefersTheAttack(t *testing.T) {
	state := sdk.NewState(protocol.Player0)
	state.P0Position = 10
	state.P1Position = 13
	state.SetHand(game.NewHand(game.Rank2, game.Rank3))

	action, err := NewAggressive().Act(state)
	require.NoError(t, err)
	assert.Equal(t, game.Attack{Card: game.Rank3, Quantity: 1}, action)
}

func TestRandomIsDeterministicForAFixedSeed(t *testing.T) {
	pick := func() game.Action {
		state := sdk.NewState(protocol.Player0)
		state.P0Position = 8
		state.P1Position = 16
		state.SetHand(game.NewHand(game.Rank1, game.Rank2, game.Rank3, game.Rank4, game.Rank5))
		action, err := NewRandom(99).Act(state)
		require.NoError(t, err)
		return action
	}
	assert.Equal(t, pick(), pick())
}

func TestRandomStaysLegal(t *testing.T) {
	handler := NewRandom(3)
	state := sdk.NewState(protocol.Player1)
	state.P0Position = 18
	state.P1Position = 21
	state.SetHand(game.NewHand(game.Rank3, game.Rank5))

	for i := 0; i < 20; i++ {
		action, err := handler.Act(state)
		require.NoError(t, err)
		assert.Contains(t, state.LegalActions(), action)
	}
}
