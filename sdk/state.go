package sdk

import (
	"sort"

	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/internal/protocol"
)

// Board geometry of the engarde server: positions run 1..23 and the two
// players start on opposite ends.
const (
	boardMin = 1
	boardMax = 23

	startingDeckSize = 25
)

// State is everything the bot can see: its seat, its hand, the board, and
// the running tally of cards observed as played. The run loop owns the
// state and serializes updates; the decision layer only reads it.
type State struct {
	ID protocol.PlayerID

	Hand game.Hand
	Rest game.RestCounts

	P0Position int
	P1Position int
	P0Score    int
	P1Score    int
	DeckSize   int

	// Parries counts opponent parries this round: attacks of ours that
	// did not end the round.
	Parries int
}

// NewState returns the start-of-match state for the given seat.
func NewState(id protocol.PlayerID) *State {
	return &State{
		ID:         id,
		Rest:       game.NewRestCounts(),
		P0Position: boardMin,
		P1Position: boardMax,
		DeckSize:   startingDeckSize,
	}
}

// Distance returns the board gap between the players.
func (s *State) Distance() int {
	return s.P1Position - s.P0Position
}

// MyPosition returns the acting player's position.
func (s *State) MyPosition() int {
	if s.ID == 0 {
		return s.P0Position
	}
	return s.P1Position
}

// EnemyPosition returns the opponent's position.
func (s *State) EnemyPosition() int {
	if s.ID == 0 {
		return s.P1Position
	}
	return s.P0Position
}

// ApplyBoard folds a BoardInfo message into the state.
func (s *State) ApplyBoard(b *protocol.BoardInfo) {
	s.P0Position = int(b.PlayerPosition0)
	s.P1Position = int(b.PlayerPosition1)
	s.P0Score = int(b.PlayerScore0)
	s.P1Score = int(b.PlayerScore1)
	s.DeckSize = int(b.NumOfDeck)
}

// SetHand replaces the hand with a freshly sorted copy.
func (s *State) SetHand(hand game.Hand) {
	s.Hand = hand
}

// Observe records a played action, own or opponent's, against the tally.
func (s *State) Observe(action game.Action) {
	s.Rest.Observe(action)
}

// ResetRound restores the start-of-round tally and parry count.
func (s *State) ResetRound() {
	s.Rest = game.NewRestCounts()
	s.Parries = 0
}

// LegalActions enumerates every action the server would accept right now:
// moves that stay on the board and do not pass the opponent, plus the
// all-copies attack when the distance matches a held rank.
func (s *State) LegalActions() []game.Action {
	var actions []game.Action
	seen := map[game.CardRank]bool{}
	for _, card := range s.Hand {
		if seen[card] {
			continue
		}
		seen[card] = true
		for _, dir := range []game.Direction{game.Back, game.Forward} {
			if s.moveStaysOnBoard(card, dir) {
				actions = append(actions, game.Move{Card: card, Direction: dir})
			}
		}
	}
	if rank, ok := game.RankFromInt(s.Distance()); ok {
		if held := s.Hand.Count(rank); held > 0 {
			actions = append(actions, game.Attack{Card: rank, Quantity: held})
		}
	}
	return actions
}

func (s *State) moveStaysOnBoard(card game.CardRank, dir game.Direction) bool {
	step := card.Int()
	if s.ID == 0 {
		if dir == game.Forward {
			return s.P0Position+step < s.P1Position
		}
		return s.P0Position-step >= boardMin
	}
	if dir == game.Forward {
		return s.P1Position-step > s.P0Position
	}
	return s.P1Position+step <= boardMax
}

// SortActions orders actions by aggression: attacks first, then forward
// moves with the larger card first, then backward moves with the smaller
// card first. The first element is the default fallback action.
func SortActions(actions []game.Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		return actionLess(actions[i], actions[j])
	})
}

func actionLess(a, b game.Action) bool {
	ra, rb := actionRank(a), actionRank(b)
	if ra != rb {
		return ra < rb
	}
	ma, aIsMove := a.(game.Move)
	mb, bIsMove := b.(game.Move)
	if !aIsMove || !bIsMove {
		return false
	}
	if ma.Direction == game.Forward {
		return ma.Card > mb.Card
	}
	return ma.Card < mb.Card
}

func actionRank(a game.Action) int {
	switch v := a.(type) {
	case game.Attack:
		return 0
	case game.Move:
		if v.Direction == game.Forward {
			return 1
		}
		return 2
	}
	return 3
}
