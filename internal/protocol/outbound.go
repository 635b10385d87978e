package protocol

import (
	"fmt"
	"math/big"

	"github.com/fencework/engarde/game"
)

const (
	fromClient = "Client"
	toServer   = "Server"
)

// PlayerName registers the client's display name after ConnectionStart.
type PlayerName struct {
	Type string `json:"Type"`
	From string `json:"From"`
	To   string `json:"To"`
	Name string `json:"Name"`
}

// NewPlayerName builds the registration message.
func NewPlayerName(name string) *PlayerName {
	return &PlayerName{Type: "PlayerName", From: fromClient, To: toServer, Name: name}
}

// Evaluation reports the client's weighting of each movement before it
// plays. Keys are "<rank>F" / "<rank>B"; unset moves are omitted.
type Evaluation struct {
	Type string `json:"Type"`
	From string `json:"From"`
	To   string `json:"To"`

	Eval1F *string `json:"1F,omitempty"`
	Eval1B *string `json:"1B,omitempty"`
	Eval2F *string `json:"2F,omitempty"`
	Eval2B *string `json:"2B,omitempty"`
	Eval3F *string `json:"3F,omitempty"`
	Eval3B *string `json:"3B,omitempty"`
	Eval4F *string `json:"4F,omitempty"`
	Eval4B *string `json:"4B,omitempty"`
	Eval5F *string `json:"5F,omitempty"`
	Eval5B *string `json:"5B,omitempty"`
}

// NewEvaluation returns an evaluation with the default weight the server
// expects when the client has nothing better to report.
func NewEvaluation() *Evaluation {
	e := &Evaluation{Type: "Evaluation", From: fromClient, To: toServer}
	weight := "1.0"
	e.Eval1F = &weight
	return e
}

// Set assigns a weight to one movement. Weights are truncated decimals;
// the server parses them as floats.
func (e *Evaluation) Set(move game.Move, weight *big.Rat) {
	s := weight.FloatString(3)
	slot := e.slot(move)
	if slot != nil {
		*slot = &s
	}
}

func (e *Evaluation) slot(move game.Move) **string {
	forward := move.Direction == game.Forward
	switch move.Card {
	case game.Rank1:
		if forward {
			return &e.Eval1F
		}
		return &e.Eval1B
	case game.Rank2:
		if forward {
			return &e.Eval2F
		}
		return &e.Eval2B
	case game.Rank3:
		if forward {
			return &e.Eval3F
		}
		return &e.Eval3B
	case game.Rank4:
		if forward {
			return &e.Eval4F
		}
		return &e.Eval4B
	case game.Rank5:
		if forward {
			return &e.Eval5F
		}
		return &e.Eval5B
	}
	return nil
}

// PlayMovement plays one card as a move.
type PlayMovement struct {
	Type      string `json:"Type"`
	From      string `json:"From"`
	To        string `json:"To"`
	MessageID string `json:"MessageID"`
	PlayCard  string `json:"PlayCard"`
	Direction string `json:"Direction"`
}

// PlayAttack plays one or more copies of a card as an attack.
type PlayAttack struct {
	Type      string `json:"Type"`
	From      string `json:"From"`
	To        string `json:"To"`
	MessageID string `json:"MessageID"`
	PlayCard  string `json:"PlayCard"`
	NumOfCard string `json:"NumOfCard"`
}

// NewPlay converts a game action into its wire message.
func NewPlay(action game.Action) any {
	switch a := action.(type) {
	case game.Move:
		return &PlayMovement{
			Type:      "Play",
			From:      fromClient,
			To:        toServer,
			MessageID: messageIDMovement,
			PlayCard:  fmt.Sprintf("%d", a.Card),
			Direction: a.Direction.String(),
		}
	case game.Attack:
		return &PlayAttack{
			Type:      "Play",
			From:      fromClient,
			To:        toServer,
			MessageID: messageIDAttack,
			PlayCard:  fmt.Sprintf("%d", a.Card),
			NumOfCard: fmt.Sprintf("%d", a.Quantity),
		}
	}
	return nil
}
