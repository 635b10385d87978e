// Package protocol implements the JSON-lines wire format of the En Garde
// game server. Every message is a single JSON object terminated by CRLF
// with a "Type" discriminator; the server encodes most numeric fields as
// JSON strings, so inbound numbers are decoded leniently.
package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fencework/engarde/game"
)

// PlayerID identifies one of the two seats.
type PlayerID uint8

const (
	Player0 PlayerID = 0
	Player1 PlayerID = 1
)

// UnmarshalJSON accepts 0, 1, "0", "1", "Zero" and "One"; the server is
// not consistent about which it sends.
func (p *PlayerID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		if v == 0 || v == 1 {
			*p = PlayerID(v)
			return nil
		}
	case string:
		switch v {
		case "0", "Zero":
			*p = Player0
			return nil
		case "1", "One":
			*p = Player1
			return nil
		}
	}
	return fmt.Errorf("protocol: invalid player id %s", data)
}

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

// Int returns the id as an int.
func (p PlayerID) Int() int {
	return int(p)
}

// Int decodes a numeric field that may arrive as a JSON number or a
// string-encoded number.
type Int int

// UnmarshalJSON implements the lenient decoding.
func (n *Int) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		num = json.Number(s)
	}
	v, err := strconv.Atoi(num.String())
	if err != nil {
		return fmt.Errorf("protocol: invalid number %q: %w", num, err)
	}
	*n = Int(v)
	return nil
}

// Envelope fields common to every message.
type header struct {
	Type string `json:"Type"`
	From string `json:"From,omitempty"`
	To   string `json:"To,omitempty"`
}

// ConnectionStart is the first message the server sends; it assigns the
// client its seat.
type ConnectionStart struct {
	header
	ClientID PlayerID `json:"ClientID"`
}

// NameReceived acknowledges the PlayerName message.
type NameReceived struct {
	header
}

// BoardInfo carries both players' positions and scores plus the deck size.
type BoardInfo struct {
	header
	PlayerPosition0 Int       `json:"PlayerPosition_0"`
	PlayerPosition1 Int       `json:"PlayerPosition_1"`
	PlayerScore0    Int       `json:"PlayerScore_0"`
	PlayerScore1    Int       `json:"PlayerScore_1"`
	NumOfDeck       Int       `json:"NumofDeck"`
	CurrentPlayer   *PlayerID `json:"CurrentPlayer,omitempty"`
}

// Distance returns the board gap between the two players.
func (b BoardInfo) Distance() int {
	return int(b.PlayerPosition1) - int(b.PlayerPosition0)
}

// HandInfo carries the client's current hand. Hands shrink below five
// cards after attacks, so the trailing slots are optional.
type HandInfo struct {
	header
	Hand1 Int  `json:"Hand1"`
	Hand2 Int  `json:"Hand2"`
	Hand3 Int  `json:"Hand3"`
	Hand4 *Int `json:"Hand4,omitempty"`
	Hand5 *Int `json:"Hand5,omitempty"`
}

// Hand converts the message into a sorted hand, dropping out-of-range
// slots the way the server leaves gaps.
func (h HandInfo) Hand() game.Hand {
	cards := make([]game.CardRank, 0, game.HandSize)
	add := func(n Int) {
		if rank, ok := game.RankFromInt(int(n)); ok {
			cards = append(cards, rank)
		}
	}
	add(h.Hand1)
	add(h.Hand2)
	add(h.Hand3)
	if h.Hand4 != nil {
		add(*h.Hand4)
	}
	if h.Hand5 != nil {
		add(*h.Hand5)
	}
	return game.NewHand(cards...)
}

// DoPlay asks the client for its evaluation and action.
type DoPlay struct {
	header
	MessageID Int    `json:"MessageID"`
	Message   string `json:"Message"`
}

// Accept acknowledges an Evaluation.
type Accept struct {
	header
	MessageID string `json:"MessageID"`
}

// Played reports the opponent's action. MessageID 101 is a movement, 102
// an attack.
type Played struct {
	header
	MessageID string `json:"MessageID"`
	PlayCard  Int    `json:"PlayCard"`
	Direction string `json:"Direction,omitempty"`
	NumOfCard Int    `json:"NumOfCard,omitempty"`
}

const (
	messageIDMovement = "101"
	messageIDAttack   = "102"
)

// Action converts the report into a game action.
func (p Played) Action() (game.Action, error) {
	card, ok := game.RankFromInt(int(p.PlayCard))
	if !ok {
		return nil, fmt.Errorf("protocol: played card %d out of range", p.PlayCard)
	}
	switch p.MessageID {
	case messageIDMovement:
		dir, ok := game.DirectionFromString(p.Direction)
		if !ok {
			return nil, fmt.Errorf("protocol: invalid direction %q", p.Direction)
		}
		return game.Move{Card: card, Direction: dir}, nil
	case messageIDAttack:
		qty, ok := game.QuantityFromInt(int(p.NumOfCard))
		if !ok {
			return nil, fmt.Errorf("protocol: attack quantity %d out of range", p.NumOfCard)
		}
		return game.Attack{Card: card, Quantity: qty}, nil
	default:
		return nil, fmt.Errorf("protocol: unknown played message id %q", p.MessageID)
	}
}

// RoundEnd reports the round winner (-1 for a drawn round) and the
// running scores.
type RoundEnd struct {
	header
	RoundWinner Int    `json:"RWinner"`
	Score0      Int    `json:"Score0"`
	Score1      Int    `json:"Score1"`
	Message     string `json:"Message"`
}

// GameEnd reports the match winner and final scores.
type GameEnd struct {
	header
	Winner  Int    `json:"Winner"`
	Score0  Int    `json:"Score0"`
	Score1  Int    `json:"Score1"`
	Message string `json:"Message"`
}

// ServerError is a fault report from the server.
type ServerError struct {
	header
	Message   string `json:"Message"`
	MessageID string `json:"MessageID"`
}

// Message is any inbound message; callers type-switch on the concrete
// type returned by Parse.
type Message interface {
	messageType() string
}

func (c *ConnectionStart) messageType() string { return "ConnectionStart" }
func (n *NameReceived) messageType() string    { return "NameReceived" }
func (b *BoardInfo) messageType() string       { return "BoardInfo" }
func (h *HandInfo) messageType() string        { return "HandInfo" }
func (d *DoPlay) messageType() string          { return "DoPlay" }
func (a *Accept) messageType() string          { return "Accept" }
func (p *Played) messageType() string          { return "Played" }
func (r *RoundEnd) messageType() string        { return "RoundEnd" }
func (g *GameEnd) messageType() string         { return "GameEnd" }
func (e *ServerError) messageType() string     { return "Error" }

// Parse decodes one line from the server, dispatching on the Type field.
func Parse(line []byte) (Message, error) {
	var head header
	if err := json.Unmarshal(line, &head); err != nil {
		return nil, fmt.Errorf("protocol: malformed message: %w", err)
	}

	var msg Message
	switch head.Type {
	case "ConnectionStart":
		msg = &ConnectionStart{}
	case "NameReceived":
		msg = &NameReceived{}
	case "BoardInfo":
		msg = &BoardInfo{}
	case "HandInfo":
		msg = &HandInfo{}
	case "DoPlay":
		msg = &DoPlay{}
	case "Accept":
		msg = &Accept{}
	case "Played":
		msg = &Played{}
	case "RoundEnd":
		msg = &RoundEnd{}
	case "GameEnd":
		msg = &GameEnd{}
	case "Error":
		msg = &ServerError{}
	default:
		return nil, fmt.Errorf("protocol: unknown message type %q", head.Type)
	}
	if err := json.Unmarshal(line, msg); err != nil {
		return nil, fmt.Errorf("protocol: decoding %s: %w", head.Type, err)
	}
	return msg, nil
}
