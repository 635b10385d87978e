package game

import "fmt"

// Direction is the way a move shifts the acting player relative to the
// opponent.
type Direction uint8

const (
	// Forward moves toward the opponent, shrinking the distance
	Forward Direction = iota
	// Back moves away from the opponent, growing the distance
	Back
)

// String returns the wire representation of the direction ("F" or "B").
func (d Direction) String() string {
	if d == Forward {
		return "F"
	}
	return "B"
}

// DirectionFromString parses "F" or "B".
func DirectionFromString(s string) (Direction, bool) {
	switch s {
	case "F":
		return Forward, true
	case "B":
		return Back, true
	default:
		return 0, false
	}
}

// Action is either a Move or an Attack. The two concrete types are small
// comparable structs, so actions can be compared and used as map keys.
type Action interface {
	isAction()
	String() string
}

// Move plays one card of the given rank to step Forward or Back by that
// many positions.
type Move struct {
	Card      CardRank
	Direction Direction
}

func (Move) isAction() {}

func (m Move) String() string {
	return fmt.Sprintf("move %d%s", m.Card, m.Direction)
}

// Attack plays Quantity copies of Card. Only legal when Card equals the
// current distance.
type Attack struct {
	Card     CardRank
	Quantity Quantity
}

func (Attack) isAction() {}

func (a Attack) String() string {
	return fmt.Sprintf("attack %dx%d", a.Card, a.Quantity)
}
