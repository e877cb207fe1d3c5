package game

import "fmt"

// Seat identifies one participant slot in a match ("RED", "BLUE", ...).
type Seat string

// ActionType represents the type of action a seat can perform.
type ActionType int

const (
	BuildRoad ActionType = iota
	BuildSettlement
	BuildCity
	BuyDevCard
	PlayKnight
	EndTurn
)

func (t ActionType) String() string {
	switch t {
	case BuildRoad:
		return "build_road"
	case BuildSettlement:
		return "build_settlement"
	case BuildCity:
		return "build_city"
	case BuyDevCard:
		return "buy_dev_card"
	case PlayKnight:
		return "play_knight"
	case EndTurn:
		return "end_turn"
	default:
		return "unknown"
	}
}

// Action represents a single legal move for the current actor. Target is the
// node or edge the action applies to, -1 when the action has no location.
type Action struct {
	Type   ActionType
	Target int
}

// EndsTurn reports whether committing this action passes play to the next seat.
func (a Action) EndsTurn() bool {
	return a.Type == EndTurn
}

// String renders a human-readable description, e.g. "build settlement at node 12".
func (a Action) String() string {
	switch a.Type {
	case BuildRoad:
		return fmt.Sprintf("build road on edge %d", a.Target)
	case BuildSettlement:
		return fmt.Sprintf("build settlement at node %d", a.Target)
	case BuildCity:
		return fmt.Sprintf("upgrade settlement at node %d to city", a.Target)
	case BuyDevCard:
		return "buy development card"
	case PlayKnight:
		return "play knight"
	case EndTurn:
		return "end turn"
	default:
		return "unknown action"
	}
}
