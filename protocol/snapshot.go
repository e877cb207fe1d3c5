package protocol

import (
	"fmt"

	"github.com/infoFiets/llm-catan-arena/engine"
	"github.com/infoFiets/llm-catan-arena/game"
)

// PlayerView is an immutable, serializable view of the match scoped to one
// seat: own holdings in full, opponents as aggregate counts only. Built
// fresh on every request, never cached across turns.
type PlayerView struct {
	MatchID      string         `json:"match_id"`
	Turn         int            `json:"turn_number"`
	CurrentActor game.Seat      `json:"current_actor"`
	You          game.Seat      `json:"your_seat"`
	Hand         game.Hand      `json:"your_state"`
	Opponents    []OpponentView `json:"opponents"`
	LastRoll     int            `json:"last_roll"`
	DevDeckSize  int            `json:"development_cards_remaining"`
}

// OpponentView carries one opponent's public-only summary.
type OpponentView struct {
	Seat game.Seat `json:"seat"`
	game.Public
}

// Snapshot builds a PlayerView of the engine state from the viewing seat's
// perspective. Pure read: no side effects, no agent calls. Fails with
// ErrInvalidSeat when the seat does not participate in the match.
func Snapshot(eng engine.Engine, matchID string, seat game.Seat) (PlayerView, error) {
	hand, err := eng.HandView(seat)
	if err != nil {
		return PlayerView{}, fmt.Errorf("%w: %q", ErrInvalidSeat, seat)
	}

	view := PlayerView{
		MatchID:      matchID,
		Turn:         eng.Turn(),
		CurrentActor: eng.CurrentActor(),
		You:          seat,
		Hand:         hand,
		LastRoll:     eng.LastRoll(),
		DevDeckSize:  eng.DevDeckSize(),
	}
	for _, other := range eng.Seats() {
		if other == seat {
			continue
		}
		public, err := eng.PublicView(other)
		if err != nil {
			return PlayerView{}, fmt.Errorf("%w: %q", ErrInvalidSeat, other)
		}
		view.Opponents = append(view.Opponents, OpponentView{Seat: other, Public: public})
	}
	return view, nil
}
