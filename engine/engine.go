// Package engine defines the rules-engine boundary the mediation layer
// consumes, and a local in-process implementation of it. The engine owns the
// game state exclusively: Commit is the single mutation entry point.
package engine

import (
	"errors"

	"github.com/infoFiets/llm-catan-arena/game"
)

// ErrIllegalAction is returned by Commit when the action is not among the
// current actor's legal actions.
var ErrIllegalAction = errors.New("illegal action")

// Engine is the boundary to the rules engine. Everything except Commit is a
// read-only query.
type Engine interface {
	CurrentActor() game.Seat
	Turn() int
	Seats() []game.Seat
	LegalActions(seat game.Seat) []game.Action
	Commit(action game.Action) error
	IsTerminal() bool
	Winner() (game.Seat, bool)
	HandView(seat game.Seat) (game.Hand, error)
	PublicView(seat game.Seat) (game.Public, error)
	DevDeckSize() int
	LastRoll() int
}
