package engine

import (
	"fmt"

	"github.com/infoFiets/llm-catan-arena/game"
)

// Local wraps an in-process GameState behind the Engine boundary. It has
// exactly one writer: Commit. Views and legal-action queries never mutate.
type Local struct {
	state *game.GameState
}

// NewLocal initializes a local engine around an initial state.
func NewLocal(state *game.GameState) *Local {
	return &Local{state: state}
}

func (e *Local) CurrentActor() game.Seat { return e.state.CurrentActor() }

func (e *Local) Turn() int { return e.state.Turn() }

func (e *Local) Seats() []game.Seat { return e.state.Seats() }

func (e *Local) LegalActions(seat game.Seat) []game.Action {
	return e.state.LegalActions(seat)
}

func (e *Local) IsTerminal() bool {
	_, over := e.state.Winner()
	return over
}

func (e *Local) Winner() (game.Seat, bool) { return e.state.Winner() }

func (e *Local) HandView(seat game.Seat) (game.Hand, error) {
	return e.state.HandView(seat)
}

func (e *Local) PublicView(seat game.Seat) (game.Public, error) {
	return e.state.PublicView(seat)
}

func (e *Local) DevDeckSize() int { return e.state.DevDeckSize() }

func (e *Local) LastRoll() int { return e.state.LastRoll() }

// Commit validates an action against the current actor's legal actions and
// applies it. Fails with ErrIllegalAction when the match is over, no legal
// actions exist, or the action is not among them.
func (e *Local) Commit(action game.Action) error {
	if e.IsTerminal() {
		return fmt.Errorf("%w: match is over", ErrIllegalAction)
	}

	legal := e.state.LegalActions(e.state.CurrentActor())
	if len(legal) == 0 {
		return fmt.Errorf("%w: no legal actions available", ErrIllegalAction)
	}
	found := false
	for _, la := range legal {
		if la == action {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrIllegalAction, action)
	}

	e.state = e.state.Play(action)
	return nil
}
