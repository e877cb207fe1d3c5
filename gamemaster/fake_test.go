package gamemaster

import (
	"context"
	"fmt"

	"github.com/infoFiets/llm-catan-arena/game"
	"github.com/infoFiets/llm-catan-arena/protocol"
)

// fakeEngine is a deterministic stand-in: every commit counts a turn and
// rotates the actor, and the committing seat wins after winAfter commits.
type fakeEngine struct {
	seats     []game.Seat
	current   int
	turn      int
	actions   []game.Action
	committed []game.Action
	winAfter  int // 0 means nobody ever wins
	winner    game.Seat
}

func newFakeEngine(winAfter int) *fakeEngine {
	return &fakeEngine{
		seats: []game.Seat{"red", "blue"},
		actions: []game.Action{
			{Type: game.BuildSettlement, Target: 12},
			{Type: game.BuyDevCard, Target: -1},
			{Type: game.EndTurn, Target: -1},
		},
		winAfter: winAfter,
	}
}

func (e *fakeEngine) CurrentActor() game.Seat { return e.seats[e.current] }
func (e *fakeEngine) Turn() int               { return e.turn }
func (e *fakeEngine) Seats() []game.Seat      { return e.seats }

func (e *fakeEngine) LegalActions(seat game.Seat) []game.Action {
	if seat != e.CurrentActor() || e.winner != "" {
		return nil
	}
	return append([]game.Action(nil), e.actions...)
}

func (e *fakeEngine) Commit(action game.Action) error {
	if e.winner != "" {
		return fmt.Errorf("match is over")
	}
	e.committed = append(e.committed, action)
	e.turn++
	if e.winAfter > 0 && e.turn >= e.winAfter {
		e.winner = e.CurrentActor()
	}
	e.current = (e.current + 1) % len(e.seats)
	return nil
}

func (e *fakeEngine) IsTerminal() bool          { return e.winner != "" }
func (e *fakeEngine) Winner() (game.Seat, bool) { return e.winner, e.winner != "" }

func (e *fakeEngine) HandView(seat game.Seat) (game.Hand, error) {
	for _, s := range e.seats {
		if s == seat {
			return game.Hand{}, nil
		}
	}
	return game.Hand{}, fmt.Errorf("no such seat %q", seat)
}

func (e *fakeEngine) PublicView(seat game.Seat) (game.Public, error) {
	for _, s := range e.seats {
		if s == seat {
			return game.Public{}, nil
		}
	}
	return game.Public{}, fmt.Errorf("no such seat %q", seat)
}

func (e *fakeEngine) DevDeckSize() int { return 0 }
func (e *fakeEngine) LastRoll() int    { return 0 }

// selectFirst picks the first menu entry every turn.
type selectFirst struct{}

func (selectFirst) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	entries, err := ch.GetValidActions()
	if err != nil {
		return err
	}
	return ch.SelectAction(entries[0].ID)
}

// selectInvalid hammers an id that was never issued.
type selectInvalid struct{}

func (selectInvalid) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	var err error
	for i := 0; i < 10; i++ {
		if err = ch.SelectAction(99); err == nil {
			return nil
		}
		if ch.State() != protocol.StateAwaiting {
			return err
		}
	}
	return err
}

// blocking never answers; it waits out the turn deadline.
type blocking struct{}

func (blocking) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	<-ctx.Done()
	return ctx.Err()
}

func bindFixed(adapter Adapter) Binder {
	return func(cfg SeatConfig) (Adapter, error) {
		return adapter, nil
	}
}
