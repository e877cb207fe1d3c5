package protocol

import (
	"fmt"

	"github.com/infoFiets/llm-catan-arena/game"
)

// fakeEngine gives the tests full control over views and legal actions.
type fakeEngine struct {
	seats     []game.Seat
	current   game.Seat
	turn      int
	actions   []game.Action
	hands     map[game.Seat]game.Hand
	publics   map[game.Seat]game.Public
	committed []game.Action
	winner    game.Seat
	lastRoll  int
	deckSize  int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		seats:   []game.Seat{"red", "blue", "white"},
		current: "red",
		turn:    4,
		actions: []game.Action{
			{Type: game.BuildSettlement, Target: 12},
			{Type: game.BuyDevCard, Target: -1},
			{Type: game.EndTurn, Target: -1},
		},
		hands: map[game.Seat]game.Hand{
			"red":   {TotalResources: 7, VictoryPoints: 5, PublicPoints: 4},
			"blue":  {TotalResources: 3, VictoryPoints: 3, PublicPoints: 3},
			"white": {TotalResources: 9, VictoryPoints: 6, PublicPoints: 4},
		},
		publics: map[game.Seat]game.Public{
			"red":   {VictoryPoints: 4, ResourceCount: 7},
			"blue":  {VictoryPoints: 3, ResourceCount: 3},
			"white": {VictoryPoints: 4, ResourceCount: 9},
		},
		lastRoll: 8,
		deckSize: 20,
	}
}

func (e *fakeEngine) CurrentActor() game.Seat { return e.current }
func (e *fakeEngine) Turn() int               { return e.turn }
func (e *fakeEngine) Seats() []game.Seat      { return e.seats }

func (e *fakeEngine) LegalActions(seat game.Seat) []game.Action {
	if seat != e.current {
		return nil
	}
	return append([]game.Action(nil), e.actions...)
}

func (e *fakeEngine) Commit(action game.Action) error {
	e.committed = append(e.committed, action)
	return nil
}

func (e *fakeEngine) IsTerminal() bool { return e.winner != "" }

func (e *fakeEngine) Winner() (game.Seat, bool) { return e.winner, e.winner != "" }

func (e *fakeEngine) HandView(seat game.Seat) (game.Hand, error) {
	hand, ok := e.hands[seat]
	if !ok {
		return game.Hand{}, fmt.Errorf("no such seat %q", seat)
	}
	return hand, nil
}

func (e *fakeEngine) PublicView(seat game.Seat) (game.Public, error) {
	public, ok := e.publics[seat]
	if !ok {
		return game.Public{}, fmt.Errorf("no such seat %q", seat)
	}
	return public, nil
}

func (e *fakeEngine) DevDeckSize() int { return e.deckSize }
func (e *fakeEngine) LastRoll() int    { return e.lastRoll }
