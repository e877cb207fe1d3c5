package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func standardSeats() []Seat {
	return []Seat{"red", "blue", "white"}
}

func TestNewStandard(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)

	require.Equal(t, Seat("red"), gs.CurrentActor(), "first seat should open the match")
	require.Equal(t, 0, gs.Turn())
	require.Equal(t, standardSeats(), gs.Seats())
	require.Equal(t, 25, gs.DevDeckSize(), "full deck before anyone buys")

	_, over := gs.Winner()
	require.False(t, over)

	for _, seat := range standardSeats() {
		hand, err := gs.HandView(seat)
		require.NoError(t, err)
		require.Equal(t, 2, hand.Settlements, "two starting settlements per seat")
		require.Equal(t, 2, hand.Roads, "two starting roads per seat")
		require.Equal(t, 0, hand.Cities)
		require.Equal(t, 2, hand.VictoryPoints)
		require.GreaterOrEqual(t, hand.TotalResources, NumResources,
			"one of each starting resource plus the opening production roll")
	}
}

func TestNewStandardPanicsOnTooFewSeats(t *testing.T) {
	require.Panics(t, func() {
		NewStandard([]Seat{"solo"}, NewStandardRules(), 1)
	})
}

func TestLegalActions(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)

	t.Run("only the current actor has actions", func(t *testing.T) {
		require.NotEmpty(t, gs.LegalActions("red"))
		require.Nil(t, gs.LegalActions("blue"))
		require.Nil(t, gs.LegalActions("white"))
		require.Nil(t, gs.LegalActions("nobody"))
	})

	t.Run("end turn is always offered last", func(t *testing.T) {
		actions := gs.LegalActions("red")
		require.Equal(t, Action{Type: EndTurn, Target: -1}, actions[len(actions)-1])
	})

	t.Run("build targets are free locations", func(t *testing.T) {
		for _, a := range gs.LegalActions("red") {
			switch a.Type {
			case BuildSettlement:
				require.Equal(t, -1, gs.nodeOwner[a.Target], "settlement target should be unowned")
			case BuildRoad:
				require.Equal(t, -1, gs.edgeOwner[a.Target], "road target should be unowned")
			}
		}
	})
}

func TestPlayDoesNotMutateOriginal(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)
	before, err := gs.HandView("red")
	require.NoError(t, err)

	next := gs.Play(Action{Type: EndTurn, Target: -1})

	require.Equal(t, 0, gs.Turn(), "original state should be unchanged")
	require.Equal(t, Seat("red"), gs.CurrentActor())
	after, err := gs.HandView("red")
	require.NoError(t, err)
	require.Equal(t, before.Settlements, after.Settlements)

	require.Equal(t, 1, next.Turn())
	require.Equal(t, Seat("blue"), next.CurrentActor(), "end turn should rotate the actor")
}

func TestPlayEndTurnProduces(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)
	next := gs.Play(Action{Type: EndTurn, Target: -1})

	require.NotZero(t, next.LastRoll(), "rotation should roll for production")
	require.GreaterOrEqual(t, next.LastRoll(), 2)
	require.LessOrEqual(t, next.LastRoll(), 12)
}

func TestPlayBuyDevCard(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)
	seat := gs.CurrentActor()
	p := gs.players[seat]
	p.resources = [NumResources]int{2, 2, 2, 2, 2}

	next := gs.Play(Action{Type: BuyDevCard, Target: -1})

	require.Equal(t, 24, next.DevDeckSize())
	hand, err := next.HandView(seat)
	require.NoError(t, err)
	require.Equal(t, 1, hand.TotalDevCards)
	require.Equal(t, 10-3, hand.TotalResources, "dev card costs one sheep, wheat and ore")
}

func TestPlayBuildCityReplacesSettlement(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)
	seat := gs.CurrentActor()
	p := gs.players[seat]
	p.resources = [NumResources]int{0, 0, 0, 2, 3}
	node := p.settlements[0]

	next := gs.Play(Action{Type: BuildCity, Target: node})

	hand, err := next.HandView(seat)
	require.NoError(t, err)
	require.Equal(t, 1, hand.Settlements)
	require.Equal(t, 1, hand.Cities)
	require.Equal(t, 3, hand.VictoryPoints, "one settlement plus one city")
}

func TestVictoryDetection(t *testing.T) {
	rules := NewStandardRules()
	rules.VictoryPoints = 3
	gs := NewStandard(standardSeats(), rules, 1)
	seat := gs.CurrentActor()
	p := gs.players[seat]
	p.resources = [NumResources]int{0, 0, 0, 2, 3}
	node := p.settlements[0]

	next := gs.Play(Action{Type: BuildCity, Target: node})

	winner, over := next.Winner()
	require.True(t, over, "city should push the actor to the threshold")
	require.Equal(t, seat, winner)
	require.Nil(t, next.LegalActions(seat), "no actions once the match is decided")
}

func TestLargestArmy(t *testing.T) {
	gs := NewStandard(standardSeats(), NewStandardRules(), 1)
	seat := gs.CurrentActor()
	gs.players[seat].devCards[Knight] = 3

	next := gs
	for i := 0; i < 3; i++ {
		next = next.Play(Action{Type: PlayKnight, Target: -1})
	}

	hand, err := next.HandView(seat)
	require.NoError(t, err)
	require.Equal(t, 3, hand.KnightsPlayed)
	require.True(t, hand.HasLargestArmy)
	require.Equal(t, 2+2, hand.VictoryPoints, "two settlements plus the largest-army bonus")

	other, err := next.HandView("blue")
	require.NoError(t, err)
	require.False(t, other.HasLargestArmy)
}
