package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/infoFiets/llm-catan-arena/game"
)

func newTestEngine(t *testing.T) *Local {
	t.Helper()
	state := game.NewStandard([]game.Seat{"red", "blue"}, game.NewStandardRules(), 7)
	return NewLocal(state)
}

func TestCommitLegalAction(t *testing.T) {
	e := newTestEngine(t)
	actor := e.CurrentActor()
	legal := e.LegalActions(actor)
	require.NotEmpty(t, legal)

	err := e.Commit(legal[len(legal)-1]) // end turn

	require.NoError(t, err)
	require.Equal(t, 1, e.Turn())
	require.NotEqual(t, actor, e.CurrentActor(), "committing end turn should rotate the actor")
}

func TestCommitIllegalAction(t *testing.T) {
	e := newTestEngine(t)

	err := e.Commit(game.Action{Type: game.PlayKnight, Target: -1})

	require.ErrorIs(t, err, ErrIllegalAction, "no knight in hand at match start")
	require.Equal(t, 0, e.Turn(), "rejected commits should not advance the match")
}

func TestCommitAfterTerminal(t *testing.T) {
	rules := game.NewStandardRules()
	rules.VictoryPoints = 2 // starting settlements already reach this
	state := game.NewStandard([]game.Seat{"red", "blue"}, rules, 7)
	state = state.Play(game.Action{Type: game.EndTurn, Target: -1})
	e := NewLocal(state)

	require.True(t, e.IsTerminal())
	err := e.Commit(game.Action{Type: game.EndTurn, Target: -1})
	require.ErrorIs(t, err, ErrIllegalAction)
}

func TestViewsForUnknownSeat(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.HandView("nobody")
	require.Error(t, err)
	_, err = e.PublicView("nobody")
	require.Error(t, err)
}
