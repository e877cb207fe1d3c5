// Package protocol is the turn-mediation layer between an agent and the
// rules engine: per-seat state snapshots, turn-scoped action catalogs, and
// the per-turn interaction channel state machine.
package protocol

import "errors"

var (
	// ErrInvalidSeat is returned when a view is requested for a seat that is
	// not a participant in the match.
	ErrInvalidSeat = errors.New("seat is not a participant in this match")
	// ErrUnknownActionID is returned when an id was never issued for the
	// turn token, or the token has already been invalidated.
	ErrUnknownActionID = errors.New("unknown action id for this turn")
	// ErrInvalidSelection is returned by SelectAction for ids that do not
	// resolve to a catalog entry. Recoverable: the channel stays open until
	// the retry budget runs out.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrTurnAlreadyResolved is returned for any call after the channel has
	// reached a terminal state. Has no effect on the outcome.
	ErrTurnAlreadyResolved = errors.New("turn already resolved")
	// ErrUnknownInteractionMode is a configuration-time error: seat configs
	// are validated at match construction, never mid-match.
	ErrUnknownInteractionMode = errors.New("unknown interaction mode")
	// ErrEngineInvariant is fatal: the engine broke its own contract (e.g.
	// an empty legal-action list for the current actor).
	ErrEngineInvariant = errors.New("engine invariant violation")
)
