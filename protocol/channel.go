package protocol

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/infoFiets/llm-catan-arena/engine"
	"github.com/infoFiets/llm-catan-arena/game"
)

// ChannelState is the per-turn protocol state. Selected, TimedOut and
// Fallback are terminal.
type ChannelState int

const (
	StateAwaiting ChannelState = iota
	StateSelected
	StateTimedOut
	StateFallback
)

func (s ChannelState) String() string {
	switch s {
	case StateAwaiting:
		return "awaiting_query_or_select"
	case StateSelected:
		return "selected"
	case StateTimedOut:
		return "timed_out"
	case StateFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// DefaultSelectRetries is how many failed selections are tolerated before
// the channel forces a fallback.
const DefaultSelectRetries = 2

// AuditEntry records one protocol call, success or failure. The channel
// hands the accumulated entries to the logging collaborator after the turn;
// it does not retain them beyond that.
type AuditEntry struct {
	Op      string
	Args    string
	Outcome string
	At      time.Time
}

// Channel enforces the per-turn request/response contract: any number of
// queries, exactly one selection, identical behavior regardless of whether
// the transport is structured tool calls or parsed free text. Calls are
// serialized internally because deadline expiry races the agent's response.
type Channel struct {
	mu          sync.Mutex
	state       ChannelState
	matchID     string
	seat        game.Seat
	eng         engine.Engine
	catalog     *Catalog
	retriesLeft int
	queryCalls  int
	selectedID  int
	audit       []AuditEntry
}

// NewChannel opens a channel for one seat's turn. retries < 0 selects the
// default budget.
func NewChannel(matchID string, seat game.Seat, eng engine.Engine, catalog *Catalog, retries int) *Channel {
	if retries < 0 {
		retries = DefaultSelectRetries
	}
	return &Channel{
		state:       StateAwaiting,
		matchID:     matchID,
		seat:        seat,
		eng:         eng,
		catalog:     catalog,
		retriesLeft: retries,
	}
}

func (ch *Channel) record(op, args, outcome string) {
	ch.audit = append(ch.audit, AuditEntry{
		Op:      op,
		Args:    args,
		Outcome: outcome,
		At:      time.Now(),
	})
}

// GetState returns the seat-scoped view. Permitted any number of times while
// the channel is open; never changes the channel state.
func (ch *Channel) GetState() (PlayerView, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != StateAwaiting {
		ch.record("get_game_state", "", "turn_already_resolved")
		return PlayerView{}, ErrTurnAlreadyResolved
	}
	ch.queryCalls++
	view, err := Snapshot(ch.eng, ch.matchID, ch.seat)
	if err != nil {
		ch.record("get_game_state", "", "error")
		return PlayerView{}, err
	}
	ch.record("get_game_state", "", "ok")
	return view, nil
}

// GetValidActions returns the turn's catalog entries. Permitted any number
// of times while the channel is open; ids are stable across calls.
func (ch *Channel) GetValidActions() ([]ActionEntry, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != StateAwaiting {
		ch.record("get_valid_actions", "", "turn_already_resolved")
		return nil, ErrTurnAlreadyResolved
	}
	ch.queryCalls++
	entries, err := ch.catalog.Enumerate()
	if err != nil {
		ch.record("get_valid_actions", "", "error")
		return nil, err
	}
	ch.record("get_valid_actions", "", "ok")
	return entries, nil
}

// SelectAction marks the turn's choice. Exactly one selection succeeds per
// turn. An id that does not resolve fails with ErrInvalidSelection and burns
// one retry; when the budget is exhausted the channel transitions to
// fallback. Selecting after the turn is resolved fails with
// ErrTurnAlreadyResolved and has no effect.
func (ch *Channel) SelectAction(id int) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	args := fmt.Sprintf("id=%d", id)
	if ch.state != StateAwaiting {
		ch.record("select_action", args, "turn_already_resolved")
		return ErrTurnAlreadyResolved
	}

	// Issue ids if the agent selects without having queried first.
	if _, err := ch.catalog.Enumerate(); err != nil {
		ch.record("select_action", args, "error")
		return err
	}

	if _, err := ch.catalog.Resolve(id); err != nil {
		if errors.Is(err, ErrUnknownActionID) {
			if ch.retriesLeft == 0 {
				ch.state = StateFallback
				ch.record("select_action", args, "invalid_selection_fallback")
				return fmt.Errorf("%w: id %d, retries exhausted", ErrInvalidSelection, id)
			}
			ch.retriesLeft--
			ch.record("select_action", args, "invalid_selection")
			return fmt.Errorf("%w: id %d", ErrInvalidSelection, id)
		}
		ch.record("select_action", args, "error")
		return err
	}

	ch.selectedID = id
	ch.state = StateSelected
	ch.record("select_action", args, "ok")
	return nil
}

// Expire transitions an open channel to TimedOut. Reports whether the call
// performed the transition; false means the turn was already resolved.
func (ch *Channel) Expire() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != StateAwaiting {
		return false
	}
	ch.state = StateTimedOut
	ch.record("expire", "", "timed_out")
	return true
}

// Abandon transitions an open channel to Fallback. Used when the adapter
// gives up (unrecoverable decode errors, step budget) without selecting.
func (ch *Channel) Abandon() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != StateAwaiting {
		return false
	}
	ch.state = StateFallback
	ch.record("abandon", "", "fallback")
	return true
}

// State returns the current channel state.
func (ch *Channel) State() ChannelState {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.state
}

// Selected returns the chosen id once the channel is in StateSelected.
func (ch *Channel) Selected() (int, bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.selectedID, ch.state == StateSelected
}

// QueryCalls returns how many query calls the agent made this turn.
func (ch *Channel) QueryCalls() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.queryCalls
}

// Audit drains the turn's call log for the logging collaborator.
func (ch *Channel) Audit() []AuditEntry {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	entries := ch.audit
	ch.audit = nil
	return entries
}
