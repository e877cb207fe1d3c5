package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/infoFiets/llm-catan-arena/engine"
	"github.com/infoFiets/llm-catan-arena/game"
	"github.com/infoFiets/llm-catan-arena/metrics"
	"github.com/infoFiets/llm-catan-arena/protocol"
)

const (
	// DefaultTurnDeadline bounds how long an adapter may hold a turn open.
	DefaultTurnDeadline = 30 * time.Second
	// DefaultMaxTurns caps match length; hitting it scores a draw.
	DefaultMaxTurns = 300
)

// Outcome classifies how a match ended.
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeDraw    Outcome = "draw"
	OutcomeAborted Outcome = "aborted"
)

// MatchResult is what Run hands back.
type MatchResult struct {
	MatchID string
	Outcome Outcome
	Winner  game.Seat
	Turns   int
}

// FallbackPolicy picks the action committed on a seat's behalf when the turn
// ends without a valid selection. Called with the turn's non-empty catalog.
type FallbackPolicy func(entries []protocol.ActionEntry) protocol.ActionEntry

// PreferEndTurn is the default policy: the turn-ending action when the
// catalog offers one, otherwise the first entry.
func PreferEndTurn(entries []protocol.ActionEntry) protocol.ActionEntry {
	for _, e := range entries {
		if e.Action().EndsTurn() {
			return e
		}
	}
	return entries[0]
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithTurnDeadline(d time.Duration) Option {
	return func(o *Orchestrator) { o.deadline = d }
}

func WithMaxTurns(n int) Option {
	return func(o *Orchestrator) { o.maxTurns = n }
}

func WithSelectRetries(n int) Option {
	return func(o *Orchestrator) { o.retries = n }
}

func WithFallbackPolicy(p FallbackPolicy) Option {
	return func(o *Orchestrator) { o.fallback = p }
}

func WithCollector(c metrics.Collector) Option {
	return func(o *Orchestrator) { o.sink = c }
}

func WithMatchID(id string) Option {
	return func(o *Orchestrator) { o.matchID = id }
}

// Orchestrator owns one match: it opens a channel per turn, races the seat's
// adapter against the turn deadline, and commits exactly one action per turn
// no matter how the adapter behaves. The engine is touched from this loop
// only, so match execution is single threaded.
type Orchestrator struct {
	eng      engine.Engine
	router   *Router
	matchID  string
	deadline time.Duration
	maxTurns int
	retries  int
	fallback FallbackPolicy
	sink     metrics.Collector
}

// NewOrchestrator wires a match together. Every seat the engine knows must
// be routed; missing adapters fail here, not mid-match.
func NewOrchestrator(eng engine.Engine, router *Router, opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		eng:      eng,
		router:   router,
		matchID:  uuid.NewString(),
		deadline: DefaultTurnDeadline,
		maxTurns: DefaultMaxTurns,
		retries:  protocol.DefaultSelectRetries,
		fallback: PreferEndTurn,
		sink:     metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(o)
	}
	for _, seat := range eng.Seats() {
		if _, _, ok := router.Resolve(seat); !ok {
			return nil, fmt.Errorf("no adapter routed for seat %q", seat)
		}
	}
	return o, nil
}

// Run plays the match to completion. It returns a result for every ending;
// the error is non-nil only for aborted matches (cancellation or an engine
// invariant violation).
func (o *Orchestrator) Run(ctx context.Context) (MatchResult, error) {
	start := time.Now()
	log.Info().Msgf("match %s: starting with seats %v", o.matchID, o.eng.Seats())

	for {
		if winner, over := o.eng.Winner(); over {
			return o.finish(start, OutcomeWon, winner), nil
		}
		if o.eng.Turn() >= o.maxTurns {
			log.Info().Msgf("match %s: turn ceiling %d reached", o.matchID, o.maxTurns)
			return o.finish(start, OutcomeDraw, ""), nil
		}
		if err := ctx.Err(); err != nil {
			return o.finish(start, OutcomeAborted, ""), err
		}

		if err := o.playTurn(ctx); err != nil {
			return o.finish(start, OutcomeAborted, ""), err
		}
	}
}

// playTurn resolves one decision point: one channel, one adapter run, one
// commit.
func (o *Orchestrator) playTurn(ctx context.Context) error {
	seat := o.eng.CurrentActor()
	turn := o.eng.Turn()
	adapter, mode, ok := o.router.Resolve(seat)
	if !ok {
		return fmt.Errorf("%w: engine produced unrouted actor %q", protocol.ErrEngineInvariant, seat)
	}

	token := protocol.NewToken()
	catalog := protocol.NewCatalog(token, seat, o.eng)
	defer catalog.Invalidate()

	entries, err := catalog.Enumerate()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: empty legal-action list for actor %q on turn %d", protocol.ErrEngineInvariant, seat, turn)
	}

	ch := protocol.NewChannel(o.matchID, seat, o.eng, catalog, o.retries)
	turnStart := time.Now()

	turnCtx, cancel := context.WithTimeout(ctx, o.deadline)
	done := make(chan error, 1)
	go func() {
		done <- adapter.TakeTurn(turnCtx, ch)
	}()
	var adapterErr error
	select {
	case adapterErr = <-done:
	case <-turnCtx.Done():
		ch.Expire()
		adapterErr = turnCtx.Err()
	}
	cancel()

	if err := ctx.Err(); err != nil {
		return err
	}

	var actionID int
	var action game.Action
	var outcome string
	if id, selected := ch.Selected(); selected {
		action, err = catalog.Resolve(id)
		if err != nil {
			return fmt.Errorf("%w: selected id %d no longer resolves", protocol.ErrEngineInvariant, id)
		}
		actionID = id
		outcome = "selected"
	} else {
		if adapterErr != nil && !errors.Is(adapterErr, context.DeadlineExceeded) {
			log.Warn().Msgf("match %s: seat %s turn %d adapter: %v", o.matchID, seat, turn, adapterErr)
		}
		// The adapter may notice the expired deadline before the race
		// above does; classify by the turn context, not by who returned
		// first.
		if errors.Is(turnCtx.Err(), context.DeadlineExceeded) {
			ch.Expire()
		}
		ch.Abandon()
		outcome = "fallback"
		if ch.State() == protocol.StateTimedOut {
			outcome = "timeout"
		}
		entry := o.fallback(entries)
		actionID = entry.ID
		action = entry.Action()
	}

	if err := o.eng.Commit(action); err != nil {
		return fmt.Errorf("%w: commit %s: %v", protocol.ErrEngineInvariant, action, err)
	}

	for _, a := range ch.Audit() {
		log.Debug().Msgf("match %s: seat %s turn %d %s(%s) -> %s", o.matchID, seat, turn, a.Op, a.Args, a.Outcome)
	}
	log.Info().Msgf("match %s: seat %s turn %d %s action %d (%s)", o.matchID, seat, turn, outcome, actionID, action)

	o.sink.RecordTurn(metrics.TurnRecord{
		Match: o.matchID,
		Turn:  turn,
		TurnMetric: metrics.TurnMetric{
			Seat:       seat,
			Mode:       string(mode),
			ActionID:   actionID,
			Action:     action.String(),
			Outcome:    outcome,
			QueryCalls: ch.QueryCalls(),
			Duration:   time.Since(turnStart),
		},
	})
	return nil
}

func (o *Orchestrator) finish(start time.Time, outcome Outcome, winner game.Seat) MatchResult {
	end := time.Now()
	result := MatchResult{
		MatchID: o.matchID,
		Outcome: outcome,
		Winner:  winner,
		Turns:   o.eng.Turn(),
	}
	o.sink.RecordMatch(metrics.MatchRecord{
		Match:     o.matchID,
		Outcome:   string(outcome),
		Winner:    string(winner),
		Turns:     result.Turns,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	log.Info().Msgf("match %s: %s winner=%q turns=%d in %s", o.matchID, outcome, winner, result.Turns, end.Sub(start))
	return result
}
