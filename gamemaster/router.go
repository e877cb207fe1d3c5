// Package gamemaster runs matches: it routes each seat to its interaction
// adapter and drives the turn loop against the engine.
package gamemaster

import (
	"context"
	"fmt"

	"github.com/infoFiets/llm-catan-arena/game"
	"github.com/infoFiets/llm-catan-arena/protocol"
)

// Mode identifies how a seat's agent talks to the protocol layer.
type Mode string

const (
	// ModeStructured agents issue tool calls that map one-to-one onto
	// protocol operations.
	ModeStructured Mode = "structured"
	// ModeFreeText agents answer a rendered prompt in natural language and
	// have their reply parsed into a selection.
	ModeFreeText Mode = "free-text"
)

func validMode(m Mode) bool {
	return m == ModeStructured || m == ModeFreeText
}

// SeatConfig declares one seat's agent and interaction mode. Model is the
// provider model id for LLM-backed agents; baselines leave it empty.
type SeatConfig struct {
	Seat  game.Seat
	Agent string
	Mode  Mode
	Model string
}

// Adapter drives one seat's turn over the interaction channel. It must leave
// the channel in a terminal state or return; the orchestrator falls back for
// any turn that ends without a selection.
type Adapter interface {
	TakeTurn(ctx context.Context, ch *protocol.Channel) error
}

// Binder builds the adapter for one seat config. Called once per seat at
// router construction.
type Binder func(cfg SeatConfig) (Adapter, error)

// Router maps seats to their adapters. All validation happens at
// construction; Resolve is a pure lookup and cannot fail mid-match.
type Router struct {
	adapters map[game.Seat]Adapter
	modes    map[game.Seat]Mode
}

// NewRouter validates the seat configs and binds an adapter per seat. An
// unrecognized mode fails here, with ErrUnknownInteractionMode, never during
// a match.
func NewRouter(configs []SeatConfig, bind Binder) (*Router, error) {
	r := &Router{
		adapters: make(map[game.Seat]Adapter, len(configs)),
		modes:    make(map[game.Seat]Mode, len(configs)),
	}
	for _, cfg := range configs {
		if !validMode(cfg.Mode) {
			return nil, fmt.Errorf("%w: %q for seat %q", protocol.ErrUnknownInteractionMode, cfg.Mode, cfg.Seat)
		}
		if _, dup := r.adapters[cfg.Seat]; dup {
			return nil, fmt.Errorf("duplicate seat %q", cfg.Seat)
		}
		adapter, err := bind(cfg)
		if err != nil {
			return nil, fmt.Errorf("bind seat %q: %w", cfg.Seat, err)
		}
		r.adapters[cfg.Seat] = adapter
		r.modes[cfg.Seat] = cfg.Mode
	}
	return r, nil
}

// Resolve looks up the adapter and mode for a seat.
func (r *Router) Resolve(seat game.Seat) (Adapter, Mode, bool) {
	adapter, ok := r.adapters[seat]
	if !ok {
		return nil, "", false
	}
	return adapter, r.modes[seat], true
}

// Seats returns the routed seats.
func (r *Router) Seats() []game.Seat {
	seats := make([]game.Seat, 0, len(r.adapters))
	for seat := range r.adapters {
		seats = append(seats, seat)
	}
	return seats
}
