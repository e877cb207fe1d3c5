package protocol

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/infoFiets/llm-catan-arena/engine"
	"github.com/infoFiets/llm-catan-arena/game"
)

// Token scopes one seat's single decision point. A catalog is bound to one
// token and dies with it.
type Token uuid.UUID

// NewToken returns a fresh turn token.
func NewToken() Token {
	return Token(uuid.New())
}

func (t Token) String() string {
	return uuid.UUID(t).String()
}

// ActionEntry pairs a stable in-turn id with a human-readable description
// and the underlying engine action.
type ActionEntry struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	action      game.Action
}

// Action returns the underlying engine action.
func (e ActionEntry) Action() game.Action {
	return e.action
}

// Catalog is the turn-scoped action enumeration. The legal-action list is
// snapshotted from the engine on the first Enumerate call and reused for the
// token's lifetime, so repeated queries return identical ids mapped to the
// same actions even if the engine reorders its raw list in between. Ids are
// sequential integers assigned in first-seen order, starting at 1.
type Catalog struct {
	mu          sync.Mutex
	token       Token
	seat        game.Seat
	eng         engine.Engine
	entries     []ActionEntry
	enumerated  bool
	invalidated bool
}

// NewCatalog binds a catalog to one turn token for the acting seat.
func NewCatalog(token Token, seat game.Seat, eng engine.Engine) *Catalog {
	return &Catalog{
		token: token,
		seat:  seat,
		eng:   eng,
	}
}

// Token returns the turn token this catalog is bound to.
func (c *Catalog) Token() Token {
	return c.token
}

// Enumerate returns the ordered action entries for this turn. The first call
// snapshots the engine's legal actions; later calls replay the snapshot.
func (c *Catalog) Enumerate() ([]ActionEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.invalidated {
		return nil, fmt.Errorf("%w: token %s", ErrUnknownActionID, c.token)
	}
	if !c.enumerated {
		actions := c.eng.LegalActions(c.seat)
		c.entries = make([]ActionEntry, len(actions))
		for i, action := range actions {
			c.entries[i] = ActionEntry{
				ID:          i + 1,
				Description: action.String(),
				action:      action,
			}
		}
		c.enumerated = true
	}
	return append([]ActionEntry(nil), c.entries...), nil
}

// Resolve maps an issued id back to its engine action. Fails with
// ErrUnknownActionID when the id was never issued for this token or the
// token has been invalidated.
func (c *Catalog) Resolve(id int) (game.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.invalidated {
		return game.Action{}, fmt.Errorf("%w: token %s invalidated", ErrUnknownActionID, c.token)
	}
	if !c.enumerated || id < 1 || id > len(c.entries) {
		return game.Action{}, fmt.Errorf("%w: id %d", ErrUnknownActionID, id)
	}
	return c.entries[id-1].action, nil
}

// Invalidate destroys the catalog. Called the instant the turn's action is
// committed or the turn times out.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = true
}
