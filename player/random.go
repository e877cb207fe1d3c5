package player

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/infoFiets/llm-catan-arena/protocol"
)

// Random is the baseline adapter: it queries the menu and selects uniformly.
// Useful for calibrating model agents and for soak-testing the turn loop.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds a random baseline adapter.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	entries, err := ch.GetValidActions()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("empty action menu")
	}
	pick := entries[p.rng.Intn(len(entries))]
	return ch.SelectAction(pick.ID)
}
