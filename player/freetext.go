package player

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/infoFiets/llm-catan-arena/protocol"
)

// defaultParseRetries is how many unparseable replies are tolerated before
// the adapter gives up and lets the orchestrator fall back.
const defaultParseRetries = 2

// FreeText drives a turn by rendering the state and a numbered action menu
// into a prompt and parsing the model's natural-language reply into a
// selection. A reply that parses to nothing is never silently mapped to the
// first action; after the retry budget the adapter returns an error and the
// fallback is committed and recorded as such.
type FreeText struct {
	model   TextModel
	retries int
}

// NewFreeText builds a free-text adapter around a plain completion model.
func NewFreeText(model TextModel) *FreeText {
	return &FreeText{
		model:   model,
		retries: defaultParseRetries,
	}
}

func (p *FreeText) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	view, err := ch.GetState()
	if err != nil {
		return err
	}
	entries, err := ch.GetValidActions()
	if err != nil {
		return err
	}

	prompt := RenderPrompt(view, entries)
	for attempt := 0; attempt <= p.retries; attempt++ {
		reply, err := p.model.Complete(ctx, prompt)
		if err != nil {
			return fmt.Errorf("text model: %w", err)
		}
		id, ok := ParseSelection(reply, entries)
		if !ok {
			continue
		}
		return ch.SelectAction(id)
	}
	return fmt.Errorf("no parseable selection after %d replies", p.retries+1)
}

// RenderPrompt formats the seat's view and the numbered action menu for a
// free-text model.
func RenderPrompt(view protocol.PlayerView, entries []protocol.ActionEntry) string {
	var b strings.Builder
	b.WriteString("You are playing a turn-based board game. It is your turn.\n\n")
	fmt.Fprintf(&b, "Current state (turn %d, you are seat %s):\n", view.Turn, view.You)
	fmt.Fprintf(&b, "%s\n\n", mustJSON(view))
	b.WriteString("Available actions:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %d. %s\n", e.ID, e.Description)
	}
	b.WriteString("\nReply with the number of your chosen action.\n")
	return b.String()
}

// ParseSelection extracts an action id from a model reply. It first looks
// for an entry's number among the reply's leading tokens, then for an
// entry's description appearing verbatim in the reply. Reports false when
// neither matches.
func ParseSelection(reply string, entries []protocol.ActionEntry) (int, bool) {
	lowered := strings.ToLower(strings.TrimSpace(reply))

	tokens := strings.Fields(lowered)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	for _, token := range tokens {
		token = strings.Trim(token, ".,:;)(]\"'")
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.ID == n {
				return n, true
			}
		}
	}

	for _, e := range entries {
		if strings.Contains(lowered, strings.ToLower(e.Description)) {
			return e.ID, true
		}
	}
	return 0, false
}
