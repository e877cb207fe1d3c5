package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/infoFiets/llm-catan-arena/protocol"
)

const structuredSystemPrompt = "You are playing a turn-based board game. " +
	"Use get_game_state and get_valid_actions to inspect your situation, " +
	"then call select_action exactly once with the action_id of your chosen move."

// defaultMaxSteps bounds the tool-calling conversation per turn.
const defaultMaxSteps = 8

// Structured drives a turn through the tool-calling loop: the model issues
// tool calls, the adapter executes them against the channel and feeds the
// results back, until the model selects an action or the step budget runs
// out. Errors bubble up so the orchestrator can fall back.
type Structured struct {
	model    ToolModel
	maxSteps int
}

// NewStructured builds a structured adapter around a tool-calling model.
func NewStructured(model ToolModel) *Structured {
	return &Structured{
		model:    model,
		maxSteps: defaultMaxSteps,
	}
}

func (p *Structured) TakeTurn(ctx context.Context, ch *protocol.Channel) error {
	msgs := []Message{
		{Role: "system", Content: structuredSystemPrompt},
		{Role: "user", Content: "Make your move in the game."},
	}
	tools := Tools()

	for step := 0; step < p.maxSteps; step++ {
		reply, err := p.model.Chat(ctx, msgs, tools)
		if err != nil {
			return fmt.Errorf("tool model: %w", err)
		}
		if len(reply.ToolCalls) == 0 {
			return errors.New("model ended its turn without selecting an action")
		}
		msgs = append(msgs, reply)

		for _, call := range reply.ToolCalls {
			content := p.dispatch(ch, call)
			msgs = append(msgs, Message{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    content,
			})
		}

		if _, ok := ch.Selected(); ok {
			return nil
		}
		if ch.State() != protocol.StateAwaiting {
			return errors.New("selection retries exhausted")
		}
	}
	return fmt.Errorf("no action selected within %d tool steps", p.maxSteps)
}

// dispatch executes one tool call against the channel. Failures become error
// strings fed back to the model; the channel itself tracks the retry budget.
func (p *Structured) dispatch(ch *protocol.Channel, call ToolCall) string {
	switch call.Name {
	case toolGetGameState:
		view, err := ch.GetState()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return mustJSON(view)
	case toolGetValidActions:
		entries, err := ch.GetValidActions()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return mustJSON(entries)
	case toolSelectAction:
		id, err := decodeActionID(call.Args)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		if err := ch.SelectAction(id); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return fmt.Sprintf("action %d selected", id)
	default:
		return fmt.Sprintf("error: unknown tool %q", call.Name)
	}
}

// decodeActionID tolerates the id arriving as a JSON number or a numeric
// string; models are inconsistent about this.
func decodeActionID(args json.RawMessage) (int, error) {
	var payload struct {
		ActionID any `json:"action_id"`
	}
	if err := json.Unmarshal(args, &payload); err != nil {
		return 0, fmt.Errorf("malformed select_action arguments: %w", err)
	}
	switch v := payload.ActionID.(type) {
	case float64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("action_id %q is not a number", v)
		}
		return id, nil
	case nil:
		return 0, errors.New("select_action requires an action_id")
	default:
		return 0, fmt.Errorf("action_id has unsupported type %T", v)
	}
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
