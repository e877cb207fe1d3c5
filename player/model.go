// Package player contains the seat-side adapters: structured tool-calling
// agents, free-text agents, and a random baseline, each driving a turn over
// the interaction channel.
package player

import (
	"context"
	"encoding/json"
)

// Message is one entry in a chat conversation, in the OpenAI-compatible
// shape the completion providers expect.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is a model-issued invocation of one of the declared tools.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

// ToolDefinition declares one callable tool to the model. Parameters is a
// JSON schema object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolModel is a chat model that can answer with tool calls.
type ToolModel interface {
	Chat(ctx context.Context, msgs []Message, tools []ToolDefinition) (Message, error)
}

// TextModel is a chat model queried with a single prompt and answering in
// plain text.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
