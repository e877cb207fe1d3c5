package player

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

	defaultTemperature = 0.7
	defaultMaxTokens   = 4000
	defaultMaxRetries  = 3
	defaultRetryDelay  = time.Second
)

// Client talks to OpenRouter's OpenAI-compatible chat-completions API. It
// implements both ToolModel and TextModel, so one client serves structured
// and free-text seats alike.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	modelID     string
	temperature float64
	maxTokens   int
	maxRetries  int
	retryDelay  time.Duration
	baseURL     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

func WithMaxTokens(n int) ClientOption {
	return func(c *Client) { c.maxTokens = n }
}

// NewClient builds a client for one model id. The API key comes from the
// OPENROUTER_API_KEY environment variable unless overridden.
func NewClient(modelID string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient:  &http.Client{Timeout: 120 * time.Second},
		apiKey:      os.Getenv("OPENROUTER_API_KEY"),
		modelID:     modelID,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
		maxRetries:  defaultMaxRetries,
		retryDelay:  defaultRetryDelay,
		baseURL:     openRouterURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY must be set")
	}
	return c, nil
}

// Chat sends the conversation with the tool declarations and returns the
// model's reply.
func (c *Client) Chat(ctx context.Context, msgs []Message, tools []ToolDefinition) (Message, error) {
	req := chatRequest{
		Model:       c.modelID,
		Messages:    toWireMessages(msgs),
		Tools:       toWireTools(tools),
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	resp, err := c.post(ctx, req)
	if err != nil {
		return Message{}, err
	}
	if len(resp.Choices) == 0 {
		return Message{}, fmt.Errorf("empty choices from model %s", c.modelID)
	}
	return fromWireMessage(resp.Choices[0].Message), nil
}

// Complete sends a single-prompt completion without tools.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := c.Chat(ctx, []Message{{Role: "user", Content: prompt}}, nil)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

func (c *Client) post(ctx context.Context, req chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}

		resp, err := c.doRequest(ctx, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		log.Warn().Msgf("openrouter %s attempt %d/%d: %v", c.modelID, attempt+1, c.maxRetries, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (*chatResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("HTTP-Referer", "https://github.com/infoFiets/llm-catan-arena")
	httpReq.Header.Set("X-Title", "LLM Catan Arena")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		snippet := data
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, fmt.Errorf("status %d: %s", httpResp.StatusCode, snippet)
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Tools       []wireTool    `json:"tools,omitempty"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
}

type wireToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireTool struct {
	Type     string      `json:"type"`
	Function wireToolDef `json:"function"`
}

type wireToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type chatResponse struct {
	Choices []struct {
		Message      wireMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

func toWireMessages(msgs []Message) []wireMessage {
	out := make([]wireMessage, len(msgs))
	for i, m := range msgs {
		wm := wireMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			wm.ToolCalls = append(wm.ToolCalls, wireToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: wireFunction{
					Name:      tc.Name,
					Arguments: string(tc.Args),
				},
			})
		}
		out[i] = wm
	}
	return out
}

func toWireTools(tools []ToolDefinition) []wireTool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]wireTool, len(tools))
	for i, t := range tools {
		out[i] = wireTool{
			Type: "function",
			Function: wireToolDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromWireMessage(wm wireMessage) Message {
	m := Message{
		Role:    wm.Role,
		Content: wm.Content,
	}
	for _, tc := range wm.ToolCalls {
		args := tc.Function.Arguments
		if args == "" {
			args = "{}"
		}
		m.ToolCalls = append(m.ToolCalls, ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: json.RawMessage(args),
		})
	}
	return m
}
