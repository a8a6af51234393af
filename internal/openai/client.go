package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Options configures an OpenAI-compatible chat completions client (OpenRouter by default).
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	// Referer and AppTitle become OpenRouter's HTTP-Referer and X-Title headers.
	Referer  string
	AppTitle string
}

type Client struct {
	apiKey      string
	base        string
	model       string
	maxTokens   int
	temperature float32
	referer     string
	title       string
	http        *http.Client
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:      opts.APIKey,
		base:        base,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		referer:     opts.Referer,
		title:       opts.AppTitle,
		http:        &http.Client{Timeout: timeout},
	}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error,omitempty"`
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat completions returned %d: %s", e.StatusCode, e.Body)
}

var ErrEmptyCompletion = errors.New("completion has no content")

func (c *Client) Name() string { return "openrouter" }

// wireRole maps the closed role set onto the chat completions role names.
func wireRole(r model.ChatRole) (string, error) {
	switch r {
	case model.RoleInstruction:
		return "system", nil
	case model.RoleUser:
		return "user", nil
	case model.RoleAssistant:
		return "assistant", nil
	}
	return "", fmt.Errorf("unsupported role %s", r)
}

// BuildRequest converts a transcript into the wire request with the fixed decoding settings.
func (c *Client) BuildRequest(msgs []model.ChatMessage) (ChatRequest, error) {
	req := ChatRequest{
		Model:       c.model,
		Messages:    make([]Message, 0, len(msgs)),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
	for _, m := range msgs {
		role, err := wireRole(m.Role())
		if err != nil {
			return ChatRequest{}, err
		}
		req.Messages = append(req.Messages, Message{Role: role, Content: m.Body()})
	}
	return req, nil
}

// Complete performs one round-trip and returns the first choice. No retries.
func (c *Client) Complete(ctx context.Context, msgs []model.ChatMessage) (string, error) {
	req, err := c.BuildRequest(msgs)
	if err != nil {
		return "", err
	}
	return c.Chat(ctx, req)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	url := c.base + "/chat/completions"
	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	r.Header.Set("Authorization", "Bearer "+c.apiKey)
	r.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		r.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		r.Header.Set("X-Title", c.title)
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var ch ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&ch); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if ch.Error != nil {
		return "", fmt.Errorf("provider error: %s", ch.Error.Message)
	}
	if len(ch.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(ch.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
