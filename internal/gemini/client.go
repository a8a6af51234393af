package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/journalMin/pkg/model"
	"google.golang.org/genai"
)

// Client is a Completer backed by the Gemini API.
type Client struct {
	client      *genai.Client
	modelName   string
	maxTokens   int32
	temperature float32
}

type Options struct {
	APIKey string
	// BaseURL overrides the Gemini API endpoint; empty uses the SDK default.
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	modelName := opts.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client:      client,
		modelName:   modelName,
		maxTokens:   int32(opts.MaxTokens),
		temperature: opts.Temperature,
	}, nil
}

func (c *Client) Name() string { return "gemini" }

// BuildContents splits a transcript into the system instruction and the turn history.
// Multiple instruction messages are joined with a blank line.
func BuildContents(msgs []model.ChatMessage) (*genai.Content, []*genai.Content, error) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, m := range msgs {
		switch m.Role() {
		case model.RoleInstruction:
			system = append(system, m.Body())
		case model.RoleUser:
			contents = append(contents, genai.NewContentFromText(m.Body(), genai.RoleUser))
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Body(), genai.RoleModel))
		default:
			return nil, nil, fmt.Errorf("unsupported role %s", m.Role())
		}
	}
	if len(contents) == 0 {
		return nil, nil, errors.New("transcript has no user turn")
	}

	var sys *genai.Content
	if len(system) > 0 {
		sys = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	return sys, contents, nil
}

func (c *Client) Complete(ctx context.Context, msgs []model.ChatMessage) (string, error) {
	system, contents, err := BuildContents(msgs)
	if err != nil {
		return "", err
	}

	temp := c.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       &temp,
		MaxOutputTokens:   c.maxTokens,
	}

	res, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}
