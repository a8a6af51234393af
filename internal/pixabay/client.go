package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client looks up a single illustrative image for a mood query.
type Client struct {
	client *resty.Client
	apiKey string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://pixabay.com"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &Client{client: c, apiKey: apiKey}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type searchResponse struct {
	Total int `json:"total"`
	Hits  []struct {
		ID            int    `json:"id"`
		LargeImageURL string `json:"largeImageURL"`
		WebformatURL  string `json:"webformatURL"`
	} `json:"hits"`
}

// ImageURL returns the first hit for query, or "" when nothing matched.
func (c *Client) ImageURL(ctx context.Context, query string) (string, error) {
	if !c.Enabled() || query == "" {
		return "", nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        c.apiKey,
			"q":          query,
			"image_type": "illustration",
			"min_width":  "1280",
			"min_height": "720",
			"per_page":   "3",
		}).
		Get("/api/")
	if err != nil {
		return "", fmt.Errorf("pixabay request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("pixabay status %d: %s", resp.StatusCode(), resp.String())
	}

	var sr searchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(sr.Hits) == 0 {
		return "", nil
	}
	if sr.Hits[0].LargeImageURL != "" {
		return sr.Hits[0].LargeImageURL, nil
	}
	return sr.Hits[0].WebformatURL, nil
}
