package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transcript(t *testing.T) []model.ChatMessage {
	t.Helper()
	var out []model.ChatMessage
	for _, p := range []struct {
		role model.ChatRole
		body string
	}{
		{model.RoleInstruction, "context"},
		{model.RoleUser, "Q1"},
		{model.RoleAssistant, "A1"},
		{model.RoleUser, "Q2"},
	} {
		m, err := model.NewChatMessage(p.role, p.body)
		require.NoError(t, err)
		out = append(out, m)
	}
	return out
}

func TestCompleteSendsFixedSettings(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:3000", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Journal", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"message":{"role":"assistant","content":" <p>first</p> "}},{"message":{"content":"second"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{
		APIKey: "or-key", BaseURL: srv.URL + "/api/v1/", Model: "m",
		MaxTokens: 1000, Temperature: 0.7, Referer: "http://localhost:3000", AppTitle: "Journal",
	})

	answer, err := c.Complete(context.Background(), transcript(t))
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>", answer)

	assert.Equal(t, "m", got.Model)
	assert.Equal(t, 1000, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	assert.Equal(t, []Message{
		{Role: "system", Content: "context"},
		{Role: "user", Content: "Q1"},
		{Role: "assistant", Content: "A1"},
		{Role: "user", Content: "Q2"},
	}, got.Messages)
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), transcript(t))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "rate limited")
}

func TestCompleteEmptyResponses(t *testing.T) {
	cases := map[string]string{
		"no choices":    `{"choices":[]}`,
		"empty content": `{"choices":[{"message":{"content":"   "}}]}`,
		"garbage":       `not json`,
		"inline error":  `{"error":{"message":"model overloaded"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewClient(Options{APIKey: "k", BaseURL: srv.URL, Model: "m"})
			answer, err := c.Complete(context.Background(), transcript(t))
			assert.Error(t, err)
			assert.Empty(t, answer)
		})
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: url, Model: "m"})
	_, err := c.Complete(context.Background(), transcript(t))
	assert.Error(t, err)
}
