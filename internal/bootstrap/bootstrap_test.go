package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhishek622/journalMin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRepositorySQLite(t *testing.T) {
	ctx := context.Background()
	repo, closeStore, err := OpenRepository(ctx, config.DBConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, repo.Migrate(ctx))
	require.NotNil(t, repo.Entry)
	require.NotNil(t, repo.Category)
}

func TestOpenRepositoryUnknownDriver(t *testing.T) {
	_, _, err := OpenRepository(context.Background(), config.DBConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestNewCompleterProviders(t *testing.T) {
	ctx := context.Background()

	c, err := NewCompleter(ctx, config.LLMConfig{Provider: "openrouter", APIKey: "or-key", BaseURL: "http://localhost", Model: "m", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "openrouter", c.Name())

	c, err = NewCompleter(ctx, config.LLMConfig{Provider: "gemini", GeminiAPIKey: "g-key", GeminiModel: "gemini-test", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "gemini", c.Name())

	_, err = NewCompleter(ctx, config.LLMConfig{Provider: "claude"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claude")
}
