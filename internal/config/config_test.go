package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/journal.db")
	t.Setenv("JWT_SECRET", strings.Repeat("k", 32))
	t.Setenv("OPENROUTER_API_KEY", "or-key")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 10, cfg.Limiter.Requests)
	assert.Equal(t, time.Hour, cfg.Limiter.Window)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.GetCORSOrigins())
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRequiresDSNForPostgres(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadGeminiNeedsKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.GeminiModel)
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_TEMPERATURE", "3.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_TEMPERATURE")
}

func TestLoadDBIgnoresServiceSecrets(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/journal.db")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	db, err := LoadDB()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Driver)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = LoadDB()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestIsProduction(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
