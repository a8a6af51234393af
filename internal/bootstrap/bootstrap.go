// Package bootstrap wires configuration into the stores and model clients
// shared by the API server and journalctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/config"
	"github.com/abhishek622/journalMin/internal/database"
	"github.com/abhishek622/journalMin/internal/gemini"
	"github.com/abhishek622/journalMin/internal/openai"
	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/internal/repository/postgres"
	"github.com/abhishek622/journalMin/internal/repository/sqlite"
)

// OpenRepository connects the configured store through the process-wide handle.
// The returned func releases it.
func OpenRepository(ctx context.Context, cfg config.DBConfig) (*repository.Repository, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := database.SharedSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRepository(db), func() { db.Close() }, nil
	case "postgres":
		pool, err := database.SharedPool(ctx, cfg.DSN, database.PoolOptions{
			MaxConns:        cfg.MaxConns,
			MaxConnLifetime: cfg.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRepository(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
}

func NewCompleter(ctx context.Context, cfg config.LLMConfig) (assistant.Completer, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(ctx, gemini.Options{
			APIKey:      cfg.GeminiAPIKey,
			BaseURL:     cfg.GeminiURL,
			Model:       cfg.GeminiModel,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	case "openrouter":
		return openai.NewClient(openai.Options{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			Referer:     cfg.Referer,
			AppTitle:    cfg.AppTitle,
		}), nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}
