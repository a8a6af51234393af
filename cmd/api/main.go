package main

import (
	"context"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/auth"
	"github.com/abhishek622/journalMin/internal/bootstrap"
	"github.com/abhishek622/journalMin/internal/cache"
	"github.com/abhishek622/journalMin/internal/config"
	"github.com/abhishek622/journalMin/internal/handler"
	"github.com/abhishek622/journalMin/internal/logger"
	"github.com/abhishek622/journalMin/internal/pixabay"
	"github.com/abhishek622/journalMin/internal/ratelimit"
	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
	Limiter    ratelimit.Limiter
	TokenMaker *auth.JWTMaker
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	repo, closeStore, err := bootstrap.OpenRepository(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer closeStore()

	if err := repo.Migrate(ctx); err != nil {
		sugar.Fatal(err)
	}

	completer, err := bootstrap.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		sugar.Fatal(err)
	}

	limiter, err := newLimiter(ctx, cfg.Limiter)
	if err != nil {
		sugar.Fatal(err)
	}

	tokenMaker := auth.NewJWTMaker(cfg.JWT.Secret)
	handlerApp := &handler.Handler{
		Logger:     log,
		Repo:       repo,
		TokenMaker: tokenMaker,
		TokenTTL:   cfg.JWT.AccessTokenTTL,
		Assistant:  assistant.NewService(repo.Entry, completer, log.Named("assistant")),
		Images:     pixabay.NewClient(cfg.Pixabay.BaseURL, cfg.Pixabay.APIKey, cfg.Pixabay.Timeout),
	}

	app := &application{
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
		Limiter:    limiter,
		TokenMaker: tokenMaker,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

func newLimiter(ctx context.Context, cfg config.RateLimiterConfig) (ratelimit.Limiter, error) {
	if !cfg.Enabled {
		return ratelimit.Noop{}, nil
	}
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(cfg.Requests, cfg.Window), nil
	}
	client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := cache.Ping(ctx, client); err != nil {
		return nil, err
	}
	return ratelimit.NewRedisLimiter(client, "journal:create", cfg.Requests, cfg.Window), nil
}
