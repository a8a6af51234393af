package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	DB      DBConfig
	Limiter RateLimiterConfig
	CORS    CORSConfig
	JWT     JWTConfig
	LLM     LLMConfig
	Pixabay PixabayConfig
}

// database configuration
type DBConfig struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	DSN             string        `envconfig:"DATABASE_URL"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"./data/journal.db"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// rate limiting configuration for entry and category creation
type RateLimiterConfig struct {
	Enabled       bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Requests      int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	Window        time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1h"`
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret         string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"24h"`
}

// LLM configuration for the journal assistant
type LLMConfig struct {
	Provider     string        `envconfig:"LLM_PROVIDER" default:"openrouter"`
	APIKey       string        `envconfig:"OPENROUTER_API_KEY"`
	BaseURL      string        `envconfig:"LLM_BASE_URL" default:"https://openrouter.ai/api/v1"`
	Model        string        `envconfig:"LLM_MODEL" default:"meta-llama/llama-3.3-70b-instruct"`
	MaxTokens    int           `envconfig:"LLM_MAX_TOKENS" default:"1000"`
	Temperature  float32       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	Timeout      time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	Referer      string        `envconfig:"LLM_REFERER" default:"http://localhost:3000"`
	AppTitle     string        `envconfig:"LLM_APP_TITLE" default:"Journal"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GeminiURL    string        `envconfig:"GEMINI_BASE_URL"`
}

// Pixabay mood image lookup; disabled when the key is empty
type PixabayConfig struct {
	APIKey  string        `envconfig:"PIXABAY_API_KEY"`
	BaseURL string        `envconfig:"PIXABAY_BASE_URL" default:"https://pixabay.com"`
	Timeout time.Duration `envconfig:"PIXABAY_TIMEOUT" default:"5s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadDB reads only the database settings, for tooling that never serves requests.
func LoadDB() (*DBConfig, error) {
	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := db.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &db, nil
}

func (d *DBConfig) Validate() error {
	switch d.Driver {
	case "postgres":
		if d.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		if d.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	case "sqlite":
		if d.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be postgres or sqlite)", d.Driver)
	}
	return nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}

	if err := c.DB.Validate(); err != nil {
		return err
	}

	if c.Limiter.Enabled {
		if c.Limiter.Requests < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Limiter.Window <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}

	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.JWT.AccessTokenTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TOKEN_TTL must be positive")
	}

	switch c.LLM.Provider {
	case "openrouter":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required when LLM_PROVIDER=openrouter")
		}
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be openrouter or gemini)", c.LLM.Provider)
	}
	if c.LLM.MaxTokens < 1 {
		return fmt.Errorf("LLM_MAX_TOKENS must be at least 1")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}

	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.Driver=%s, Limiter.Enabled=%t, Limiter.Requests=%d, "+
		"Limiter.Window=%s, Limiter.Redis=%t, CORS.Origins=%d, JWT.AccessTokenTTL=%s, LLM.Provider=%s, "+
		"LLM.Model=%s, Pixabay=%t}",
		c.Env, c.Port, c.DB.Driver, c.Limiter.Enabled, c.Limiter.Requests,
		c.Limiter.Window, c.Limiter.RedisAddr != "", len(c.CORS.TrustedOrigins), c.JWT.AccessTokenTTL,
		c.LLM.Provider, c.LLM.Model, c.Pixabay.APIKey != "")
}
