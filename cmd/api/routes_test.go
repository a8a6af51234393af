package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/auth"
	"github.com/abhishek622/journalMin/internal/config"
	"github.com/abhishek622/journalMin/internal/database"
	"github.com/abhishek622/journalMin/internal/handler"
	"github.com/abhishek622/journalMin/internal/ratelimit"
	"github.com/abhishek622/journalMin/internal/repository/sqlite"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoCompleter struct{}

func (echoCompleter) Name() string { return "echo" }

func (echoCompleter) Complete(_ context.Context, msgs []model.ChatMessage) (string, error) {
	return "<p>" + msgs[len(msgs)-1].Body() + "</p>", nil
}

func newTestApp(t *testing.T, perWindow int) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := sqlite.NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))

	cfg := &config.Config{
		Env:  "test",
		CORS: config.CORSConfig{TrustedOrigins: []string{"http://localhost:5173"}},
	}
	maker := auth.NewJWTMaker(strings.Repeat("k", 32))
	log := zap.NewNop()

	app := &application{
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		TokenMaker: maker,
		Limiter:    ratelimit.NewMemoryLimiter(perWindow, time.Hour),
		Handler: &handler.Handler{
			Logger:     log,
			Repo:       repo,
			TokenMaker: maker,
			TokenTTL:   time.Hour,
			Assistant:  assistant.NewService(repo.Entry, echoCompleter{}, log),
		},
	}
	return app.routes()
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	w := call(t, h, http.MethodPost, "/api/v1/signup", "", gin.H{"name": "N", "email": email, "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(t, h, http.MethodPost, "/api/v1/login", "", gin.H{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Data model.LoginUserRes `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Data.AccessToken
}

func TestProtectedRoutesNeedBearerToken(t *testing.T) {
	h := newTestApp(t, 10)

	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/api/v1/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/api/v1/me", "garbage", nil).Code)

	token := login(t, h, "a@example.com")
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/api/v1/me", token, nil).Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/api/v1/moods", "", nil).Code)
}

func TestCreationIsRateLimitedPerUser(t *testing.T) {
	h := newTestApp(t, 1)
	ann := login(t, h, "ann@example.com")
	ben := login(t, h, "ben@example.com")

	w := call(t, h, http.MethodPost, "/api/v1/categories", ann, gin.H{"name": "one"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, h, http.MethodPost, "/api/v1/categories", ann, gin.H{"name": "two"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")

	w = call(t, h, http.MethodPost, "/api/v1/entries", ben, gin.H{"title": "t", "content": "c", "mood": "calm"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data model.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// the assistant shares no budget with creation
	for i := 0; i < 3; i++ {
		w = call(t, h, http.MethodPost, "/api/v1/ai/ask", ben, gin.H{
			"entry_id": created.Data.EntryID, "questions": []string{"how was it?"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	assert.Contains(t, w.Body.String(), "how was it?")
}

func TestCORSPreflight(t *testing.T) {
	h := newTestApp(t, 10)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/entries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/entries", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
