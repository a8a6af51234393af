package handler

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/auth"
	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimsKey is where the auth middleware stores *auth.UserClaims.
const ClaimsKey = "claims"

// ImageFinder returns an illustrative image URL for a mood query ("" when none).
type ImageFinder interface {
	ImageURL(ctx context.Context, query string) (string, error)
}

type Handler struct {
	Logger     *zap.Logger
	Repo       *repository.Repository
	TokenMaker *auth.JWTMaker
	TokenTTL   time.Duration
	Assistant  *assistant.Service
	Images     ImageFinder
}

// GetClaimsFromContext returns nil when the request was not authenticated.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// userID is the authenticated principal or "" when there is none.
func (h *Handler) userID(c *gin.Context) string {
	if claims := h.GetClaimsFromContext(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// requireUser writes a 401 and returns false when the request has no principal.
func (h *Handler) requireUser(c *gin.Context) (string, bool) {
	id := h.userID(c)
	if id == "" {
		response.Unauthorized(c, "")
		return "", false
	}
	return id, true
}

// storeError maps repository errors onto the response envelope.
func (h *Handler) storeError(c *gin.Context, op, what string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, what+" not found")
	case errors.Is(err, repository.ErrConflict):
		response.Conflict(c, what+" already exists")
	default:
		h.Logger.Sugar().Errorw(op+" failed", "err", err)
		response.InternalError(c, "")
	}
}
