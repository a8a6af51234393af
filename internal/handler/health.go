package handler

import (
	"context"
	"time"

	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

// Health GET /healthz
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Repo.Ping(ctx); err != nil {
		h.Logger.Sugar().Errorw("health check failed", "err", err)
		response.ServiceUnavailable(c, "database unreachable")
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
