package handler

import (
	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

// AskAboutEntry POST /api/v1/ai/ask
// The client resends the whole question/answer history and appends the returned
// answer itself.
func (h *Handler) AskAboutEntry(c *gin.Context) {
	var req model.AskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("ask bad request", "err", err)
		response.ValidationError(c, err.Error())
		return
	}

	answer, err := h.Assistant.AskAboutEntry(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.assistantError(c, req.EntryID, err)
		return
	}
	response.OK(c, model.AskRes{Answer: answer})
}

func (h *Handler) assistantError(c *gin.Context, entryID string, err error) {
	switch {
	case assistant.IsAuthenticationError(err):
		response.Unauthorized(c, "")
	case assistant.IsNotFoundError(err):
		response.NotFound(c, "entry not found")
	case assistant.IsValidationError(err):
		response.ValidationError(c, err.Error())
	case assistant.IsUpstreamError(err):
		h.Logger.Sugar().Errorw("assistant upstream failure", "entry_id", entryID, "err", err)
		response.UpstreamError(c, "unable to answer right now, please try again")
	default:
		h.Logger.Sugar().Errorw("assistant failed", "entry_id", entryID, "err", err)
		response.InternalError(c, "")
	}
}
