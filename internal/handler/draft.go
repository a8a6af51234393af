package handler

import (
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

// GetDraft GET /api/v1/drafts
func (h *Handler) GetDraft(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	d, err := h.Repo.Draft.GetDraft(c.Request.Context(), userID)
	if err != nil {
		h.storeError(c, "get draft", "draft", err)
		return
	}
	response.OK(c, d)
}

// SaveDraft PUT /api/v1/drafts
func (h *Handler) SaveDraft(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.SaveDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	d := &model.Draft{UserID: userID, Title: req.Title, Content: req.Content}
	if req.Mood != "" {
		m, found := model.LookupMood(req.Mood)
		if !found {
			response.BadRequest(c, "invalid mood")
			return
		}
		d.Mood = m.ID
	}

	if err := h.Repo.Draft.SaveDraft(c.Request.Context(), d); err != nil {
		h.storeError(c, "save draft", "draft", err)
		return
	}
	response.OK(c, d)
}
