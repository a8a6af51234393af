package handler

import (
	"strings"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

// CreateCategory POST /api/v1/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("create category bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	cat := &model.Category{UserID: userID, Name: name, Description: strings.TrimSpace(req.Description)}
	if err := h.Repo.Category.CreateCategory(c.Request.Context(), cat); err != nil {
		h.storeError(c, "create category", "category", err)
		return
	}
	response.Created(c, cat)
}

// ListCategories GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	cats, err := h.Repo.Category.ListCategories(c.Request.Context(), userID)
	if err != nil {
		h.storeError(c, "list categories", "categories", err)
		return
	}
	response.OK(c, cats)
}

// GetCategory GET /api/v1/categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	cat, err := h.Repo.Category.GetCategory(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.storeError(c, "get category", "category", err)
		return
	}
	response.OK(c, cat)
}

// DeleteCategory DELETE /api/v1/categories/:id, entries in it go too
func (h *Handler) DeleteCategory(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	if err := h.Repo.Category.DeleteCategory(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.storeError(c, "delete category", "category", err)
		return
	}
	response.Message(c, "category deleted")
}
