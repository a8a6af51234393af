package handler

import (
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListMoods(c *gin.Context) {
	response.OK(c, model.MoodList())
}
