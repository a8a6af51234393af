package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	maxPageSize    = 100
	maxPage        = 1_000_000
	unorganizedKey = "unorganized"
	dateLayout     = "2006-01-02"
)

// moodImage looks up an image for the mood; failures only cost the picture.
func (h *Handler) moodImage(ctx context.Context, mood model.Mood) string {
	if h.Images == nil {
		return ""
	}
	url, err := h.Images.ImageURL(ctx, mood.PixabayQuery)
	if err != nil {
		h.Logger.Sugar().Warnw("mood image lookup failed", "mood", mood.ID, "err", err)
		return ""
	}
	return url
}

// resolveCategory returns the category name when id belongs to the user.
func (h *Handler) resolveCategory(c *gin.Context, id, userID string) (*string, bool) {
	cat, err := h.Repo.Category.GetCategory(c.Request.Context(), id, userID)
	if err != nil {
		h.storeError(c, "get category", "category", err)
		return nil, false
	}
	return &cat.Name, true
}

// CreateEntry POST /api/v1/entries
func (h *Handler) CreateEntry(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.CreateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("create entry bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}
	mood, found := model.LookupMood(req.Mood)
	if !found {
		response.BadRequest(c, "invalid mood")
		return
	}

	ctx := c.Request.Context()
	entry := &model.Entry{
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Mood:      mood.ID,
		MoodScore: mood.Score,
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		name, ok := h.resolveCategory(c, *req.CategoryID, userID)
		if !ok {
			return
		}
		entry.CategoryID = req.CategoryID
		entry.CategoryName = name
	}
	entry.MoodImageURL = h.moodImage(ctx, mood)

	if err := h.Repo.Entry.CreateEntry(ctx, entry); err != nil {
		h.storeError(c, "create entry", "entry", err)
		return
	}

	// the draft has been published
	if err := h.Repo.Draft.DeleteDraft(ctx, userID); err != nil {
		h.Logger.Sugar().Warnw("clear draft after create failed", "user", userID, "err", err)
	}

	response.Created(c, entry)
}

// GetEntry GET /api/v1/entries/:id
func (h *Handler) GetEntry(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	entry, err := h.Repo.Entry.GetEntry(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.storeError(c, "get entry", "entry", err)
		return
	}
	response.OK(c, entry)
}

// ListEntries GET /api/v1/entries
func (h *Handler) ListEntries(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var q model.ListEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter, err := buildEntryFilter(q)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.Repo.Entry.ListEntries(c.Request.Context(), userID, filter)
	if err != nil {
		h.storeError(c, "list entries", "entries", err)
		return
	}

	hasNext := len(entries) > filter.Limit-1
	if hasNext {
		entries = entries[:filter.Limit-1]
	}
	response.OKWithMeta(c, entries, &response.Meta{Page: q.Page, PageSize: q.PageSize, HasNext: hasNext})
}

// buildEntryFilter normalises the query string. Limit is one more than the page
// size so the caller can tell whether another page exists.
func buildEntryFilter(q model.ListEntriesQuery) (model.EntryFilter, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > maxPage {
		return model.EntryFilter{}, errors.New("page must not exceed 1000000")
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		return model.EntryFilter{}, errors.New("page_size must be between 1 and 100")
	}

	f := model.EntryFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.PageSize + 1,
		Offset: (q.Page - 1) * q.PageSize,
	}

	switch cat := strings.TrimSpace(q.CategoryID); cat {
	case "":
	case unorganizedKey:
		f.Unorganized = true
	default:
		f.CategoryID = &cat
	}

	if q.Mood != "" {
		m, ok := model.LookupMood(q.Mood)
		if !ok {
			return model.EntryFilter{}, errors.New("invalid mood")
		}
		f.Mood = m.ID
	}

	if q.Date != "" {
		day, err := time.Parse(dateLayout, q.Date)
		if err != nil {
			return model.EntryFilter{}, errors.New("date must be YYYY-MM-DD")
		}
		next := day.AddDate(0, 0, 1)
		f.CreatedFrom, f.CreatedBefore = &day, &next
	}
	return f, nil
}

// UpdateEntry PATCH /api/v1/entries/:id
func (h *Handler) UpdateEntry(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.UpdateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	entry, err := h.Repo.Entry.GetEntry(ctx, c.Param("id"), userID)
	if err != nil {
		h.storeError(c, "get entry", "entry", err)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			response.BadRequest(c, "title cannot be empty")
			return
		}
		entry.Title = title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Mood != nil {
		mood, found := model.LookupMood(*req.Mood)
		if !found {
			response.BadRequest(c, "invalid mood")
			return
		}
		if mood.ID != entry.Mood {
			entry.Mood = mood.ID
			entry.MoodScore = mood.Score
			entry.MoodImageURL = h.moodImage(ctx, mood)
		}
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			entry.CategoryID, entry.CategoryName = nil, nil
		} else {
			name, ok := h.resolveCategory(c, *req.CategoryID, userID)
			if !ok {
				return
			}
			entry.CategoryID, entry.CategoryName = req.CategoryID, name
		}
	}

	if err := h.Repo.Entry.UpdateEntry(ctx, entry); err != nil {
		h.storeError(c, "update entry", "entry", err)
		return
	}
	response.OK(c, entry)
}

// DeleteEntry DELETE /api/v1/entries/:id
func (h *Handler) DeleteEntry(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	if err := h.Repo.Entry.DeleteEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.storeError(c, "delete entry", "entry", err)
		return
	}
	response.Message(c, "entry deleted")
}
