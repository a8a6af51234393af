package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/model"
)

// EntryReader is the slice of the entry repository the assistant needs.
type EntryReader interface {
	GetEntry(ctx context.Context, entryID, userID string) (*model.Entry, error)
}

// ContextBlock is the text rendering of one entry handed to the model.
type ContextBlock string

type ContextLoader struct {
	entries EntryReader
}

func NewContextLoader(entries EntryReader) *ContextLoader {
	return &ContextLoader{entries: entries}
}

// LoadContext renders the entry owned by userID. Entries owned by others look missing.
func (l *ContextLoader) LoadContext(ctx context.Context, entryID, userID string) (ContextBlock, error) {
	e, err := l.entries.GetEntry(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", NotFoundError{Resource: "entry", ID: entryID}
		}
		return "", fmt.Errorf("load entry: %w", err)
	}
	return RenderEntry(e)
}

// RenderEntry formats an entry in a fixed field order. Timestamps are UTC RFC3339.
func RenderEntry(e *model.Entry) (ContextBlock, error) {
	body, err := markupToText(e.Content)
	if err != nil {
		return "", fmt.Errorf("render entry content: %w", err)
	}

	mood := strings.ToUpper(e.Mood)
	if m, ok := model.LookupMood(e.Mood); ok {
		mood = fmt.Sprintf("%s (%s, score %d/10)", strings.ToUpper(m.ID), m.Label, m.Score)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", strings.TrimSpace(e.Title))
	fmt.Fprintf(&sb, "Mood: %s\n", mood)
	if e.CategoryName != nil && *e.CategoryName != "" {
		fmt.Fprintf(&sb, "Collection: %s\n", *e.CategoryName)
	}
	fmt.Fprintf(&sb, "Created: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "Updated: %s\n", e.UpdatedAt.UTC().Format(time.RFC3339))
	sb.WriteString("Content:\n")
	sb.WriteString(body)
	return ContextBlock(sb.String()), nil
}

var blockTags = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr"

// markupToText flattens rich markup: block elements each end a line, <br> breaks one.
func markupToText(content string) (string, error) {
	if !strings.ContainsAny(content, "<&") {
		return strings.TrimSpace(content), nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
	})
	doc.Find(blockTags).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n"), nil
}
