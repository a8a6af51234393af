package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneEntry struct{ e model.Entry }

func (o oneEntry) GetEntry(_ context.Context, entryID, userID string) (*model.Entry, error) {
	if entryID != o.e.EntryID || userID != o.e.UserID {
		return nil, repository.ErrNotFound
	}
	e := o.e
	return &e, nil
}

// flakyCompleter fails the first `failures` calls and then echoes the turn count.
type flakyCompleter struct {
	failures int
	calls    int
}

func (f *flakyCompleter) Name() string { return "flaky" }

func (f *flakyCompleter) Complete(_ context.Context, msgs []model.ChatMessage) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("provider down")
	}
	return "<p>" + msgs[len(msgs)-1].Body() + "</p>", nil
}

func newSession(failures int) (*session, *flakyCompleter) {
	now := time.Now()
	entries := oneEntry{model.Entry{EntryID: "e1", UserID: "u1", Title: "Morning", Content: "Felt calm", Mood: "calm", CreatedAt: now, UpdatedAt: now}}
	c := &flakyCompleter{failures: failures}
	return &session{svc: assistant.NewService(entries, c, nil), userID: "u1", entryID: "e1"}, c
}

func TestReplGrowsHistory(t *testing.T) {
	s, _ := newSession(0)
	var out bytes.Buffer

	err := s.repl(context.Background(), strings.NewReader("first?\n\nsecond?\n/quit\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"first?", "second?"}, s.questions)
	assert.Equal(t, []string{"<p>first?</p>", "<p>second?</p>"}, s.answers)
	assert.Contains(t, out.String(), "> second?\n")
	assert.NotContains(t, out.String(), "<p>")
}

func TestReplRetryKeepsPendingQuestion(t *testing.T) {
	s, c := newSession(1)
	var out bytes.Buffer

	err := s.repl(context.Background(), strings.NewReader("why?\n/retry\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, c.calls)
	assert.Equal(t, []string{"why?"}, s.questions)
	assert.Equal(t, []string{"<p>why?</p>"}, s.answers)
	assert.Contains(t, out.String(), "provider down")
}

func TestReplStopsOnForeignEntry(t *testing.T) {
	s, _ := newSession(0)
	s.userID = "someone-else"

	err := s.repl(context.Background(), strings.NewReader("hi\n"), &bytes.Buffer{})
	assert.True(t, assistant.IsNotFoundError(err))
}

func TestOnceAnswersTrailingQuestion(t *testing.T) {
	s, _ := newSession(0)
	s.questions = []string{"Q1", "Q2"}
	s.answers = []string{"A1"}

	var out bytes.Buffer
	require.NoError(t, s.once(context.Background(), &out))
	assert.Equal(t, "Q2\n", out.String())
}

func TestOncePrintsDecodedText(t *testing.T) {
	s, _ := newSession(0)
	s.questions = []string{"Isn't it \"calm\" & quiet?"}

	var out bytes.Buffer
	require.NoError(t, s.once(context.Background(), &out))
	assert.Equal(t, "Isn't it \"calm\" & quiet?\n", out.String())
	assert.NotContains(t, out.String(), "&#")
}

func TestReplNewQuestionReplacesFailedOne(t *testing.T) {
	s, c := newSession(1)
	var out bytes.Buffer

	err := s.repl(context.Background(), strings.NewReader("why?\nhow?\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, c.calls)
	assert.Equal(t, []string{"how?"}, s.questions)
	assert.Equal(t, []string{"<p>how?</p>"}, s.answers)
}

func TestPrintMoods(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printMoods(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(model.Moods)+1)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out.String(), "calm")
}
