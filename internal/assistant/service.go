package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/abhishek622/journalMin/pkg/model"
	"go.uber.org/zap"
)

// Completer sends one transcript to a chat-completion provider and returns the newest answer.
type Completer interface {
	Complete(ctx context.Context, msgs []model.ChatMessage) (string, error)
	Name() string
}

// Service answers questions about a single journal entry. It holds no conversation
// state; callers resend the full question/answer history every time.
type Service struct {
	loader    *ContextLoader
	completer Completer
	sanitizer *Sanitizer
	logger    *zap.Logger
}

func NewService(entries EntryReader, completer Completer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:    NewContextLoader(entries),
		completer: completer,
		sanitizer: NewSanitizer(),
		logger:    logger,
	}
}

// Transcript validates the request and rebuilds the messages that would be sent.
func (s *Service) Transcript(ctx context.Context, userID string, req model.AskReq) ([]model.ChatMessage, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, AuthenticationError{Message: "missing principal"}
	}
	if strings.TrimSpace(req.EntryID) == "" {
		return nil, NewValidationError("entry_id", "entry id is required")
	}
	// cheap checks first so a bad request never touches storage
	if err := validateHistory(req.Questions, req.Answers); err != nil {
		return nil, err
	}

	block, err := s.loader.LoadContext(ctx, req.EntryID, userID)
	if err != nil {
		return nil, err
	}
	return Assemble(block, req.Questions, req.Answers)
}

// AskAboutEntry runs one round-trip and returns the sanitized answer.
func (s *Service) AskAboutEntry(ctx context.Context, userID string, req model.AskReq) (string, error) {
	msgs, err := s.Transcript(ctx, userID, req)
	if err != nil {
		return "", err
	}

	raw, err := s.completer.Complete(ctx, msgs)
	if err != nil {
		var ue UpstreamError
		if !errors.As(err, &ue) {
			err = UpstreamError{Provider: s.completer.Name(), Err: err}
		}
		s.logger.Warn("completion failed",
			zap.String("provider", s.completer.Name()),
			zap.String("entry_id", req.EntryID),
			zap.Int("turn", len(req.Questions)),
			zap.Error(err),
		)
		return "", err
	}

	answer := s.sanitizer.Sanitize(raw)
	if answer == "" {
		return "", UpstreamError{Provider: s.completer.Name(), Err: errors.New("empty answer after sanitizing")}
	}

	s.logger.Debug("answered journal question",
		zap.String("entry_id", req.EntryID),
		zap.Int("turn", len(req.Questions)),
		zap.Int("messages", len(msgs)),
	)
	return answer, nil
}
