package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/pkg/model"
)

// session owns the question/answer history for one terminal conversation.
// Nothing is persisted; quitting discards it.
type session struct {
	svc       *assistant.Service
	userID    string
	entryID   string
	questions []string
	answers   []string
}

func (s *session) ask(ctx context.Context) (string, error) {
	return s.svc.AskAboutEntry(ctx, s.userID, model.AskReq{
		EntryID:   s.entryID,
		Questions: s.questions,
		Answers:   s.answers,
	})
}

// once answers the trailing question given on the command line.
func (s *session) once(ctx context.Context, out io.Writer) error {
	answer, err := s.ask(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, assistant.PlainText(answer))
	return err
}

// repl reads one question per line. A failed turn leaves the question pending
// until /retry resends it; typing a new question replaces it instead.
func (s *session) repl(ctx context.Context, in io.Reader, out io.Writer) error {
	if len(s.questions) > 0 && len(s.answers) < len(s.questions) {
		if err := s.turn(ctx, out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/retry":
			if len(s.answers) == len(s.questions) {
				fmt.Fprintln(out, "nothing to retry")
				continue
			}
		default:
			if len(s.answers) < len(s.questions) {
				// drop the unanswered question, the new one replaces it
				s.questions = s.questions[:len(s.answers)]
			}
			s.questions = append(s.questions, line)
		}

		if err := s.turn(ctx, out); err != nil {
			if assistant.IsNotFoundError(err) || assistant.IsAuthenticationError(err) {
				return err
			}
			fmt.Fprintf(out, "error: %v (type /retry to try again)\n", err)
		}
	}
}

func (s *session) turn(ctx context.Context, out io.Writer) error {
	answer, err := s.ask(ctx)
	if err != nil {
		return err
	}
	s.answers = append(s.answers, answer)
	_, err = fmt.Fprintln(out, assistant.PlainText(answer))
	return err
}
