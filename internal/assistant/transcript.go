package assistant

import (
	"fmt"
	"strings"

	"github.com/abhishek622/journalMin/pkg/model"
)

// Assemble builds instruction, user(q0), assistant(a0), ..., user(qN). The last
// question may be unanswered, so answers is len(questions) or len(questions)-1
// long. When every question already has an answer the trailing answer is dropped
// and the last question is asked again.
func Assemble(block ContextBlock, questions, answers []string) ([]model.ChatMessage, error) {
	if err := validateHistory(questions, answers); err != nil {
		return nil, err
	}

	msgs := make([]model.ChatMessage, 0, 1+len(questions)+len(answers))
	instr, err := model.NewChatMessage(model.RoleInstruction, BuildInstruction(block))
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, instr)

	last := len(questions) - 1
	for i, q := range questions {
		um, err := model.NewChatMessage(model.RoleUser, q)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, um)

		if i < last && i < len(answers) {
			am, err := model.NewChatMessage(model.RoleAssistant, answers[i])
			if err != nil {
				return nil, err
			}
			msgs = append(msgs, am)
		}
	}
	return msgs, nil
}

func validateHistory(questions, answers []string) error {
	if len(questions) == 0 {
		return NewValidationError("questions", "at least one question is required")
	}
	for i, q := range questions {
		if strings.TrimSpace(q) == "" {
			return NewValidationError("questions", fmt.Sprintf("question %d is empty", i))
		}
	}
	if n := len(answers); n != len(questions) && n != len(questions)-1 {
		return NewValidationError("answers",
			fmt.Sprintf("got %d answers for %d questions", n, len(questions)))
	}
	return nil
}
