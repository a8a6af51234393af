package model

import (
	"fmt"
	"strings"
)

// ChatRole is the author of a ChatMessage. Only the three declared roles exist.
type ChatRole int

const (
	RoleInstruction ChatRole = iota + 1
	RoleUser
	RoleAssistant
)

func (r ChatRole) String() string {
	switch r {
	case RoleInstruction:
		return "instruction"
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	default:
		return fmt.Sprintf("ChatRole(%d)", int(r))
	}
}

func (r ChatRole) Valid() bool {
	return r >= RoleInstruction && r <= RoleAssistant
}

// ChatMessage is immutable once built; use NewChatMessage.
type ChatMessage struct {
	role ChatRole
	body string
}

func NewChatMessage(role ChatRole, body string) (ChatMessage, error) {
	if !role.Valid() {
		return ChatMessage{}, fmt.Errorf("invalid chat role %d", int(role))
	}
	return ChatMessage{role: role, body: strings.TrimSpace(body)}, nil
}

func (m ChatMessage) Role() ChatRole { return m.role }
func (m ChatMessage) Body() string   { return m.body }

func (m ChatMessage) String() string {
	return m.role.String() + ": " + m.body
}
