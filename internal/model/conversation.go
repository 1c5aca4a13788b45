package model

import "time"

// Role tags who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation.
type Turn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// LastUserText returns the text of the most recent user turn, or "".
func LastUserText(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			return turns[i].Text
		}
	}
	return ""
}
