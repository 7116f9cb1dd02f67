package model

import "time"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a session's history. Turns are immutable and
// owned exclusively by their session.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
