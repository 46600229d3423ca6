package model

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one the conversation store accepts.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single conversation turn entry.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// SessionSummary is a read-only view of a session's bookkeeping state.
type SessionSummary struct {
	SessionID    string
	CreatedAt    time.Time
	LastActivity time.Time
	MessageCount int
	Order        OrderContext
	Metadata     map[string]any
}
