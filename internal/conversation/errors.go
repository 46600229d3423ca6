package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidRole     = errors.New("invalid message role")
)
