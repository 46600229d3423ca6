package chat

import "errors"

var (
	ErrEmptyPrompt  = errors.New("prompt must not be empty")
	ErrUnknownModel = errors.New("requested model is not available")
	ErrUpstream     = errors.New("upstream provider failure")
)
