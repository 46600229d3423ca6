package openrouter

import "time"

const (
	// DefaultBaseURL is the default OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default model to use
	DefaultModel = "qwen/qwen3-coder:free"

	// DefaultTimeout bounds a single completion request
	DefaultTimeout = 60 * time.Second
)
