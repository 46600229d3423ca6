package llmprovider

import (
	"context"
	"fmt"

	"restaurant-chat-service/pkg/openrouter"
)

// OpenRouterAdapter adapts pkg/openrouter to the llmprovider.Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openrouter.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openrouter.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		messages = append(messages, openrouter.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, &openrouter.Request{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion from model %s", resp.Model)
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "openrouter",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}
