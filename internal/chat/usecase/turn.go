package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/internal/respcache"
	"restaurant-chat-service/pkg/llmprovider"
)

// historyWindow caps how much conversation history is sent upstream to keep
// prompts within token limits.
const historyWindow = 10

// NewSession allocates a fresh conversation session and returns its ID.
func (uc *implUseCase) NewSession(ctx context.Context) (string, error) {
	sessionID, _ := uc.store.GetOrCreate("")
	uc.l.Infof(ctx, "uc.NewSession: created session %s", sessionID)
	return sessionID, nil
}

// HandleTurn runs one user turn: resolve the session, probe the response
// cache, and on a miss call the LLM with the menu-aware system prompt plus a
// bounded history window. A failed upstream call records nothing: no user
// message, no assistant message, no cache entry.
func (uc *implUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return chat.TurnOutput{}, chat.ErrEmptyPrompt
	}

	modelName := input.Model
	if modelName == "" {
		if models := uc.llm.Models(); len(models) > 0 {
			modelName = models[0]
		}
	} else if !uc.llm.HasModel(modelName) {
		return chat.TurnOutput{}, fmt.Errorf("%w: %s", chat.ErrUnknownModel, modelName)
	}

	if input.ClearMemory && input.SessionID != "" {
		uc.store.Clear(input.SessionID)
	}

	sessionID, created := uc.store.GetOrCreate(input.SessionID)
	if created && input.SessionID != "" {
		uc.l.Debugf(ctx, "uc.HandleTurn: session %s absent or expired, created %s", input.SessionID, sessionID)
	}

	fingerprint := respcache.Fingerprint(input.Prompt, modelName, input.Temperature, input.MaxTokens)

	if input.UseCache {
		if cached, ok := uc.cache.Get(fingerprint); ok {
			if err := uc.recordTurn(sessionID, input.Prompt, cached.Response); err != nil {
				return chat.TurnOutput{}, err
			}
			return chat.TurnOutput{
				Response:           cached.Response,
				SessionID:          sessionID,
				Model:              cached.Model,
				TokensUsed:         0,
				Cached:             true,
				ConversationLength: uc.conversationLength(sessionID),
			}, nil
		}
	}

	// Snapshot history with all locks released before the upstream call.
	history, err := uc.store.History(sessionID)
	if err != nil {
		return chat.TurnOutput{}, err
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, msg := range history {
		messages = append(messages, llmprovider.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:    string(model.RoleUser),
		Content: input.Prompt,
	})

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: uc.systemPrompt(),
		Messages:     messages,
		Model:        modelName,
		Temperature:  input.Temperature,
		MaxTokens:    input.MaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleTurn GenerateContent: %v", err)
		return chat.TurnOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	tokensUsed := 0
	if resp.Usage != nil {
		tokensUsed = resp.Usage.TotalTokens
	}

	// A fallback provider may serve a different model than the one requested.
	// Account for the turn under the model that actually answered, including
	// the cache key, so an explicit request for modelName is never answered
	// with another model's output.
	servedModel := resp.ModelName
	if servedModel == "" {
		servedModel = modelName
	}

	if err := uc.recordTurn(sessionID, input.Prompt, resp.Text); err != nil {
		return chat.TurnOutput{}, err
	}
	if input.UseCache {
		if servedModel != modelName {
			fingerprint = respcache.Fingerprint(input.Prompt, servedModel, input.Temperature, input.MaxTokens)
		}
		uc.cache.Put(fingerprint, respcache.Value{
			Response:   resp.Text,
			TokensUsed: tokensUsed,
			Model:      servedModel,
		})
	}

	return chat.TurnOutput{
		Response:           resp.Text,
		SessionID:          sessionID,
		Model:              servedModel,
		TokensUsed:         tokensUsed,
		Cached:             false,
		ConversationLength: uc.conversationLength(sessionID),
	}, nil
}

// recordTurn appends the user prompt and the assistant reply as one unit.
func (uc *implUseCase) recordTurn(sessionID, prompt, reply string) error {
	if err := uc.store.AppendMessage(sessionID, model.RoleUser, prompt); err != nil {
		return err
	}
	return uc.store.AppendMessage(sessionID, model.RoleAssistant, reply)
}

func (uc *implUseCase) conversationLength(sessionID string) int {
	history, err := uc.store.History(sessionID)
	if err != nil {
		return 0
	}
	return len(history)
}

// systemPrompt assembles the restaurant assistant persona with the current
// menu context.
func (uc *implUseCase) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a friendly restaurant assistant at Saad's Restaurant. Keep responses SHORT and CONCISE (1-2 sentences max).\n\n")
	b.WriteString(uc.menu.Context())
	b.WriteString("\n\nIMPORTANT: Be brief and direct. No lengthy explanations. Focus on:\n")
	b.WriteString("- Quick answers to menu questions\n")
	b.WriteString("- Simple order confirmations\n")
	b.WriteString("- Brief price quotes\n")
	b.WriteString("- Short recommendations\n\n")
	b.WriteString("Remember conversation context but keep responses minimal.")
	return b.String()
}
