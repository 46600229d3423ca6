package usecase_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/model"
)

func TestHandleTurn_MissThenCacheHit(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	input := chat.TurnInput{
		Prompt:      "What's your most popular pizza?",
		Temperature: 0.7,
		MaxTokens:   80,
		UseCache:    true,
	}

	out, err := env.uc.HandleTurn(ctx, input)
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if out.Cached {
		t.Error("first turn reported as cached")
	}
	if out.Response != env.provider.response {
		t.Errorf("unexpected response: %q", out.Response)
	}
	if out.TokensUsed != 42 {
		t.Errorf("expected 42 tokens, got %d", out.TokensUsed)
	}
	if out.ConversationLength != 2 {
		t.Errorf("expected conversation length 2, got %d", out.ConversationLength)
	}
	if env.provider.callCount != 1 {
		t.Fatalf("expected 1 provider call, got %d", env.provider.callCount)
	}

	// Identical turn in a second session must be served from cache.
	out2, err := env.uc.HandleTurn(ctx, input)
	if err != nil {
		t.Fatalf("HandleTurn (cached): %v", err)
	}
	if !out2.Cached {
		t.Error("second identical turn not served from cache")
	}
	if out2.TokensUsed != 0 {
		t.Errorf("cached turn should report zero tokens, got %d", out2.TokensUsed)
	}
	if out2.Response != out.Response {
		t.Errorf("cached response differs: %q", out2.Response)
	}
	if env.provider.callCount != 1 {
		t.Errorf("provider called again despite cache hit: %d", env.provider.callCount)
	}

	// Cached turns are still recorded in the session.
	history, err := env.uc.History(ctx, out2.SessionID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("expected 2 messages in cached-turn session, got %d", len(history))
	}
}

func TestHandleTurn_ContinuesSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	out, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "Hello", MaxTokens: 80})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	out2, err := env.uc.HandleTurn(ctx, chat.TurnInput{
		Prompt:    "What did I just say?",
		SessionID: out.SessionID,
		MaxTokens: 80,
	})
	if err != nil {
		t.Fatalf("HandleTurn (second): %v", err)
	}
	if out2.SessionID != out.SessionID {
		t.Errorf("session changed between turns: %s -> %s", out.SessionID, out2.SessionID)
	}
	if out2.ConversationLength != 4 {
		t.Errorf("expected conversation length 4, got %d", out2.ConversationLength)
	}

	// Prior turns are sent upstream ahead of the new prompt.
	req := env.provider.lastReq
	if len(req.Messages) != 3 {
		t.Fatalf("expected 3 messages upstream, got %d", len(req.Messages))
	}
	if req.Messages[0].Content != "Hello" || req.Messages[1].Role != string(model.RoleAssistant) {
		t.Errorf("history window not carried upstream: %+v", req.Messages)
	}
	if req.SystemPrompt == "" {
		t.Error("system prompt missing from upstream request")
	}
}

func TestHandleTurn_UpstreamFailureRecordsNothing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	sessionID, err := env.uc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	env.provider.shouldFail = true
	_, err = env.uc.HandleTurn(ctx, chat.TurnInput{
		Prompt:    "Hello",
		SessionID: sessionID,
		MaxTokens: 80,
		UseCache:  true,
	})
	if !errors.Is(err, chat.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got: %v", err)
	}

	history, err := env.uc.History(ctx, sessionID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("failed turn left %d messages in the session", len(history))
	}
	if env.cache.Len() != 0 {
		t.Errorf("failed turn left %d cache entries", env.cache.Len())
	}

	// The session itself survives the failed turn.
	env.provider.shouldFail = false
	out, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "Hello again", SessionID: sessionID, MaxTokens: 80})
	if err != nil {
		t.Fatalf("HandleTurn after failure: %v", err)
	}
	if out.SessionID != sessionID {
		t.Errorf("session replaced after failed turn: %s -> %s", sessionID, out.SessionID)
	}
}

func TestHandleTurn_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	t.Run("empty prompt", func(t *testing.T) {
		_, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "   "})
		if !errors.Is(err, chat.ErrEmptyPrompt) {
			t.Errorf("expected ErrEmptyPrompt, got: %v", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "Hello", Model: "gpt-oss:paid"})
		if !errors.Is(err, chat.ErrUnknownModel) {
			t.Errorf("expected ErrUnknownModel, got: %v", err)
		}
		if env.provider.callCount != 0 {
			t.Errorf("provider called for unknown model: %d", env.provider.callCount)
		}
	})
}

func TestHandleTurn_CacheDisabled(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	input := chat.TurnInput{Prompt: "Tell me about your deals", MaxTokens: 80, UseCache: false}
	if _, err := env.uc.HandleTurn(ctx, input); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if env.cache.Len() != 0 {
		t.Errorf("cache populated despite use_cache=false: %d entries", env.cache.Len())
	}

	if _, err := env.uc.HandleTurn(ctx, input); err != nil {
		t.Fatalf("HandleTurn (repeat): %v", err)
	}
	if env.provider.callCount != 2 {
		t.Errorf("expected 2 provider calls with cache disabled, got %d", env.provider.callCount)
	}
}

func TestHandleTurn_ClearMemory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	out, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "Hello", MaxTokens: 80})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	out2, err := env.uc.HandleTurn(ctx, chat.TurnInput{
		Prompt:      "Start over",
		SessionID:   out.SessionID,
		MaxTokens:   80,
		ClearMemory: true,
	})
	if err != nil {
		t.Fatalf("HandleTurn (clear): %v", err)
	}
	if out2.ConversationLength != 2 {
		t.Errorf("expected fresh conversation of length 2, got %d", out2.ConversationLength)
	}

	// The old session is gone for good.
	if _, err := env.uc.History(ctx, out.SessionID); err == nil && out2.SessionID == out.SessionID {
		t.Error("cleared session still resolvable under its old identifier")
	}
}

func TestHandleTurn_FallbackModelAccounting(t *testing.T) {
	primary := &mockProvider{model: "model-a", shouldFail: true}
	secondary := &mockProvider{model: "model-b", response: "answer from model-b", tokens: 7}
	env := newFallbackEnv(primary, secondary)
	ctx := context.Background()

	input := chat.TurnInput{Prompt: "Any deals today?", Temperature: 0.7, MaxTokens: 80, UseCache: true}

	out, err := env.uc.HandleTurn(ctx, input)
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	// The resolved default model is what goes upstream, even to the fallback.
	if secondary.lastReq.Model != "model-a" {
		t.Errorf("upstream request carried model %q, want %q", secondary.lastReq.Model, "model-a")
	}
	// The turn is reported under the model that actually answered.
	if out.Model != "model-b" {
		t.Errorf("turn reported model %q, want %q", out.Model, "model-b")
	}

	// An explicit request for the primary's model must not be answered with
	// the fallback's cached output.
	input.Model = "model-a"
	out2, err := env.uc.HandleTurn(ctx, input)
	if err != nil {
		t.Fatalf("HandleTurn (explicit model): %v", err)
	}
	if out2.Cached {
		t.Error("fallback output served from cache under the primary's model")
	}

	// Asking for the model that answered does hit the cache.
	input.Model = "model-b"
	out3, err := env.uc.HandleTurn(ctx, input)
	if err != nil {
		t.Fatalf("HandleTurn (served model): %v", err)
	}
	if !out3.Cached {
		t.Error("expected cache hit for the model that served the response")
	}
	if out3.Model != "model-b" {
		t.Errorf("cached turn reported model %q, want %q", out3.Model, "model-b")
	}
}

func TestStatsAndModels(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.uc.HandleTurn(ctx, chat.TurnInput{Prompt: "Hello", MaxTokens: 80, UseCache: true}); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	stats := env.uc.Stats(ctx)
	if stats.ActiveSessions != 1 {
		t.Errorf("expected 1 active session, got %d", stats.ActiveSessions)
	}
	if stats.TotalMessages != 2 {
		t.Errorf("expected 2 messages, got %d", stats.TotalMessages)
	}
	if stats.CacheSize != 1 {
		t.Errorf("expected cache size 1, got %d", stats.CacheSize)
	}

	models := env.uc.Models(ctx)
	if len(models) != 1 || models[0] != "test-model" {
		t.Errorf("unexpected models: %v", models)
	}
}
