package usecase_test

import (
	"context"
	"errors"
	"time"

	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/chat/usecase"
	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/internal/order"
	"restaurant-chat-service/internal/respcache"
	"restaurant-chat-service/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider records every request it receives.
type mockProvider struct {
	model      string
	response   string
	tokens     int
	shouldFail bool
	callCount  int
	lastReq    *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("provider unavailable")
	}
	return &llmprovider.Response{
		Text:         m.response,
		ProviderName: "mock",
		ModelName:    m.model,
		Usage:        &llmprovider.Usage{TotalTokens: m.tokens},
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return m.model }

type testEnv struct {
	uc       chat.UseCase
	store    *conversation.Store
	cache    *respcache.Cache
	provider *mockProvider
}

func newTestEnv() *testEnv {
	logger := &mockLogger{}
	provider := &mockProvider{
		model:    "test-model",
		response: "Our most popular pizza is the pepperoni.",
		tokens:   42,
	}
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, logger)

	store := conversation.NewStore(conversation.Config{
		MaxConversations:           100,
		MaxMessagesPerConversation: 50,
		TTL:                        time.Hour,
	}, logger)
	cache := respcache.NewCache(respcache.Config{MaxSize: 100, TTL: time.Hour})
	catalog := menu.Load("testdata/missing.json", logger)

	return &testEnv{
		uc:       usecase.New(logger, store, order.NewManager(store), cache, catalog, manager),
		store:    store,
		cache:    cache,
		provider: provider,
	}
}

// newFallbackEnv builds a use case backed by two providers with fallback
// enabled, so the secondary answers whenever the primary fails.
func newFallbackEnv(primary, secondary *mockProvider) *testEnv {
	logger := &mockLogger{}
	manager := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, logger)

	store := conversation.NewStore(conversation.Config{
		MaxConversations:           100,
		MaxMessagesPerConversation: 50,
		TTL:                        time.Hour,
	}, logger)
	cache := respcache.NewCache(respcache.Config{MaxSize: 100, TTL: time.Hour})
	catalog := menu.Load("testdata/missing.json", logger)

	return &testEnv{
		uc:    usecase.New(logger, store, order.NewManager(store), cache, catalog, manager),
		store: store,
		cache: cache,
	}
}
