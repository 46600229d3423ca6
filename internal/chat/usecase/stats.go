package usecase

import (
	"context"

	"restaurant-chat-service/internal/chat"
)

// Stats reports live session, message and cache counts.
func (uc *implUseCase) Stats(ctx context.Context) chat.StatsOutput {
	activeSessions, totalMessages := uc.store.Stats()
	return chat.StatsOutput{
		ActiveSessions: activeSessions,
		TotalMessages:  totalMessages,
		CacheSize:      uc.cache.Len(),
	}
}

// Models lists the models reachable through the configured providers.
func (uc *implUseCase) Models(ctx context.Context) []string {
	return uc.llm.Models()
}
