package usecase

import (
	"context"

	"restaurant-chat-service/internal/model"
)

// History returns a snapshot of the session's conversation.
func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Message, error) {
	return uc.store.History(sessionID)
}

// ClearSession drops the session and everything it holds. Idempotent.
func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) error {
	uc.store.Clear(sessionID)
	uc.l.Infof(ctx, "uc.ClearSession: cleared session %s", sessionID)
	return nil
}

// SessionSummary returns the session's bookkeeping view, order included.
func (uc *implUseCase) SessionSummary(ctx context.Context, sessionID string) (model.SessionSummary, error) {
	return uc.store.Summary(sessionID)
}
