package chat

import (
	"context"

	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/internal/order"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	NewSession(ctx context.Context) (string, error)
	HandleTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
	History(ctx context.Context, sessionID string) ([]model.Message, error)
	ClearSession(ctx context.Context, sessionID string) error
	SessionSummary(ctx context.Context, sessionID string) (model.SessionSummary, error)

	// Order context
	Order(ctx context.Context, sessionID string) (model.OrderContext, error)
	UpdateOrderFields(ctx context.Context, sessionID string, updates order.FieldUpdates) (model.OrderContext, error)
	AddOrderItem(ctx context.Context, sessionID string, item model.OrderItem) (model.OrderContext, error)
	RemoveOrderItem(ctx context.Context, sessionID string, index int) (model.OrderItem, model.OrderContext, error)
	ClearOrder(ctx context.Context, sessionID string) (model.OrderContext, error)

	// Service introspection
	Stats(ctx context.Context) StatsOutput
	Models(ctx context.Context) []string
}
