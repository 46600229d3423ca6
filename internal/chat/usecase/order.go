package usecase

import (
	"context"

	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/internal/order"
)

// Order returns a deep snapshot of the session's order context.
func (uc *implUseCase) Order(ctx context.Context, sessionID string) (model.OrderContext, error) {
	return uc.orders.Order(sessionID)
}

// UpdateOrderFields applies a partial update to the order's customer fields
// and returns the updated snapshot.
func (uc *implUseCase) UpdateOrderFields(ctx context.Context, sessionID string, updates order.FieldUpdates) (model.OrderContext, error) {
	if err := uc.orders.UpdateFields(sessionID, updates); err != nil {
		return model.OrderContext{}, err
	}
	return uc.orders.Order(sessionID)
}

// AddOrderItem validates and appends an item, then returns the updated
// snapshot with the recomputed total.
func (uc *implUseCase) AddOrderItem(ctx context.Context, sessionID string, item model.OrderItem) (model.OrderContext, error) {
	if err := uc.orders.AddItem(sessionID, item); err != nil {
		return model.OrderContext{}, err
	}
	uc.l.Infof(ctx, "uc.AddOrderItem: session %s added %q", sessionID, item.Name)
	return uc.orders.Order(sessionID)
}

// RemoveOrderItem removes the item at index and returns it alongside the
// updated snapshot.
func (uc *implUseCase) RemoveOrderItem(ctx context.Context, sessionID string, index int) (model.OrderItem, model.OrderContext, error) {
	removed, err := uc.orders.RemoveItem(sessionID, index)
	if err != nil {
		return model.OrderItem{}, model.OrderContext{}, err
	}
	snapshot, err := uc.orders.Order(sessionID)
	if err != nil {
		return model.OrderItem{}, model.OrderContext{}, err
	}
	return removed, snapshot, nil
}

// ClearOrder empties the items and total while keeping customer fields.
func (uc *implUseCase) ClearOrder(ctx context.Context, sessionID string) (model.OrderContext, error) {
	if err := uc.orders.ClearOrder(sessionID); err != nil {
		return model.OrderContext{}, err
	}
	return uc.orders.Order(sessionID)
}
