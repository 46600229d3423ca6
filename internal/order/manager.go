// Package order mutates the order context embedded in a session. All
// operations go through the conversation store's per-session lock and fail
// with conversation.ErrSessionNotFound when the session is absent or expired;
// they never create a session.
package order

import (
	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/model"
)

// FieldUpdates is a partial update of the order's customer and delivery
// attributes. Nil fields are left untouched.
type FieldUpdates struct {
	CustomerName        *string
	PhoneNumber         *string
	DeliveryAddress     *string
	PaymentMethod       *string
	DeliveryPreference  *string
	SpecialInstructions *string
}

// Manager applies order mutations to sessions held by the conversation store.
type Manager struct {
	store *conversation.Store
}

// NewManager creates an order manager bound to the given store.
func NewManager(store *conversation.Store) *Manager {
	return &Manager{store: store}
}

// UpdateFields sets only the provided fields, leaving the rest untouched.
func (m *Manager) UpdateFields(sessionID string, updates FieldUpdates) error {
	return m.store.UpdateOrder(sessionID, func(o *model.OrderContext) error {
		if updates.CustomerName != nil {
			o.CustomerName = updates.CustomerName
		}
		if updates.PhoneNumber != nil {
			o.PhoneNumber = updates.PhoneNumber
		}
		if updates.DeliveryAddress != nil {
			o.DeliveryAddress = updates.DeliveryAddress
		}
		if updates.PaymentMethod != nil {
			o.PaymentMethod = updates.PaymentMethod
		}
		if updates.DeliveryPreference != nil {
			o.DeliveryPreference = updates.DeliveryPreference
		}
		if updates.SpecialInstructions != nil {
			o.SpecialInstructions = updates.SpecialInstructions
		}
		return nil
	})
}

// AddItem validates and appends an item, then recomputes the total.
func (m *Manager) AddItem(sessionID string, item model.OrderItem) error {
	if item.Name == "" || item.Price < 0 || item.Quantity < 1 {
		return ErrInvalidItem
	}
	return m.store.UpdateOrder(sessionID, func(o *model.OrderContext) error {
		o.Items = append(o.Items, item)
		o.Total = recomputeTotal(o.Items)
		return nil
	})
}

// RemoveItem removes the item at the 0-based position index and recomputes
// the total. The removed item is returned.
func (m *Manager) RemoveItem(sessionID string, index int) (model.OrderItem, error) {
	var removed model.OrderItem
	err := m.store.UpdateOrder(sessionID, func(o *model.OrderContext) error {
		if index < 0 || index >= len(o.Items) {
			return ErrItemIndexOutOfRange
		}
		removed = o.Items[index]
		o.Items = append(o.Items[:index], o.Items[index+1:]...)
		o.Total = recomputeTotal(o.Items)
		return nil
	})
	if err != nil {
		return model.OrderItem{}, err
	}
	return removed, nil
}

// ClearOrder empties the items and zeroes the total. Customer and delivery
// fields survive.
func (m *Manager) ClearOrder(sessionID string) error {
	return m.store.UpdateOrder(sessionID, func(o *model.OrderContext) error {
		o.Items = nil
		o.Total = 0
		return nil
	})
}

// Order returns a read-only snapshot of the session's order context.
func (m *Manager) Order(sessionID string) (model.OrderContext, error) {
	return m.store.ViewOrder(sessionID)
}

// recomputeTotal derives the total from scratch so it can never drift from
// the items.
func recomputeTotal(items []model.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
