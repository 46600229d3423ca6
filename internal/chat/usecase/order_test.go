package usecase_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/internal/order"
)

func TestOrderLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	sessionID, err := env.uc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	name := "Saad"
	snapshot, err := env.uc.UpdateOrderFields(ctx, sessionID, order.FieldUpdates{CustomerName: &name})
	if err != nil {
		t.Fatalf("UpdateOrderFields: %v", err)
	}
	if snapshot.CustomerName == nil || *snapshot.CustomerName != "Saad" {
		t.Errorf("customer name not applied: %+v", snapshot.CustomerName)
	}

	snapshot, err = env.uc.AddOrderItem(ctx, sessionID, model.OrderItem{Name: "Chicken Tikka Pizza", Price: 1200, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}
	snapshot, err = env.uc.AddOrderItem(ctx, sessionID, model.OrderItem{Name: "Coke", Price: 200, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}
	if snapshot.Total != 1400 {
		t.Errorf("expected total 1400, got %g", snapshot.Total)
	}

	removed, snapshot, err := env.uc.RemoveOrderItem(ctx, sessionID, 0)
	if err != nil {
		t.Fatalf("RemoveOrderItem: %v", err)
	}
	if removed.Name != "Chicken Tikka Pizza" {
		t.Errorf("removed wrong item: %q", removed.Name)
	}
	if snapshot.Total != 200 {
		t.Errorf("expected total 200 after removal, got %g", snapshot.Total)
	}

	snapshot, err = env.uc.ClearOrder(ctx, sessionID)
	if err != nil {
		t.Fatalf("ClearOrder: %v", err)
	}
	if len(snapshot.Items) != 0 || snapshot.Total != 0 {
		t.Errorf("order not emptied: %d items, total %g", len(snapshot.Items), snapshot.Total)
	}
	if snapshot.CustomerName == nil || *snapshot.CustomerName != "Saad" {
		t.Error("clearing the order dropped customer fields")
	}
}

func TestOrderUnknownSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.uc.Order(ctx, "no-such-session"); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got: %v", err)
	}
	if _, err := env.uc.AddOrderItem(ctx, "no-such-session", model.OrderItem{Name: "Coke", Price: 200, Quantity: 1}); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got: %v", err)
	}
}
