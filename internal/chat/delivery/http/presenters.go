package http

import (
	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/internal/order"
	"restaurant-chat-service/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Prompt      string   `json:"prompt"       binding:"required,min=1"`
	SessionID   string   `json:"session_id"`
	Model       string   `json:"model"`
	MaxTokens   int      `json:"max_tokens"   binding:"omitempty,min=1,max=4096"`
	Temperature *float64 `json:"temperature"  binding:"omitempty,min=0,max=2"`
	UseCache    *bool    `json:"use_cache"`
	ClearMemory bool     `json:"clear_memory"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.TurnInput {
	maxTokens := r.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 80
	}
	temperature := 0.7
	if r.Temperature != nil {
		temperature = *r.Temperature
	}
	useCache := true
	if r.UseCache != nil {
		useCache = *r.UseCache
	}
	return chat.TurnInput{
		Prompt:      r.Prompt,
		SessionID:   r.SessionID,
		Model:       r.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		UseCache:    useCache,
		ClearMemory: r.ClearMemory,
	}
}

// ---

type updateOrderReq struct {
	CustomerName        *string `json:"customer_name"`
	PhoneNumber         *string `json:"phone_number"`
	DeliveryAddress     *string `json:"delivery_address"`
	PaymentMethod       *string `json:"payment_method"`
	DeliveryPreference  *string `json:"delivery_preference"`
	SpecialInstructions *string `json:"special_instructions"`
}

func (r updateOrderReq) toInput() order.FieldUpdates {
	return order.FieldUpdates{
		CustomerName:        r.CustomerName,
		PhoneNumber:         r.PhoneNumber,
		DeliveryAddress:     r.DeliveryAddress,
		PaymentMethod:       r.PaymentMethod,
		DeliveryPreference:  r.DeliveryPreference,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// ---

type addItemReq struct {
	Name                string  `json:"name"     binding:"required,min=1"`
	Size                string  `json:"size"`
	Price               float64 `json:"price"    binding:"min=0"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions"`
}

func (r addItemReq) toItem() model.OrderItem {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return model.OrderItem{
		Name:                r.Name,
		Size:                r.Size,
		Price:               r.Price,
		Quantity:            quantity,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response           string `json:"response"`
	SessionID          string `json:"session_id"`
	ModelUsed          string `json:"model_used"`
	TokensUsed         int    `json:"tokens_used"`
	Cached             bool   `json:"cached"`
	ConversationLength int    `json:"conversation_length"`
}

func (h *handler) newChatResp(out chat.TurnOutput) chatResp {
	return chatResp{
		Response:           out.Response,
		SessionID:          out.SessionID,
		ModelUsed:          out.Model,
		TokensUsed:         out.TokensUsed,
		Cached:             out.Cached,
		ConversationLength: out.ConversationLength,
	}
}

type newSessionResp struct {
	SessionID string            `json:"session_id"`
	Message   string            `json:"message"`
	Timestamp response.DateTime `json:"timestamp"`
}

type messageResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID    string        `json:"session_id"`
	Messages     []messageResp `json:"messages"`
	MessageCount int           `json:"message_count"`
}

func (h *handler) newHistoryResp(sessionID string, messages []model.Message) historyResp {
	out := make([]messageResp, len(messages))
	for i, msg := range messages {
		out[i] = messageResp{
			Role:      string(msg.Role),
			Content:   msg.Content,
			Timestamp: response.DateTime(msg.Timestamp),
		}
	}
	return historyResp{
		SessionID:    sessionID,
		Messages:     out,
		MessageCount: len(out),
	}
}

type orderItemResp struct {
	Name                string  `json:"name"`
	Size                string  `json:"size,omitempty"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type orderResp struct {
	CustomerName        *string         `json:"customer_name"`
	PhoneNumber         *string         `json:"phone_number"`
	DeliveryAddress     *string         `json:"delivery_address"`
	PaymentMethod       *string         `json:"payment_method"`
	DeliveryPreference  *string         `json:"delivery_preference"`
	SpecialInstructions *string         `json:"special_instructions"`
	Items               []orderItemResp `json:"current_order"`
	Total               float64         `json:"order_total"`
}

func newOrderItemResp(item model.OrderItem) orderItemResp {
	return orderItemResp{
		Name:                item.Name,
		Size:                item.Size,
		Price:               item.Price,
		Quantity:            item.Quantity,
		SpecialInstructions: item.SpecialInstructions,
	}
}

func newOrderResp(o model.OrderContext) orderResp {
	items := make([]orderItemResp, len(o.Items))
	for i, item := range o.Items {
		items[i] = newOrderItemResp(item)
	}
	return orderResp{
		CustomerName:        o.CustomerName,
		PhoneNumber:         o.PhoneNumber,
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		DeliveryPreference:  o.DeliveryPreference,
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
		Total:               o.Total,
	}
}

type orderEnvelopeResp struct {
	SessionID    string         `json:"session_id"`
	Message      string         `json:"message,omitempty"`
	RemovedItem  *orderItemResp `json:"removed_item,omitempty"`
	OrderContext orderResp      `json:"order_context"`
}

type summaryResp struct {
	SessionID    string            `json:"session_id"`
	CreatedAt    response.DateTime `json:"created_at"`
	LastActivity response.DateTime `json:"last_activity"`
	MessageCount int               `json:"message_count"`
	OrderContext orderResp         `json:"order_context"`
	Metadata     map[string]any    `json:"metadata"`
}

func (h *handler) newSummaryResp(s model.SessionSummary) summaryResp {
	return summaryResp{
		SessionID:    s.SessionID,
		CreatedAt:    response.DateTime(s.CreatedAt),
		LastActivity: response.DateTime(s.LastActivity),
		MessageCount: s.MessageCount,
		OrderContext: newOrderResp(s.Order),
		Metadata:     s.Metadata,
	}
}

type statsResp struct {
	ActiveSessions int `json:"active_sessions"`
	TotalMessages  int `json:"total_messages"`
	CacheSize      int `json:"cache_size"`
}

type modelsResp struct {
	Models []string `json:"models"`
	Note   string   `json:"note"`
}

type menuItemResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type menuResp struct {
	Restaurant string         `json:"restaurant"`
	MenuItems  []menuItemResp `json:"menu_items"`
	TotalItems int            `json:"total_items"`
}

func (h *handler) newMenuResp(items []menu.Item) menuResp {
	out := make([]menuItemResp, len(items))
	for i, item := range items {
		out[i] = menuItemResp{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		}
	}
	return menuResp{
		Restaurant: "Saad's Restaurant",
		MenuItems:  out,
		TotalItems: len(out),
	}
}
