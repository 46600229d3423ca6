package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-chat-service/pkg/response"
)

// Chat godoc
// @Summary     Send a chat turn
// @Description Sends a restaurant-related prompt and returns the assistant's reply, with per-session memory and response caching.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     502 {object} response.Resp "Upstream provider failure"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.HandleTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// RestaurantChat godoc
// @Summary     Send a restaurant-framed chat turn
// @Description Same as the chat endpoint, with the prompt framed in Saad's Restaurant context before it is sent to the assistant.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream provider failure"
// @Router      /api/v1/chat/restaurant [POST]
func (h *handler) RestaurantChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput()
	input.Prompt = "Saad's Restaurant context: " + input.Prompt

	output, err := h.uc.HandleTurn(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// QuickChat godoc
// @Summary     Send a quick chat turn
// @Description One-off chat with default settings, prompt passed as a query parameter.
// @Tags        Chat
// @Produce     json
// @Param       prompt     query string true  "User prompt"
// @Param       session_id query string false "Existing session identifier"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream provider failure"
// @Router      /api/v1/chat/quick [POST]
func (h *handler) QuickChat(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := processQuickChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.HandleTurn(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// NewSession godoc
// @Summary     Start a new conversation session
// @Description Allocates a fresh session and returns its identifier.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} newSessionResp
// @Router      /api/v1/chat/new [POST]
func (h *handler) NewSession(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.uc.NewSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.NewSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp{
		SessionID: sessionID,
		Message:   "New conversation session created",
		Timestamp: response.DateTime(time.Now()),
	})
}

// SessionHistory godoc
// @Summary     Get session history
// @Description Returns the conversation messages recorded for a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id} [GET]
func (h *handler) SessionHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	messages, err := h.uc.History(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(id, messages))
}

// ClearSession godoc
// @Summary     Clear a session
// @Description Removes a session and everything it holds. Idempotent.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/chat/session/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearSession(ctx, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"session_id": id, "message": "Conversation memory cleared"})
}

// SessionSummary godoc
// @Summary     Get session summary
// @Description Returns session bookkeeping: timestamps, message count, order context and metadata.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id}/summary [GET]
func (h *handler) SessionSummary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.uc.SessionSummary(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(summary))
}

// GetOrder godoc
// @Summary     Get order context
// @Description Returns the session's in-progress order.
// @Tags        Order
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} orderEnvelopeResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id}/order [GET]
func (h *handler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.uc.Order(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, orderEnvelopeResp{SessionID: id, OrderContext: newOrderResp(snapshot)})
}

// UpdateOrder godoc
// @Summary     Update order fields
// @Description Partially updates customer and delivery fields on the session's order.
// @Tags        Order
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body updateOrderReq true "Fields to update"
// @Success     200 {object} orderEnvelopeResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id}/order/update [POST]
func (h *handler) UpdateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateOrderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.uc.UpdateOrderFields(ctx, id, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, orderEnvelopeResp{
		SessionID:    id,
		Message:      "Order context updated",
		OrderContext: newOrderResp(snapshot),
	})
}

// AddOrderItem godoc
// @Summary     Add an order item
// @Description Appends an item to the session's order and recomputes the total.
// @Tags        Order
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body addItemReq true "Item to add"
// @Success     200 {object} orderEnvelopeResp
// @Failure     400 {object} response.Resp "Invalid item"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id}/order/add [POST]
func (h *handler) AddOrderItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.uc.AddOrderItem(ctx, id, req.toItem())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, orderEnvelopeResp{
		SessionID:    id,
		Message:      "Item added to order",
		OrderContext: newOrderResp(snapshot),
	})
}

// RemoveOrderItem godoc
// @Summary     Remove an order item
// @Description Removes the item at the given index and recomputes the total.
// @Tags        Order
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       index path int    true "Item index"
// @Success     200 {object} orderEnvelopeResp
// @Failure     404 {object} response.Resp "Session or item not found"
// @Router      /api/v1/chat/session/{id}/order/remove/{index} [DELETE]
func (h *handler) RemoveOrderItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, err)
		return
	}

	removed, snapshot, err := h.uc.RemoveOrderItem(ctx, id, index)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	removedResp := newOrderItemResp(removed)
	response.OK(c, orderEnvelopeResp{
		SessionID:    id,
		Message:      "Item removed from order",
		RemovedItem:  &removedResp,
		OrderContext: newOrderResp(snapshot),
	})
}

// ClearOrder godoc
// @Summary     Clear the order
// @Description Empties the session's order items and total, keeping customer fields.
// @Tags        Order
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} orderEnvelopeResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/session/{id}/order/clear [DELETE]
func (h *handler) ClearOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.uc.ClearOrder(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, orderEnvelopeResp{
		SessionID:    id,
		Message:      "Order cleared",
		OrderContext: newOrderResp(snapshot),
	})
}

// Stats godoc
// @Summary     Service statistics
// @Description Reports live session, message and cache counts.
// @Tags        Service
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	stats := h.uc.Stats(c.Request.Context())
	response.OK(c, statsResp{
		ActiveSessions: stats.ActiveSessions,
		TotalMessages:  stats.TotalMessages,
		CacheSize:      stats.CacheSize,
	})
}

// Models godoc
// @Summary     List available models
// @Description Lists the models reachable through the configured providers.
// @Tags        Service
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, modelsResp{
		Models: h.uc.Models(c.Request.Context()),
		Note:   "Configured provider models",
	})
}

// Menu godoc
// @Summary     Get the menu
// @Description Returns the current menu items.
// @Tags        Service
// @Produce     json
// @Success     200 {object} menuResp
// @Router      /api/v1/menu [GET]
func (h *handler) Menu(c *gin.Context) {
	response.OK(c, h.newMenuResp(h.menu.Items()))
}
