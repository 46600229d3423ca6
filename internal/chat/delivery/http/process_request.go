package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-chat-service/internal/chat"
	pkgErrors "restaurant-chat-service/pkg/errors"
)

// quickChatMaxTokens keeps quick-chat replies shorter than regular turns.
const quickChatMaxTokens = 60

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateOrderReq binds the partial order update body.
func (h *handler) processUpdateOrderReq(c *gin.Context) (updateOrderReq, error) {
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddItemReq binds and validates the add-item body.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processQuickChatReq builds a default-settings turn from query parameters.
func processQuickChatReq(c *gin.Context) (chat.TurnInput, error) {
	prompt := c.Query("prompt")
	if prompt == "" {
		return chat.TurnInput{}, pkgErrors.NewHTTPError(400, "prompt is required")
	}
	return chat.TurnInput{
		Prompt:      prompt,
		SessionID:   c.Query("session_id"),
		MaxTokens:   quickChatMaxTokens,
		Temperature: 0.7,
		UseCache:    true,
	}, nil
}

// sessionIDParam extracts the required :id URI parameter.
func sessionIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.NewHTTPError(400, "session id is required")
	}
	return id, nil
}
