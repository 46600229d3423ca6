package http

import (
	"errors"

	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/order"
	pkgErrors "restaurant-chat-service/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500 rather than leaking internals.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, chat.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(400, "prompt must not be empty")
	case errors.Is(err, chat.ErrUnknownModel):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, order.ErrInvalidItem):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, order.ErrItemIndexOutOfRange):
		return pkgErrors.NewHTTPError(404, "item not found")
	case errors.Is(err, chat.ErrUpstream):
		return pkgErrors.NewHTTPError(502, "LLM provider request failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
