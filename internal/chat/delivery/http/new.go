package http

import (
	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/pkg/log"
)

type handler struct {
	l    log.Logger
	uc   chat.UseCase
	menu *menu.Catalog
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, catalog *menu.Catalog) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		menu: catalog,
	}
}
