package usecase

import (
	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/internal/order"
	"restaurant-chat-service/internal/respcache"
	"restaurant-chat-service/pkg/llmprovider"
	"restaurant-chat-service/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l      log.Logger
	store  *conversation.Store
	orders *order.Manager
	cache  *respcache.Cache
	menu   *menu.Catalog
	llm    *llmprovider.Manager
}

// New creates a new chat UseCase implementation.
func New(
	l log.Logger,
	store *conversation.Store,
	orders *order.Manager,
	cache *respcache.Cache,
	catalog *menu.Catalog,
	llm *llmprovider.Manager,
) *implUseCase {
	return &implUseCase{
		l:      l,
		store:  store,
		orders: orders,
		cache:  cache,
		menu:   catalog,
		llm:    llm,
	}
}
