package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-chat-service/config"
	_ "restaurant-chat-service/docs" // Swagger docs
	chatUC "restaurant-chat-service/internal/chat/usecase"
	"restaurant-chat-service/internal/conversation"
	"restaurant-chat-service/internal/httpserver"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/internal/order"
	"restaurant-chat-service/internal/reaper"
	"restaurant-chat-service/internal/respcache"
	"restaurant-chat-service/pkg/llmprovider"
	"restaurant-chat-service/pkg/log"
)

// @title       Saad's Restaurant Chat API
// @description Conversational restaurant backend with per-session memory, order tracking and response caching over OpenRouter.
// @version     2
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Saad's Restaurant Chat Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Menu catalog
	catalog := menu.Load(cfg.Menu.Path, logger)
	logger.Infof(ctx, "Menu loaded: %d items", len(catalog.Items()))

	// 4. Stores
	store := conversation.NewStore(conversation.Config{
		MaxConversations:           cfg.Memory.MaxConversations,
		MaxMessagesPerConversation: cfg.Memory.MaxMessagesPerConversation,
		TTL:                        parseDuration(ctx, logger, cfg.Memory.ConversationTTL, conversation.DefaultTTL),
	}, logger)
	orders := order.NewManager(store)
	cache := respcache.NewCache(respcache.Config{
		MaxSize: cfg.Cache.MaxSize,
		TTL:     parseDuration(ctx, logger, cfg.Cache.TTL, respcache.DefaultTTL),
	})

	// 5. Background reaper
	sweeper := reaper.New(logger,
		parseDuration(ctx, logger, cfg.Memory.CleanupInterval, reaper.DefaultInterval),
		reaper.Target{Name: "conversations", Store: store},
		reaper.Target{Name: "response-cache", Store: cache},
	)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready: %v", manager.Models())

	// 7. Chat domain
	uc := chatUC.New(logger, store, orders, cache, catalog, manager)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		ChatUseCase: uc,
		Menu:        catalog,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses a config duration string, falling back to def.
func parseDuration(ctx context.Context, logger log.Logger, raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warnf(ctx, "Invalid duration %q, using %s", raw, def)
		return def
	}
	return d
}
