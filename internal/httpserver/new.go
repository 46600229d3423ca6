package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"restaurant-chat-service/config"
	"restaurant-chat-service/internal/chat"
	"restaurant-chat-service/internal/menu"
	"restaurant-chat-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Chat domain
	chatUC chat.UseCase
	menu   *menu.Catalog
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Chat domain
	ChatUseCase chat.UseCase
	Menu        *menu.Catalog
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		chatUC:      cfg.ChatUseCase,
		menu:        cfg.Menu,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
