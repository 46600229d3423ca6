package middleware

import (
	"restaurant-chat-service/config"
	"restaurant-chat-service/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst),
	}
}
