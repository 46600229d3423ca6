package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-chat-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Chat turns go
// through the per-client rate limiter; read-only service routes do not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/restaurant", mw.RateLimit(), h.RestaurantChat)
		chat.POST("/quick", mw.RateLimit(), h.QuickChat)
		chat.POST("/new", h.NewSession)

		session := chat.Group("/session/:id")
		{
			session.GET("", h.SessionHistory)
			session.DELETE("", h.ClearSession)
			session.GET("/summary", h.SessionSummary)

			session.GET("/order", h.GetOrder)
			session.POST("/order/update", h.UpdateOrder)
			session.POST("/order/add", h.AddOrderItem)
			session.DELETE("/order/remove/:index", h.RemoveOrderItem)
			session.DELETE("/order/clear", h.ClearOrder)
		}
	}

	rg.GET("/stats", h.Stats)
	rg.GET("/models", h.Models)
	rg.GET("/menu", h.Menu)
}
