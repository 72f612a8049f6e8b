package main

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkimai/promptpad/api/rest/feed"
	"github.com/davidkimai/promptpad/api/rest/health"
	"github.com/davidkimai/promptpad/api/rest/notifications"
	"github.com/davidkimai/promptpad/api/rest/prompts"
	"github.com/davidkimai/promptpad/api/rest/trending"
	"github.com/davidkimai/promptpad/api/websocket"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(RateLimitMiddleware())
	router.GET("/health", health.Handler(server.db))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		feed.RegisterRoutes(v1, server.engine)
		trending.RegisterRoutes(v1, server.engine)
		prompts.RegisterRoutes(v1, server.promptRepo, server.engine)
		notifications.RegisterRoutes(v1, server.notifier)
		websocket.RegisterRoutes(v1, server.hub)
	}
}
