package websocket

import (
	"github.com/gin-gonic/gin"

	ws "github.com/davidkimai/promptpad/internal/websocket"
)

func RegisterRoutes(router *gin.RouterGroup, hub *ws.Hub) {
	router.GET("/ws/trending", TrendingHandler(hub))
}
